package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromBusiness converte um erro de negócio em resposta HTTP.
// Conflitos de unicidade viram 409; o restante vira 400.
func FromBusiness(c *gin.Context, err error) bool {
	code, message, ok := BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case "slug_already_exists", "unique_link_already_exists":
		Conflict(c, code, message)
	case "proposal_not_found", "checkout_not_found":
		NotFound(c, code, message)
	default:
		BadRequest(c, code, message)
	}
	return true
}
