package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	ucuser "github.com/feliperamosdev/portfolio-api/internal/usecase/user"
)

type UserHandler struct {
	provisionUC *ucuser.ProvisionUser
}

func NewUserHandler(provisionUC *ucuser.ProvisionUser) *UserHandler {
	return &UserHandler{provisionUC: provisionUC}
}

// --------- Requests ---------

type ProvisionUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) Provision(c *gin.Context) {
	operatorIDVal, _ := c.Get(middleware.ContextUserID)
	operatorID := operatorIDVal.(uint)

	var req ProvisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.provisionUC.Execute(c.Request.Context(), operatorID, ucuser.ProvisionInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_provision_user", "não foi possível criar o usuário")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  req.Role,
	})
}
