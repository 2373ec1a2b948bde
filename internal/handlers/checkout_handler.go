package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feliperamosdev/portfolio-api/internal/dto"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
	uccheckout "github.com/feliperamosdev/portfolio-api/internal/usecase/checkout"
)

type CheckoutHandler struct {
	createUC    *uccheckout.CreateCheckout
	listUC      *uccheckout.ListCheckouts
	cancelUC    *uccheckout.CancelCheckout
	reconcileUC *uccheckout.ReconcileCheckout
}

func NewCheckoutHandler(
	createUC *uccheckout.CreateCheckout,
	listUC *uccheckout.ListCheckouts,
	cancelUC *uccheckout.CancelCheckout,
	reconcileUC *uccheckout.ReconcileCheckout,
) *CheckoutHandler {
	return &CheckoutHandler{
		createUC:    createUC,
		listUC:      listUC,
		cancelUC:    cancelUC,
		reconcileUC: reconcileUC,
	}
}

// --------- Requests ---------

type CreateCheckoutRequest struct {
	CustomerName        string `json:"customer_name" binding:"required"`
	CustomerEmail       string `json:"customer_email"`
	CustomerCpfCnpj     string `json:"customer_cpf_cnpj" binding:"required"`
	CustomerMobilePhone string `json:"customer_mobile_phone" binding:"required"`
	CustomerPhone       string `json:"customer_phone"`
	CustomerCompany     string `json:"customer_company"`

	Value       float64 `json:"value" binding:"required"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date" binding:"required"` // "2006-01-02"
	BillingType string  `json:"billing_type"`
}

// --------- Handlers ---------

func (h *CheckoutHandler) Create(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	dueDate, err := timezone.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_due_date"})
		return
	}

	ck, err := h.createUC.Execute(c.Request.Context(), userID, uccheckout.CreateCheckoutInput{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerCpfCnpj:     req.CustomerCpfCnpj,
		CustomerMobilePhone: req.CustomerMobilePhone,
		CustomerPhone:       req.CustomerPhone,
		CustomerCompany:     req.CustomerCompany,
		Value:               req.Value,
		Description:         req.Description,
		DueDate:             dueDate,
		BillingType:         req.BillingType,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_checkout"})
		return
	}

	c.JSON(http.StatusCreated, ck)
}

func (h *CheckoutHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_limit"})
			return
		}
		limit = parsed
	}

	status := c.Query("status")

	checkouts, err := h.listUC.Execute(c.Request.Context(), limit, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_checkouts"})
		return
	}

	items := make([]dto.CheckoutListDTO, 0, len(checkouts))
	for _, ck := range checkouts {
		items = append(items, dto.CheckoutListDTO{
			ID:            ck.ID,
			UniqueLink:    ck.UniqueLink,
			CustomerName:  ck.CustomerName,
			Value:         ck.Value,
			Status:        ck.Status,
			PaymentMethod: ck.PaymentMethod,
			DueDate:       ck.DueDate,
			CreatedAt:     ck.CreatedAt,
		})
	}

	httpresp.List(c, items)
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ck, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_cancel_checkout"})
		return
	}

	c.JSON(http.StatusOK, ck)
}

// Reconcile consulta o gateway e aplica o status real da cobrança.
// PATCH /api/me/checkouts/:id/reconcile
func (h *CheckoutHandler) Reconcile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ck, err := h.reconcileUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_reconcile_checkout"})
		return
	}

	c.JSON(http.StatusOK, ck)
}
