package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliperamosdev/portfolio-api/internal/config"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	uccheckout "github.com/feliperamosdev/portfolio-api/internal/usecase/checkout"
)

type WebhookHandler struct {
	config    *config.Config
	confirmUC *uccheckout.ConfirmPayment
}

func NewWebhookHandler(cfg *config.Config, confirmUC *uccheckout.ConfirmPayment) *WebhookHandler {
	return &WebhookHandler{config: cfg, confirmUC: confirmUC}
}

// --------- Requests ---------

type billingWebhookRequest struct {
	Event   string `json:"event" binding:"required"`
	Payment struct {
		ID string `json:"id"`
	} `json:"payment"`
}

// --------- Handlers ---------

// POST /api/webhooks/billing
//
// O gateway reenvia eventos não confirmados, então qualquer caminho que
// não seja falha nossa responde 200 — inclusive cobrança desconhecida.
func (h *WebhookHandler) HandleBilling(c *gin.Context) {
	if h.config.BillingWebhookToken != "" {
		token := c.GetHeader("asaas-access-token")
		if token != h.config.BillingWebhookToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_webhook_token"})
			return
		}
	}

	var req billingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_webhook_payload"})
		return
	}

	if req.Payment.ID == "" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ck, err := h.confirmUC.Execute(c.Request.Context(), req.Payment.ID, req.Event)
	if err != nil {
		// Transição inválida (ex.: evento tardio sobre checkout cancelado)
		// não deve provocar retry do gateway
		if _, _, ok := httperr.BusinessCode(err); ok {
			c.JSON(http.StatusOK, gin.H{"received": true, "applied": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_process_webhook"})
		return
	}

	if ck == nil {
		c.JSON(http.StatusOK, gin.H{"received": true, "applied": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "applied": true})
}
