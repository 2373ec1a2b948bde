package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
	ucproposal "github.com/feliperamosdev/portfolio-api/internal/usecase/proposal"
)

type ProposalHandler struct {
	createUC    *ucproposal.CreateProposal
	updateUC    *ucproposal.UpdateProposal
	listUC      *ucproposal.ListProposals
	checkSlugUC *ucproposal.CheckSlugAvailability
}

func NewProposalHandler(
	createUC *ucproposal.CreateProposal,
	updateUC *ucproposal.UpdateProposal,
	listUC *ucproposal.ListProposals,
	checkSlugUC *ucproposal.CheckSlugAvailability,
) *ProposalHandler {
	return &ProposalHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		listUC:      listUC,
		checkSlugUC: checkSlugUC,
	}
}

// --------- Requests ---------

type TimelineStepRequest struct {
	Step   string `json:"step" binding:"required"`
	Period string `json:"period" binding:"required"`
}

type ProposalRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Slug       string `json:"slug" binding:"required"`

	Objective string                `json:"objective"`
	Scope     []string              `json:"scope"`
	Timeline  []TimelineStepRequest `json:"timeline"`

	DeliveryDate    string `json:"delivery_date"` // "2006-01-02"
	InvestmentValue string `json:"investment_value" binding:"required"`

	PaymentMethods      []string `json:"payment_methods"`
	CustomPaymentMethod string   `json:"custom_payment_method"`

	Conditions      []string `json:"conditions"`
	RescisionPolicy string   `json:"rescision_policy"`
}

func (r ProposalRequest) toInput() (ucproposal.ProposalInput, error) {
	in := ucproposal.ProposalInput{
		ClientName:          r.ClientName,
		Slug:                r.Slug,
		Objective:           r.Objective,
		Scope:               r.Scope,
		InvestmentValue:     r.InvestmentValue,
		PaymentMethods:      r.PaymentMethods,
		CustomPaymentMethod: r.CustomPaymentMethod,
		Conditions:          r.Conditions,
		RescisionPolicy:     r.RescisionPolicy,
	}

	for _, step := range r.Timeline {
		in.Timeline = append(in.Timeline, models.TimelineStep{
			Step:   step.Step,
			Period: step.Period,
		})
	}

	if r.DeliveryDate != "" {
		d, err := timezone.ParseDate(r.DeliveryDate)
		if err != nil {
			return in, err
		}
		in.DeliveryDate = &d
	}

	return in, nil
}

// --------- Handlers ---------

func (h *ProposalHandler) List(c *gin.Context) {
	proposals, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_proposals"})
		return
	}

	httpresp.List(c, proposals)
}

func (h *ProposalHandler) Create(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_delivery_date"})
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), userID, in)
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_proposal"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProposalHandler) Update(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_delivery_date"})
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), userID, uint(id), in)
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_proposal"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CheckSlug responde se um slug está disponível antes do save.
// GET /api/me/proposals/slug-availability?slug=acme-2025&exclude_id=3
func (h *ProposalHandler) CheckSlug(c *gin.Context) {
	slug := c.Query("slug")

	var excludeID uint
	if raw := c.Query("exclude_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_exclude_id"})
			return
		}
		excludeID = uint(parsed)
	}

	available, err := h.checkSlugUC.Execute(c.Request.Context(), slug, excludeID)
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_check_slug"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":      slug,
		"available": available,
	})
}
