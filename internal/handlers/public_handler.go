package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	uccheckout "github.com/feliperamosdev/portfolio-api/internal/usecase/checkout"
	ucproposal "github.com/feliperamosdev/portfolio-api/internal/usecase/proposal"
)

// PublicHandler concentra tudo que o site expõe sem autenticação:
// leitura do portfólio, proposta por slug, aceite e o fluxo de checkout
// pelo link único.
type PublicHandler struct {
	db *gorm.DB

	getProposalUC *ucproposal.GetPublicProposal
	acceptUC      *ucproposal.AcceptProposal

	getCheckoutUC   *uccheckout.GetCheckoutByLink
	selectPaymentUC *uccheckout.SelectPaymentMethod
}

func NewPublicHandler(
	db *gorm.DB,
	getProposalUC *ucproposal.GetPublicProposal,
	acceptUC *ucproposal.AcceptProposal,
	getCheckoutUC *uccheckout.GetCheckoutByLink,
	selectPaymentUC *uccheckout.SelectPaymentMethod,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		getProposalUC:   getProposalUC,
		acceptUC:        acceptUC,
		getCheckoutUC:   getCheckoutUC,
		selectPaymentUC: selectPaymentUC,
	}
}

// --------- Requests ---------

type AcceptProposalRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientDocument string `json:"client_document"`
	ClientEmail    string `json:"client_email"`
	ClientRole     string `json:"client_role"`
	Declaration    string `json:"declaration"`
}

type SelectPaymentRequest struct {
	Method       string `json:"method" binding:"required"`
	Installments int    `json:"installments"`
}

// --------- Proposta ---------

// GET /api/public/proposals/:slug
func (h *PublicHandler) GetProposal(c *gin.Context) {
	p, err := h.getProposalUC.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_proposal"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "proposal_not_found"})
		return
	}

	httpresp.Data(c, p)
}

// POST /api/public/proposals/:slug/accept
func (h *PublicHandler) AcceptProposal(c *gin.Context) {
	var req AcceptProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	content, err := h.acceptUC.Execute(c.Request.Context(), c.Param("slug"), ucproposal.AcceptanceInput{
		ClientName:     req.ClientName,
		ClientDocument: req.ClientDocument,
		ClientEmail:    req.ClientEmail,
		ClientRole:     req.ClientRole,
		Declaration:    req.Declaration,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_accept_proposal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": content})
}

// --------- Checkout ---------

// GET /api/public/checkouts/:link
//
// Link desconhecido responde 200 com data: null — o front trata a
// ausência sem diferenciar erro de inexistência.
func (h *PublicHandler) GetCheckout(c *gin.Context) {
	ck, err := h.getCheckoutUC.Execute(c.Request.Context(), c.Param("link"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_checkout"})
		return
	}

	if ck == nil {
		httpresp.Data(c, nil)
		return
	}

	httpresp.Data(c, ck)
}

// POST /api/public/checkouts/:link/payment-method
func (h *PublicHandler) SelectPayment(c *gin.Context) {
	var req SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ck, err := h.selectPaymentUC.Execute(c.Request.Context(), uccheckout.SelectPaymentInput{
		Link:         c.Param("link"),
		Method:       req.Method,
		Installments: req.Installments,
	})
	if err != nil {
		if httperr.FromBusiness(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_select_payment"})
		return
	}

	c.JSON(http.StatusOK, ck)
}

// --------- Portfólio ---------

// GET /api/public/projects
func (h *PublicHandler) ListProjects(c *gin.Context) {
	var projects []models.Project
	if err := h.db.
		Order("featured DESC, position ASC, created_at DESC").
		Find(&projects).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_projects"})
		return
	}

	httpresp.List(c, projects)
}

// GET /api/public/posts — só publicados
func (h *PublicHandler) ListPosts(c *gin.Context) {
	var posts []models.Post
	if err := h.db.
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_posts"})
		return
	}

	httpresp.List(c, posts)
}

// GET /api/public/posts/:slug
func (h *PublicHandler) GetPost(c *gin.Context) {
	var post models.Post
	if err := h.db.
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&post).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_post"})
		return
	}

	httpresp.Data(c, post)
}

// GET /api/public/resume
func (h *PublicHandler) GetResume(c *gin.Context) {
	var items []models.ResumeItem
	if err := h.db.
		Order("type ASC, position ASC").
		Find(&items).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_resume"})
		return
	}

	httpresp.List(c, items)
}
