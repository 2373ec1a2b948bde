package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type ResumeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewResumeHandler(db *gorm.DB, audit *audit.Dispatcher) *ResumeHandler {
	return &ResumeHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ResumeItemRequest struct {
	Type     string          `json:"type" binding:"required"`
	Content  json.RawMessage `json:"content" binding:"required"`
	Position int             `json:"position"`
}

// validateContent decodifica o conteúdo contra o esquema da variante.
// Campos desconhecidos são rejeitados para o tipo não virar saco de dados.
func validateContent(itemType string, raw json.RawMessage) error {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()

	switch itemType {
	case models.ResumeTypeExperience:
		var v models.ResumeExperience
		if err := dec.Decode(&v); err != nil {
			return err
		}
	case models.ResumeTypeEducation:
		var v models.ResumeEducation
		if err := dec.Decode(&v); err != nil {
			return err
		}
	case models.ResumeTypeSkill:
		var v models.ResumeSkill
		if err := dec.Decode(&v); err != nil {
			return err
		}
	case models.ResumeTypeCertification:
		var v models.ResumeCertification
		if err := dec.Decode(&v); err != nil {
			return err
		}
	}

	return nil
}

func isValidResumeType(t string) bool {
	switch t {
	case models.ResumeTypeExperience,
		models.ResumeTypeEducation,
		models.ResumeTypeSkill,
		models.ResumeTypeCertification:
		return true
	}
	return false
}

// --------- Handlers ---------

func (h *ResumeHandler) List(c *gin.Context) {
	var items []models.ResumeItem

	q := h.db.Order("type ASC, position ASC")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	if err := q.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_resume_items"})
		return
	}

	httpresp.List(c, items)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req ResumeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !isValidResumeType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_resume_type"})
		return
	}

	if err := validateContent(req.Type, req.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_resume_content",
			"details": err.Error(),
		})
		return
	}

	item := models.ResumeItem{
		Type:     req.Type,
		Content:  datatypes.JSON(req.Content),
		Position: req.Position,
	}

	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_resume_item"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "resume_item_created",
		Entity:   "resume_item",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusCreated, item)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req ResumeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !isValidResumeType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_resume_type"})
		return
	}

	if err := validateContent(req.Type, req.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_resume_content",
			"details": err.Error(),
		})
		return
	}

	var item models.ResumeItem
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "resume_item_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_resume_item"})
		return
	}

	item.Type = req.Type
	item.Content = datatypes.JSON(req.Content)
	item.Position = req.Position

	if err := h.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_resume_item"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "resume_item_updated",
		Entity:   "resume_item",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusOK, item)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	result := h.db.Delete(&models.ResumeItem{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_resume_item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "resume_item_not_found"})
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "resume_item_deleted",
		Entity:   "resume_item",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
