package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type ProjectHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProjectHandler(db *gorm.DB, audit *audit.Dispatcher) *ProjectHandler {
	return &ProjectHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CoverURL    string   `json:"cover_url"`
	RepoURL     string   `json:"repo_url"`
	DemoURL     string   `json:"demo_url"`
	Featured    bool     `json:"featured"`
	Position    int      `json:"position"`
}

func (r ProjectRequest) apply(p *models.Project) {
	p.Title = r.Title
	p.Description = r.Description
	p.Tags = datatypes.NewJSONSlice(r.Tags)
	p.CoverURL = r.CoverURL
	p.RepoURL = r.RepoURL
	p.DemoURL = r.DemoURL
	p.Featured = r.Featured
	p.Position = r.Position
}

// --------- Handlers ---------

func (h *ProjectHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.db.
		Order("featured DESC, position ASC, created_at DESC").
		Find(&projects).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_projects"})
		return
	}

	httpresp.List(c, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var p models.Project
	req.apply(&p)

	if err := h.db.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_project"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_created",
		Entity:   "project",
		EntityID: &p.ID,
	})

	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var p models.Project
	if err := h.db.First(&p, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_project"})
		return
	}

	req.apply(&p)

	if err := h.db.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_project"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_updated",
		Entity:   "project",
		EntityID: &p.ID,
	})

	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	result := h.db.Delete(&models.Project{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "project_deleted",
		Entity:   "project",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
