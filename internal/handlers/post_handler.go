package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/httpresp"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

type PostHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPostHandler(db *gorm.DB, audit *audit.Dispatcher) *PostHandler {
	return &PostHandler{db: db, audit: audit}
}

// --------- Requests ---------

type PostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

// --------- Handlers ---------

func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post
	if err := h.db.
		Order("created_at DESC").
		Find(&posts).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_posts"})
		return
	}

	httpresp.List(c, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	if err := h.db.Model(&models.Post{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_post"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "slug_already_exists"})
		return
	}

	post := models.Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}

	if post.Published {
		now := timezone.Now()
		post.PublishedAt = &now
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_post"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "post_created",
		Entity:   "post",
		EntityID: &post.ID,
	})

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var post models.Post
	if err := h.db.First(&post, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_post"})
		return
	}

	var count int64
	if err := h.db.Model(&models.Post{}).
		Where("slug = ? AND id <> ?", req.Slug, post.ID).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_post"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "slug_already_exists"})
		return
	}

	// Primeira publicação carimba published_at; despublicar preserva
	if req.Published && !post.Published {
		now := timezone.Now()
		post.PublishedAt = &now
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.CoverURL = req.CoverURL
	post.Published = req.Published

	if err := h.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_post"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "post_updated",
		Entity:   "post",
		EntityID: &post.ID,
	})

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	result := h.db.Delete(&models.Post{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "post_deleted",
		Entity:   "post",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
