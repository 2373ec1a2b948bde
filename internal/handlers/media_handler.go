package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/middleware"
	"github.com/feliperamosdev/portfolio-api/internal/storage"
)

// Limite do upload antes da conversão
const maxUploadBytes = 10 << 20 // 10 MB

type MediaHandler struct {
	storage *storage.MediaStorage
	audit   *audit.Dispatcher
}

func NewMediaHandler(storage *storage.MediaStorage, audit *audit.Dispatcher) *MediaHandler {
	return &MediaHandler{storage: storage, audit: audit}
}

// Upload recebe multipart (campo "file"), converte para WebP e grava no
// bucket. O campo opcional "folder" separa capas de posts, projetos etc.
// POST /api/me/media
func (h *MediaHandler) Upload(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_file"})
		return
	}

	url, err := h.storage.UploadImage(c.Request.Context(), folder, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "failed_to_upload_image",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "media_uploaded",
		Entity: "media",
		Metadata: map[string]any{
			"folder": folder,
			"url":    url,
		},
	})

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
