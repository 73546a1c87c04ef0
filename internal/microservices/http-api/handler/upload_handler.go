package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/ingestion/imagehost"
)

const maxUploadBytes = 10 << 20 // 10 MB

// UploadHandler pushes user images to the hosting service and returns the
// hosted URL for use in posts and profiles.
type UploadHandler struct {
	uploader *imagehost.Uploader
}

func NewUploadHandler(uploader *imagehost.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/image", h.UploadImage)
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	result, err := h.uploader.Upload(ctx, fileHeader.Filename, file)
	if errors.Is(err, imagehost.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":       result.SecureURL,
		"public_id": result.PublicID,
	})
}
