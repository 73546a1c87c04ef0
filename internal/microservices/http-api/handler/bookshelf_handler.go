package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/microservices/http-api/dto"
	"novelverse/internal/microservices/http-api/service"
)

type BookshelfHandler struct {
	svc service.BookshelfService
}

func NewBookshelfHandler(svc service.BookshelfService) *BookshelfHandler {
	return &BookshelfHandler{svc: svc}
}

func (h *BookshelfHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.SetStatus)
	rg.GET("/", h.List)
	rg.PUT("/:id/progress", h.UpdateProgress)
	rg.PUT("/:id/rating", h.Rate)
	rg.DELETE("/:id", h.Remove)
}

func (h *BookshelfHandler) SetStatus(c *gin.Context) {
	var req dto.SetShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// catalog import may need an upstream call
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	item, err := h.svc.SetStatus(ctx, c.GetString("userID"), req.GoogleBooksID, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *BookshelfHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.svc.List(ctx, c.GetString("userID"), c.Query("status"))
	if errors.Is(err, service.ErrInvalidShelfStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shelf status"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *BookshelfHandler) UpdateProgress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.svc.UpdateProgress(ctx, c.GetString("userID"), id, *req.PagesRead)
	switch {
	case errors.Is(err, service.ErrShelfItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bookshelf item not found"})
	case errors.Is(err, service.ErrNotShelfOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your bookshelf item"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, item)
	}
}

func (h *BookshelfHandler) Rate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.svc.Rate(ctx, c.GetString("userID"), id, req.Rating)
	switch {
	case errors.Is(err, service.ErrShelfItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bookshelf item not found"})
	case errors.Is(err, service.ErrNotShelfOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your bookshelf item"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, item)
	}
}

func (h *BookshelfHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.Remove(ctx, c.GetString("userID"), id)
	switch {
	case errors.Is(err, service.ErrShelfItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bookshelf item not found"})
	case errors.Is(err, service.ErrNotShelfOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your bookshelf item"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "removed from shelf"})
	}
}
