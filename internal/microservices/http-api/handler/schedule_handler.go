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

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.Generate)
	rg.GET("/", h.List)
	rg.POST("/events/:id/complete", h.Complete)
	rg.DELETE("/groups/:group_id", h.DeleteGroup)
}

func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// may need a catalog import for the book
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	events, err := h.svc.Generate(ctx, c.GetString("userID"), service.GenerateScheduleInput{
		GoogleBooksID:   req.GoogleBooksID,
		Start:           req.Start,
		PagesPerDay:     req.PagesPerDay,
		DurationMinutes: req.DurationMinutes,
	})
	switch {
	case errors.Is(err, service.ErrInvalidPagesPerDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": "pages per day must be positive"})
	case errors.Is(err, service.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration minutes must be positive"})
	case errors.Is(err, service.ErrBookNotOnReadingShelf):
		c.JSON(http.StatusNotFound, gin.H{"error": "book is not on the reading shelf"})
	case errors.Is(err, service.ErrShelfPagesUnknown):
		c.JSON(http.StatusBadRequest, gin.H{"error": "shelf item has no page total"})
	case errors.Is(err, service.ErrNothingLeftToRead):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no pages left to read"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, events)
	}
}

func (h *ScheduleHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	events, err := h.svc.List(ctx, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	event, err := h.svc.Complete(ctx, c.GetString("userID"), id)
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule event not found"})
	case errors.Is(err, service.ErrNotEventOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your schedule event"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, event)
	}
}

func (h *ScheduleHandler) DeleteGroup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.DeleteGroup(ctx, c.GetString("userID"), c.Param("group_id"))
	switch {
	case errors.Is(err, service.ErrScheduleGroupEmpty):
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule group not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
