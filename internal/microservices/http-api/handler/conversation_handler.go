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

type ConversationHandler struct {
	svc service.ConversationService
}

func NewConversationHandler(svc service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func (h *ConversationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Open)
	rg.GET("/", h.List)
	rg.GET("/requests", h.Requests)
	rg.GET("/unread", h.Unread)
	rg.POST("/:id/respond", h.Respond)
	rg.GET("/:id/messages", h.Messages)
	rg.POST("/:id/messages", h.SendMessage)
	rg.POST("/:id/read", h.MarkRead)
}

func (h *ConversationHandler) Open(c *gin.Context) {
	var req dto.OpenConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	conv, err := h.svc.OpenOrCreate(ctx, c.GetString("userID"), req.UserID)
	switch {
	case errors.Is(err, service.ErrSelfConversation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot message yourself"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrConversationCooldown):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "message request was rejected recently, try again later"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, conv)
	}
}

func (h *ConversationHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	summaries, err := h.svc.List(ctx, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *ConversationHandler) Requests(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	summaries, err := h.svc.Requests(ctx, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *ConversationHandler) Unread(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ids, err := h.svc.UnreadConversationIDs(ctx, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_ids": ids})
}

func (h *ConversationHandler) Respond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	conv, err := h.svc.Respond(ctx, c.GetString("userID"), id, *req.Accept)
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, service.ErrNotConversationMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your conversation"})
	case errors.Is(err, service.ErrNotRequestRecipient):
		c.JSON(http.StatusForbidden, gin.H{"error": "only the request recipient can respond"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, conv)
	}
}

func (h *ConversationHandler) Messages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	msgs, err := h.svc.Messages(ctx, c.GetString("userID"), id)
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, service.ErrNotConversationMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your conversation"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, msgs)
	}
}

func (h *ConversationHandler) SendMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.svc.SendMessage(ctx, c.GetString("userID"), id, req.Text)
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, service.ErrNotConversationMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your conversation"})
	case errors.Is(err, service.ErrConversationRejected):
		c.JSON(http.StatusForbidden, gin.H{"error": "conversation was rejected"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, msg)
	}
}

func (h *ConversationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.MarkRead(ctx, c.GetString("userID"), id)
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, service.ErrNotConversationMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your conversation"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
	}
}
