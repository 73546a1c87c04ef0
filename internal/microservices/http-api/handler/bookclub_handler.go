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

type BookClubHandler struct {
	svc service.BookClubService
}

func NewBookClubHandler(svc service.BookClubService) *BookClubHandler {
	return &BookClubHandler{svc: svc}
}

func (h *BookClubHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/recommendations", h.Recommendations)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/join", h.Join)
	rg.POST("/:id/leave", h.Leave)
	rg.GET("/:id/posts", h.ListPosts)
	rg.POST("/:id/posts", h.CreatePost)
}

func (h *BookClubHandler) Create(c *gin.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	club, err := h.svc.Create(ctx, c.GetString("userID"), req.Name, req.Description, req.CoverImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, club)
}

func (h *BookClubHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	clubs, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *BookClubHandler) Recommendations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	clubs, err := h.svc.Recommendations(ctx, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *BookClubHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	club, err := h.svc.Get(ctx, id)
	if errors.Is(err, service.ErrClubNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book club not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *BookClubHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	club, err := h.svc.Update(ctx, c.GetString("userID"), id, service.UpdateClubInput{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	switch {
	case errors.Is(err, service.ErrClubNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book club not found"})
	case errors.Is(err, service.ErrNotClubOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your book club"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, club)
	}
}

func (h *BookClubHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.Delete(ctx, c.GetString("userID"), id)
	switch {
	case errors.Is(err, service.ErrClubNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book club not found"})
	case errors.Is(err, service.ErrNotClubOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your book club"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "book club deleted"})
	}
}

func (h *BookClubHandler) Join(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Join(ctx, c.GetString("userID"), id); err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "joined"})
}

func (h *BookClubHandler) Leave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Leave(ctx, c.GetString("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "left"})
}

func (h *BookClubHandler) ListPosts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	posts, err := h.svc.ListPosts(ctx, id)
	if errors.Is(err, service.ErrClubNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book club not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BookClubHandler) CreatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	post, err := h.svc.CreatePost(ctx, c.GetString("userID"), id, service.CreatePostInput{
		GoogleBooksID: req.GoogleBooksID,
		Content:       req.Content,
		PostType:      req.PostType,
		ImageURL:      req.ImageURL,
	})
	switch {
	case errors.Is(err, service.ErrNotClubMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "join the club to post"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, post)
	}
}
