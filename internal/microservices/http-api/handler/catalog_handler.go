package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/internal/ingestion/googlebooks"
	"novelverse/internal/microservices/http-api/service"
)

// CatalogHandler serves book lookups backed by the Google Books API and a
// global search across users and books.
type CatalogHandler struct {
	novels service.NovelService
	search service.SearchService
}

func NewCatalogHandler(novels service.NovelService, search service.SearchService) *CatalogHandler {
	return &CatalogHandler{novels: novels, search: search}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.SearchBooks)
	rg.GET("/books/:google_id", h.BookDetails)
	rg.GET("/novels", h.ListNovels)
	rg.GET("/novels/:id", h.NovelByID)
	rg.GET("/search", h.GlobalSearch)
}

// ListNovels returns the locally imported novel records, as opposed to the
// live catalog lookups under /books.
func (h *CatalogHandler) ListNovels(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	novels, err := h.novels.ListAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, novels)
}

func (h *CatalogHandler) NovelByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	novel, err := h.novels.GetByID(ctx, id)
	if errors.Is(err, service.ErrNovelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, novel)
}

func (h *CatalogHandler) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	volumes, err := h.novels.SearchCatalog(ctx, query, 20)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog lookup failed"})
		return
	}
	c.JSON(http.StatusOK, volumes)
}

func (h *CatalogHandler) BookDetails(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	volume, err := h.novels.VolumeDetails(ctx, c.Param("google_id"))
	if errors.Is(err, googlebooks.ErrVolumeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog lookup failed"})
		return
	}
	c.JSON(http.StatusOK, volume)
}

func (h *CatalogHandler) GlobalSearch(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	results, err := h.search.Search(ctx, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
