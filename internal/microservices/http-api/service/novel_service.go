package service

import (
	"context"
	"errors"
	"log/slog"

	"novelverse/internal/ingestion/googlebooks"
	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var ErrNovelNotFound = errors.New("novel not found")

// CatalogClient is the slice of the Google Books client the services need.
type CatalogClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error)
	VolumeByID(ctx context.Context, id string) (*googlebooks.Volume, error)
}

type NovelService interface {
	EnsureByGoogleID(ctx context.Context, googleID string) (*models.Novel, error)
	GetByID(ctx context.Context, id int64) (*models.Novel, error)
	ListAll(ctx context.Context) ([]models.Novel, error)
	Repair(ctx context.Context, novel *models.Novel) (*models.Novel, error)
	SearchCatalog(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error)
	VolumeDetails(ctx context.Context, googleID string) (*googlebooks.Volume, error)
}

type novelService struct {
	repo    repository.NovelRepository
	catalog CatalogClient
	cache   *googlebooks.VolumeCache
	logger  *slog.Logger
}

func NewNovelService(
	repo repository.NovelRepository,
	catalog CatalogClient,
	cache *googlebooks.VolumeCache,
	logger *slog.Logger,
) NovelService {
	return &novelService{repo: repo, catalog: catalog, cache: cache, logger: logger}
}

// EnsureByGoogleID returns the local novel record for a catalog book,
// importing it from the catalog on first reference.
func (s *novelService) EnsureByGoogleID(ctx context.Context, googleID string) (*models.Novel, error) {
	novel, err := s.repo.FindByGoogleID(ctx, googleID)
	if err == nil {
		if novel.Thumbnail == "" {
			return s.Repair(ctx, novel)
		}
		return novel, nil
	}

	vol, err := s.lookupVolume(ctx, googleID)
	if err != nil {
		return nil, err
	}

	novel = &models.Novel{
		GoogleBooksID: vol.GoogleBooksID,
		Title:         vol.Title,
		Authors:       vol.Authors,
		Description:   vol.Description,
		PageCount:     vol.PageCount,
		Categories:    vol.Categories,
		Thumbnail:     vol.Thumbnail,
		CoverImage:    vol.CoverImage,
		PublishedDate: vol.PublishedDate,
		Publisher:     vol.Publisher,
	}
	if err := s.repo.Create(ctx, novel); err != nil {
		return nil, err
	}
	return novel, nil
}

func (s *novelService) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	novel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNovelNotFound
	}
	return novel, nil
}

// ListAll returns every locally imported novel.
func (s *novelService) ListAll(ctx context.Context) ([]models.Novel, error) {
	return s.repo.ListAll(ctx)
}

// Repair refreshes a novel whose catalog metadata went missing, typically a
// record imported before image links were stored. Failures are logged and
// the stale record returned so reads keep working.
func (s *novelService) Repair(ctx context.Context, novel *models.Novel) (*models.Novel, error) {
	vol, err := s.lookupVolume(ctx, novel.GoogleBooksID)
	if err != nil {
		s.logger.Warn("novel repair lookup failed",
			"google_books_id", novel.GoogleBooksID, "error", err)
		return novel, nil
	}

	novel.Title = vol.Title
	novel.Authors = vol.Authors
	novel.Description = vol.Description
	novel.PageCount = vol.PageCount
	novel.Categories = vol.Categories
	novel.Thumbnail = vol.Thumbnail
	novel.CoverImage = vol.CoverImage
	novel.PublishedDate = vol.PublishedDate
	novel.Publisher = vol.Publisher

	if err := s.repo.Save(ctx, novel); err != nil {
		return nil, err
	}
	return novel, nil
}

func (s *novelService) SearchCatalog(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error) {
	if cached, err := s.cache.GetSearch(ctx, query); err == nil && cached != nil {
		return cached, nil
	}

	vols, err := s.catalog.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSearch(ctx, query, vols); err != nil {
		s.logger.Warn("failed to cache catalog search", "query", query, "error", err)
	}
	for i := range vols {
		if err := s.cache.SetVolume(ctx, &vols[i]); err != nil {
			break
		}
	}
	return vols, nil
}

func (s *novelService) VolumeDetails(ctx context.Context, googleID string) (*googlebooks.Volume, error) {
	return s.lookupVolume(ctx, googleID)
}

func (s *novelService) lookupVolume(ctx context.Context, googleID string) (*googlebooks.Volume, error) {
	if cached, err := s.cache.GetVolume(ctx, googleID); err == nil && cached != nil {
		return cached, nil
	}

	vol, err := s.catalog.VolumeByID(ctx, googleID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetVolume(ctx, vol); err != nil {
		s.logger.Warn("failed to cache volume", "google_books_id", googleID, "error", err)
	}
	return vol, nil
}
