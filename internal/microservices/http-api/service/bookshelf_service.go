package service

import (
	"context"
	"errors"
	"time"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var (
	ErrShelfItemNotFound  = errors.New("bookshelf item not found")
	ErrNotShelfOwner      = errors.New("bookshelf item does not belong to user")
	ErrInvalidShelfStatus = errors.New("invalid shelf status")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

type BookshelfService interface {
	SetStatus(ctx context.Context, userID, googleID, status string) (*models.BookshelfItem, error)
	UpdateProgress(ctx context.Context, userID string, itemID int64, pagesRead int) (*models.BookshelfItem, error)
	AddPagesByGoogleID(ctx context.Context, userID, googleID string, pages int) error
	Rate(ctx context.Context, userID string, itemID int64, rating int) (*models.BookshelfItem, error)
	Remove(ctx context.Context, userID string, itemID int64) error
	List(ctx context.Context, userID, status string) ([]models.BookshelfItem, error)
}

type bookshelfService struct {
	shelfRepo repository.BookshelfRepository
	novels    NovelService
}

func NewBookshelfService(shelfRepo repository.BookshelfRepository, novels NovelService) BookshelfService {
	return &bookshelfService{shelfRepo: shelfRepo, novels: novels}
}

func validShelfStatus(status string) bool {
	switch status {
	case models.ShelfStatusWantToRead, models.ShelfStatusReading, models.ShelfStatusRead:
		return true
	}
	return false
}

// SetStatus shelves a catalog book, importing it locally if needed, and
// applies the status transition side effects.
func (s *bookshelfService) SetStatus(ctx context.Context, userID, googleID, status string) (*models.BookshelfItem, error) {
	if !validShelfStatus(status) {
		return nil, ErrInvalidShelfStatus
	}

	novel, err := s.novels.EnsureByGoogleID(ctx, googleID)
	if err != nil {
		return nil, err
	}

	item, err := s.shelfRepo.UpsertStatus(ctx, userID, novel.ID, status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	changed := false

	if item.TotalPages == 0 && novel.PageCount > 0 {
		item.TotalPages = novel.PageCount
		changed = true
	}

	switch status {
	case models.ShelfStatusReading:
		if item.DateStarted == nil {
			item.DateStarted = &now
			changed = true
		}
	case models.ShelfStatusRead:
		if item.DateFinished == nil {
			item.DateFinished = &now
			changed = true
		}
		if item.TotalPages > 0 && item.PagesRead != item.TotalPages {
			item.PagesRead = item.TotalPages
			changed = true
		}
	}

	if changed {
		if err := s.shelfRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// UpdateProgress sets the absolute page position. Reaching the last page
// moves the book to the read shelf.
func (s *bookshelfService) UpdateProgress(ctx context.Context, userID string, itemID int64, pagesRead int) (*models.BookshelfItem, error) {
	item, err := s.shelfRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrShelfItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrNotShelfOwner
	}

	item.PagesRead = clampPages(pagesRead, item.TotalPages)
	s.applyCompletion(item)

	if err := s.shelfRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddPagesByGoogleID advances progress by a page delta, used when a
// scheduled reading day is checked off. Missing shelf entries are ignored,
// the book may have been unshelved after the goal was created.
func (s *bookshelfService) AddPagesByGoogleID(ctx context.Context, userID, googleID string, pages int) error {
	novel, err := s.novels.EnsureByGoogleID(ctx, googleID)
	if err != nil {
		return err
	}

	item, err := s.shelfRepo.FindByUserAndNovel(ctx, userID, novel.ID)
	if err != nil {
		return nil
	}

	item.PagesRead = clampPages(item.PagesRead+pages, item.TotalPages)
	s.applyCompletion(item)

	return s.shelfRepo.Save(ctx, item)
}

func (s *bookshelfService) Rate(ctx context.Context, userID string, itemID int64, rating int) (*models.BookshelfItem, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	item, err := s.shelfRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrShelfItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrNotShelfOwner
	}

	item.Rating = &rating
	if err := s.shelfRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *bookshelfService) Remove(ctx context.Context, userID string, itemID int64) error {
	item, err := s.shelfRepo.FindByID(ctx, itemID)
	if err != nil {
		return ErrShelfItemNotFound
	}
	if item.UserID != userID {
		return ErrNotShelfOwner
	}
	return s.shelfRepo.Delete(ctx, itemID)
}

// List returns the shelf, optionally filtered by status. Items whose novel
// lost its catalog metadata are repaired on the way out.
func (s *bookshelfService) List(ctx context.Context, userID, status string) ([]models.BookshelfItem, error) {
	var items []models.BookshelfItem
	var err error

	if status != "" {
		if !validShelfStatus(status) {
			return nil, ErrInvalidShelfStatus
		}
		items, err = s.shelfRepo.ListByUserAndStatus(ctx, userID, status)
	} else {
		items, err = s.shelfRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Novel != nil && items[i].Novel.Thumbnail == "" {
			repaired, err := s.novels.Repair(ctx, items[i].Novel)
			if err == nil {
				items[i].Novel = repaired
			}
		}
	}
	return items, nil
}

// applyCompletion moves a fully read book to the read shelf.
func (s *bookshelfService) applyCompletion(item *models.BookshelfItem) {
	if item.TotalPages > 0 && item.PagesRead == item.TotalPages && item.Status != models.ShelfStatusRead {
		item.Status = models.ShelfStatusRead
		now := time.Now()
		item.DateFinished = &now
	}
}

func clampPages(pages, total int) int {
	if pages < 0 {
		return 0
	}
	if total > 0 && pages > total {
		return total
	}
	return pages
}
