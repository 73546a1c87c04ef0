package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var (
	ErrEventNotFound         = errors.New("schedule event not found")
	ErrNotEventOwner         = errors.New("schedule event does not belong to user")
	ErrInvalidPagesPerDay    = errors.New("pages per day must be positive")
	ErrInvalidDuration       = errors.New("duration minutes must be positive")
	ErrBookNotOnReadingShelf = errors.New("book is not on the reading shelf")
	ErrShelfPagesUnknown     = errors.New("shelf item has no page total")
	ErrNothingLeftToRead     = errors.New("no pages left to read")
	ErrScheduleGroupEmpty    = errors.New("no events found for schedule group")
)

// GenerateScheduleInput describes a reading goal: which book, when to start,
// the daily page target and how long each reading slot lasts.
type GenerateScheduleInput struct {
	GoogleBooksID   string    `json:"google_books_id"`
	Start           time.Time `json:"start"`
	PagesPerDay     int       `json:"pages_per_day"`
	DurationMinutes int       `json:"duration_minutes"`
}

type ScheduleService interface {
	Generate(ctx context.Context, userID string, input GenerateScheduleInput) ([]models.ScheduleEvent, error)
	List(ctx context.Context, userID string) ([]models.ScheduleEvent, error)
	Complete(ctx context.Context, userID string, eventID int64) (*models.ScheduleEvent, error)
	DeleteGroup(ctx context.Context, userID, groupID string) (int64, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	shelfRepo    repository.BookshelfRepository
	novels       NovelService
	shelf        BookshelfService
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	shelfRepo repository.BookshelfRepository,
	novels NovelService,
	shelf BookshelfService,
) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		shelfRepo:    shelfRepo,
		novels:       novels,
		shelf:        shelf,
	}
}

// Generate splits the remaining pages of a book over consecutive days. Each
// day gets the full daily target except the last, which gets whatever is
// left, so the day totals add up exactly to the remaining page count. The
// book must already be on the reading shelf with a known page total.
func (s *scheduleService) Generate(ctx context.Context, userID string, input GenerateScheduleInput) ([]models.ScheduleEvent, error) {
	if input.PagesPerDay <= 0 {
		return nil, ErrInvalidPagesPerDay
	}
	if input.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	novel, err := s.novels.EnsureByGoogleID(ctx, input.GoogleBooksID)
	if err != nil {
		return nil, err
	}

	item, err := s.shelfRepo.FindByUserAndNovel(ctx, userID, novel.ID)
	if err != nil || item.Status != models.ShelfStatusReading {
		return nil, ErrBookNotOnReadingShelf
	}
	if item.TotalPages <= 0 {
		return nil, ErrShelfPagesUnknown
	}

	remaining := item.TotalPages - item.PagesRead
	if remaining <= 0 {
		return nil, ErrNothingLeftToRead
	}

	daysNeeded := (remaining + input.PagesPerDay - 1) / input.PagesPerDay
	duration := time.Duration(input.DurationMinutes) * time.Minute
	groupID := uuid.New().String()

	events := make([]models.ScheduleEvent, daysNeeded)
	pagesLeft := remaining
	for day := 0; day < daysNeeded; day++ {
		pages := input.PagesPerDay
		if pages > pagesLeft {
			pages = pagesLeft
		}
		pagesLeft -= pages

		start := input.Start.AddDate(0, 0, day)
		events[day] = models.ScheduleEvent{
			UserID:        userID,
			GroupID:       groupID,
			BookGoogleID:  novel.GoogleBooksID,
			BookTitle:     novel.Title,
			BookThumbnail: novel.Thumbnail,
			Title:         "Read: " + novel.Title,
			Start:         start,
			End:           start.Add(duration),
			PagesToRead:   pages,
		}
	}

	if err := s.scheduleRepo.CreateBatch(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *scheduleService) List(ctx context.Context, userID string) ([]models.ScheduleEvent, error) {
	return s.scheduleRepo.ListByUser(ctx, userID)
}

// Complete checks off a reading day and advances the bookshelf progress by
// the day's page count. Completing an already completed event is a no-op.
func (s *scheduleService) Complete(ctx context.Context, userID string, eventID int64) (*models.ScheduleEvent, error) {
	event, err := s.scheduleRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	if event.UserID != userID {
		return nil, ErrNotEventOwner
	}
	if event.Completed {
		return event, nil
	}

	event.Completed = true
	if err := s.scheduleRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	if err := s.shelf.AddPagesByGoogleID(ctx, userID, event.BookGoogleID, event.PagesToRead); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteGroup removes a whole reading goal and reports how many events it
// held.
func (s *scheduleService) DeleteGroup(ctx context.Context, userID, groupID string) (int64, error) {
	deleted, err := s.scheduleRepo.DeleteGroup(ctx, groupID, userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrScheduleGroupEmpty
	}
	return deleted, nil
}
