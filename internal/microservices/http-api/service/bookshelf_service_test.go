package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

func TestSetStatus_ImportsBookAndFillsPages(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	novel := &models.Novel{ID: 1, GoogleBooksID: "vol-1", PageCount: 320}
	item := &models.BookshelfItem{ID: 10, UserID: "user-1", NovelID: 1, Status: models.ShelfStatusReading}

	mockNovels.On("EnsureByGoogleID", context.Background(), "vol-1").Return(novel, nil)
	mockShelfRepo.On("UpsertStatus", context.Background(), "user-1", int64(1), models.ShelfStatusReading).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	got, err := svc.SetStatus(context.Background(), "user-1", "vol-1", models.ShelfStatusReading)

	assert.NoError(t, err)
	assert.Equal(t, 320, got.TotalPages)
	assert.NotNil(t, got.DateStarted)
	mockShelfRepo.AssertExpectations(t)
}

func TestSetStatus_ReadMarksAllPages(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	novel := &models.Novel{ID: 1, GoogleBooksID: "vol-1", PageCount: 200}
	item := &models.BookshelfItem{ID: 10, UserID: "user-1", NovelID: 1, Status: models.ShelfStatusRead, TotalPages: 200, PagesRead: 50}

	mockNovels.On("EnsureByGoogleID", context.Background(), "vol-1").Return(novel, nil)
	mockShelfRepo.On("UpsertStatus", context.Background(), "user-1", int64(1), models.ShelfStatusRead).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	got, err := svc.SetStatus(context.Background(), "user-1", "vol-1", models.ShelfStatusRead)

	assert.NoError(t, err)
	assert.Equal(t, 200, got.PagesRead)
	assert.NotNil(t, got.DateFinished)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := NewBookshelfService(new(MockBookshelfRepository), new(MockNovelService))

	_, err := svc.SetStatus(context.Background(), "user-1", "vol-1", "abandoned")

	assert.Equal(t, ErrInvalidShelfStatus, err)
}

func TestUpdateProgress_ClampsToTotal(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	svc := NewBookshelfService(mockShelfRepo, new(MockNovelService))

	item := &models.BookshelfItem{ID: 10, UserID: "user-1", Status: models.ShelfStatusReading, TotalPages: 100, PagesRead: 20}
	mockShelfRepo.On("FindByID", context.Background(), int64(10)).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	got, err := svc.UpdateProgress(context.Background(), "user-1", 10, 500)

	assert.NoError(t, err)
	assert.Equal(t, 100, got.PagesRead)
	// Reaching the last page moves the book to the read shelf.
	assert.Equal(t, models.ShelfStatusRead, got.Status)
	assert.NotNil(t, got.DateFinished)
}

func TestUpdateProgress_NegativeClampsToZero(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	svc := NewBookshelfService(mockShelfRepo, new(MockNovelService))

	item := &models.BookshelfItem{ID: 10, UserID: "user-1", Status: models.ShelfStatusReading, TotalPages: 100, PagesRead: 20}
	mockShelfRepo.On("FindByID", context.Background(), int64(10)).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	got, err := svc.UpdateProgress(context.Background(), "user-1", 10, -5)

	assert.NoError(t, err)
	assert.Equal(t, 0, got.PagesRead)
	assert.Equal(t, models.ShelfStatusReading, got.Status)
}

func TestUpdateProgress_NotOwner(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	svc := NewBookshelfService(mockShelfRepo, new(MockNovelService))

	item := &models.BookshelfItem{ID: 10, UserID: "someone-else"}
	mockShelfRepo.On("FindByID", context.Background(), int64(10)).Return(item, nil)

	_, err := svc.UpdateProgress(context.Background(), "user-1", 10, 50)

	assert.Equal(t, ErrNotShelfOwner, err)
	mockShelfRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddPagesByGoogleID_UnshelvedIsIgnored(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	novel := &models.Novel{ID: 1, GoogleBooksID: "vol-1"}
	mockNovels.On("EnsureByGoogleID", context.Background(), "vol-1").Return(novel, nil)
	mockShelfRepo.On("FindByUserAndNovel", context.Background(), "user-1", int64(1)).
		Return(nil, gorm.ErrRecordNotFound)

	err := svc.AddPagesByGoogleID(context.Background(), "user-1", "vol-1", 15)

	assert.NoError(t, err)
	mockShelfRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddPagesByGoogleID_AdvancesProgress(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	novel := &models.Novel{ID: 1, GoogleBooksID: "vol-1"}
	item := &models.BookshelfItem{ID: 10, UserID: "user-1", NovelID: 1, Status: models.ShelfStatusReading, TotalPages: 100, PagesRead: 90}

	mockNovels.On("EnsureByGoogleID", context.Background(), "vol-1").Return(novel, nil)
	mockShelfRepo.On("FindByUserAndNovel", context.Background(), "user-1", int64(1)).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	err := svc.AddPagesByGoogleID(context.Background(), "user-1", "vol-1", 15)

	assert.NoError(t, err)
	assert.Equal(t, 100, item.PagesRead)
	assert.Equal(t, models.ShelfStatusRead, item.Status)
}

func TestRate_Bounds(t *testing.T) {
	svc := NewBookshelfService(new(MockBookshelfRepository), new(MockNovelService))

	_, err := svc.Rate(context.Background(), "user-1", 10, 0)
	assert.Equal(t, ErrInvalidRating, err)

	_, err = svc.Rate(context.Background(), "user-1", 10, 6)
	assert.Equal(t, ErrInvalidRating, err)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewBookshelfService(new(MockBookshelfRepository), new(MockNovelService))

	_, err := svc.List(context.Background(), "user-1", "abandoned")

	assert.Equal(t, ErrInvalidShelfStatus, err)
}

func TestList_RepairsMissingThumbnails(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	broken := &models.Novel{ID: 1, GoogleBooksID: "vol-1", Title: "The Hobbit"}
	repaired := &models.Novel{ID: 1, GoogleBooksID: "vol-1", Title: "The Hobbit", Thumbnail: "https://example.com/t.jpg"}

	mockShelfRepo.On("ListByUser", context.Background(), "user-1").Return([]models.BookshelfItem{
		{ID: 10, UserID: "user-1", NovelID: 1, Novel: broken},
	}, nil)
	mockNovels.On("Repair", context.Background(), broken).Return(repaired, nil)

	items, err := svc.List(context.Background(), "user-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/t.jpg", items[0].Novel.Thumbnail)
	mockNovels.AssertExpectations(t)
}

func TestAddPagesByGoogleID_AnyOrderReachesTotal(t *testing.T) {
	mockShelfRepo := new(MockBookshelfRepository)
	mockNovels := new(MockNovelService)
	svc := NewBookshelfService(mockShelfRepo, mockNovels)

	novel := &models.Novel{ID: 1, GoogleBooksID: "vol-1"}
	item := &models.BookshelfItem{ID: 10, UserID: "user-1", NovelID: 1, Status: models.ShelfStatusReading, TotalPages: 40}

	mockNovels.On("EnsureByGoogleID", context.Background(), "vol-1").Return(novel, nil)
	mockShelfRepo.On("FindByUserAndNovel", context.Background(), "user-1", int64(1)).Return(item, nil)
	mockShelfRepo.On("Save", context.Background(), item).Return(nil)

	// A 15/15/10 goal checked off out of order still lands exactly on the
	// total page count.
	for _, pages := range []int{10, 15, 15} {
		assert.NoError(t, svc.AddPagesByGoogleID(context.Background(), "user-1", "vol-1", pages))
	}

	assert.Equal(t, 40, item.PagesRead)
	assert.Equal(t, models.ShelfStatusRead, item.Status)
}
