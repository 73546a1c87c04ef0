package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type BookshelfRepository interface {
	FindByID(ctx context.Context, id int64) (*models.BookshelfItem, error)
	FindByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.BookshelfItem, error)
	UpsertStatus(ctx context.Context, userID string, novelID int64, status string) (*models.BookshelfItem, error)
	Save(ctx context.Context, item *models.BookshelfItem) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID string) ([]models.BookshelfItem, error)
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]models.BookshelfItem, error)
}

type bookshelfRepository struct {
	db *gorm.DB
}

func NewBookshelfRepository(db *gorm.DB) BookshelfRepository {
	return &bookshelfRepository{db: db}
}

func (r *bookshelfRepository) FindByID(ctx context.Context, id int64) (*models.BookshelfItem, error) {
	var item models.BookshelfItem
	err := r.db.WithContext(ctx).Preload("Novel").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *bookshelfRepository) FindByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.BookshelfItem, error) {
	var item models.BookshelfItem
	err := r.db.WithContext(ctx).Preload("Novel").
		Where("user_id = ? AND novel_id = ?", userID, novelID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertStatus creates the shelf entry or updates the status of the existing
// one. A user can only ever hold one entry per novel.
func (r *bookshelfRepository) UpsertStatus(ctx context.Context, userID string, novelID int64, status string) (*models.BookshelfItem, error) {
	var existing models.BookshelfItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id = ?", userID, novelID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		item := &models.BookshelfItem{
			UserID:  userID,
			NovelID: novelID,
			Status:  status,
		}
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, item.ID)
	} else if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&existing).Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, existing.ID)
}

func (r *bookshelfRepository) Save(ctx context.Context, item *models.BookshelfItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *bookshelfRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.BookshelfItem{}, "id = ?", id).Error
}

func (r *bookshelfRepository) ListByUser(ctx context.Context, userID string) ([]models.BookshelfItem, error) {
	var items []models.BookshelfItem
	err := r.db.WithContext(ctx).Preload("Novel").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookshelfRepository) ListByUserAndStatus(ctx context.Context, userID, status string) ([]models.BookshelfItem, error) {
	var items []models.BookshelfItem
	err := r.db.WithContext(ctx).Preload("Novel").
		Where("user_id = ? AND status = ?", userID, status).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
