package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type NovelRepository interface {
	Create(ctx context.Context, novel *models.Novel) error
	Save(ctx context.Context, novel *models.Novel) error
	FindByID(ctx context.Context, id int64) (*models.Novel, error)
	FindByGoogleID(ctx context.Context, googleBooksID string) (*models.Novel, error)
	ListAll(ctx context.Context) ([]models.Novel, error)
}

type novelRepository struct {
	db *gorm.DB
}

func NewNovelRepository(db *gorm.DB) NovelRepository {
	return &novelRepository{db: db}
}

func (r *novelRepository) Create(ctx context.Context, novel *models.Novel) error {
	return r.db.WithContext(ctx).Create(novel).Error
}

func (r *novelRepository) Save(ctx context.Context, novel *models.Novel) error {
	return r.db.WithContext(ctx).Save(novel).Error
}

func (r *novelRepository) FindByID(ctx context.Context, id int64) (*models.Novel, error) {
	var novel models.Novel
	if err := r.db.WithContext(ctx).First(&novel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &novel, nil
}

func (r *novelRepository) FindByGoogleID(ctx context.Context, googleBooksID string) (*models.Novel, error) {
	var novel models.Novel
	if err := r.db.WithContext(ctx).First(&novel, "google_books_id = ?", googleBooksID).Error; err != nil {
		return nil, err
	}
	return &novel, nil
}

func (r *novelRepository) ListAll(ctx context.Context) ([]models.Novel, error) {
	var novels []models.Novel
	if err := r.db.WithContext(ctx).Find(&novels).Error; err != nil {
		return nil, err
	}
	return novels, nil
}
