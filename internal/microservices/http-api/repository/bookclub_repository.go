package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type BookClubRepository interface {
	Create(ctx context.Context, club *models.BookClub) error
	FindByID(ctx context.Context, id int64) (*models.BookClub, error)
	ListAll(ctx context.Context) ([]models.BookClub, error)
	Save(ctx context.Context, club *models.BookClub) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, clubID int64, userID string) error
	RemoveMember(ctx context.Context, clubID int64, userID string) error
	IsMember(ctx context.Context, clubID int64, userID string) (bool, error)
	AddPost(ctx context.Context, clubID, postID int64) error
	ListPosts(ctx context.Context, clubID int64) ([]models.Post, error)
}

type bookClubRepository struct {
	db *gorm.DB
}

func NewBookClubRepository(db *gorm.DB) BookClubRepository {
	return &bookClubRepository{db: db}
}

func (r *bookClubRepository) Create(ctx context.Context, club *models.BookClub) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *bookClubRepository) FindByID(ctx context.Context, id int64) (*models.BookClub, error) {
	var club models.BookClub
	err := r.db.WithContext(ctx).
		Preload("CreatedBy", authorFields).
		Preload("Members", authorFields).
		First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// ListAll loads every club with members and posts attached so callers can
// rank them without extra round trips.
func (r *bookClubRepository) ListAll(ctx context.Context) ([]models.BookClub, error) {
	var clubs []models.BookClub
	err := r.db.WithContext(ctx).
		Preload("CreatedBy", authorFields).
		Preload("Members", authorFields).
		Preload("Posts").
		Order("created_at DESC").
		Find(&clubs).Error
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *bookClubRepository) Save(ctx context.Context, club *models.BookClub) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *bookClubRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_club_members WHERE book_club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_club_posts WHERE book_club_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BookClub{}, "id = ?", id).Error
	})
}

func (r *bookClubRepository) AddMember(ctx context.Context, clubID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO book_club_members (book_club_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		clubID, userID,
	).Error
}

func (r *bookClubRepository) RemoveMember(ctx context.Context, clubID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM book_club_members WHERE book_club_id = ? AND user_id = ?",
		clubID, userID,
	).Error
}

func (r *bookClubRepository) IsMember(ctx context.Context, clubID int64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("book_club_members").
		Where("book_club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookClubRepository) AddPost(ctx context.Context, clubID, postID int64) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO book_club_posts (book_club_id, post_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		clubID, postID,
	).Error
}

func (r *bookClubRepository) ListPosts(ctx context.Context, clubID int64) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN book_club_posts bcp ON bcp.post_id = posts.id").
		Where("bcp.book_club_id = ?", clubID).
		Scopes(notDeleted).
		Preload("User", authorFields).
		Preload("Novel").
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
