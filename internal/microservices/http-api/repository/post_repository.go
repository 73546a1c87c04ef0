package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
	ListByNovelAndTypes(ctx context.Context, novelID int64, types []string) ([]models.Post, error)
	FeedCandidates(ctx context.Context, excludeUserID string, excludedPostIDs []int64) ([]models.Post, error)
	Like(ctx context.Context, postID int64, userID string) error
	Unlike(ctx context.Context, postID int64, userID string) error
	LikeUserIDs(ctx context.Context, postID int64) ([]string, error)
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// notDeleted filters out soft-deleted posts on every read path.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

func authorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "profile_picture", "is_verified")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	// Populate author details so the caller can return them immediately
	return r.db.WithContext(ctx).
		Preload("User", authorFields).
		First(post, "id = ?", post.ID).Error
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Preload("User", authorFields).
		Preload("Novel").
		Preload("Likes", authorFields).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Preload("User", authorFields).
		Preload("Novel").
		Preload("Likes", authorFields).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Where("user_id = ?", userID).
		Preload("User", authorFields).
		Preload("Novel").
		Preload("Likes", authorFields).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByNovelAndTypes(ctx context.Context, novelID int64, types []string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Scopes(notDeleted).
		Where("novel_id = ? AND post_type IN ?", novelID, types).
		Preload("User", authorFields).
		Preload("Likes", authorFields).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FeedCandidates returns every post not authored by the user and not in the
// excluded set, newest first, with author, novel and likes populated.
func (r *postRepository) FeedCandidates(ctx context.Context, excludeUserID string, excludedPostIDs []int64) ([]models.Post, error) {
	q := r.db.WithContext(ctx).Scopes(notDeleted).
		Where("user_id <> ?", excludeUserID)
	if len(excludedPostIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedPostIDs)
	}

	var posts []models.Post
	err := q.
		Preload("User", authorFields).
		Preload("Novel").
		Preload("Likes", authorFields).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Like(ctx context.Context, postID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO post_likes (post_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		postID, userID,
	).Error
}

func (r *postRepository) Unlike(ctx context.Context, postID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM post_likes WHERE post_id = ? AND user_id = ?",
		postID, userID,
	).Error
}

func (r *postRepository) LikeUserIDs(ctx context.Context, postID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("post_likes").
		Where("post_id = ?", postID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes the post and every comment attached to it.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id).Error
}
