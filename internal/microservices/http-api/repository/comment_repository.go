package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	TopLevelByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	RepliesOf(ctx context.Context, commentID int64) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	Like(ctx context.Context, commentID int64, userID string) error
	Unlike(ctx context.Context, commentID int64, userID string) error
	LikeUserIDs(ctx context.Context, commentID int64) ([]string, error)
	DeleteTree(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Preload("User", authorFields).
		First(comment, "id = ?", comment.ID).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User", authorFields).
		Preload("Likes", authorFields).
		First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) TopLevelByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND parent_comment_id IS NULL", postID).
		Preload("User", authorFields).
		Preload("Likes", authorFields).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) RepliesOf(ctx context.Context, commentID int64) ([]models.Comment, error) {
	var replies []models.Comment
	err := r.db.WithContext(ctx).
		Where("parent_comment_id = ?", commentID).
		Preload("User", authorFields).
		Preload("Likes", authorFields).
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CountByPosts returns comment counts for a set of posts in one query.
func (r *commentRepository) CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int64
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}

func (r *commentRepository) Like(ctx context.Context, commentID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO comment_likes (comment_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		commentID, userID,
	).Error
}

func (r *commentRepository) Unlike(ctx context.Context, commentID int64, userID string) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM comment_likes WHERE comment_id = ? AND user_id = ?",
		commentID, userID,
	).Error
}

func (r *commentRepository) LikeUserIDs(ctx context.Context, commentID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("comment_likes").
		Where("comment_id = ?", commentID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteTree removes a comment and, recursively, its whole reply subtree.
func (r *commentRepository) DeleteTree(ctx context.Context, id int64) error {
	var replyIDs []int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("parent_comment_id = ?", id).
		Pluck("id", &replyIDs).Error
	if err != nil {
		return err
	}
	for _, replyID := range replyIDs {
		if err := r.DeleteTree(ctx, replyID); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
