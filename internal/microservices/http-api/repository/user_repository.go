package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsernameWithGraph(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]any) (*models.User, error)
	SearchByUsername(ctx context.Context, term string, limit int) ([]models.User, error)
	UpdateLastSeen(ctx context.Context, userID string) error

	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error

	AddFeedback(ctx context.Context, fb *models.PostFeedback) error
	FeedbackPostIDs(ctx context.Context, userID string) ([]int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsernameWithGraph(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Followers", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_picture", "is_verified")
		}).
		Preload("Following", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_picture", "is_verified")
		}).
		First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, fields map[string]any) (*models.User, error) {
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Updates(fields).Error; err != nil {
		return nil, err
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SearchByUsername(ctx context.Context, term string, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "profile_picture", "is_verified").
		Where("username ILIKE ?", "%"+term+"%").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateLastSeen(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}

func (r *userRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("user_follows").
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("user_follows").
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO user_follows (follower_id, followee_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		followerID, followeeID,
	).Error
}

func (r *userRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM user_follows WHERE follower_id = ? AND followee_id = ?",
		followerID, followeeID,
	).Error
}

func (r *userRepository) AddFeedback(ctx context.Context, fb *models.PostFeedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *userRepository) FeedbackPostIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.PostFeedback{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
