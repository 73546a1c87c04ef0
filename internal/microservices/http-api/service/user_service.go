package service

import (
	"context"
	"errors"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfFollow   = errors.New("cannot follow yourself")
)

const searchResultLimit = 20

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Name           *string `json:"name"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	Website        *string `json:"website"`
	ProfilePicture *string `json:"profile_picture"`
	CoverPhoto     *string `json:"cover_photo"`
}

type UserService interface {
	GetProfile(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	Search(ctx context.Context, term string) ([]models.User, error)
	Heartbeat(ctx context.Context, userID string) error
	HidePost(ctx context.Context, userID string, postID int64, reason string) error
}

type userService struct {
	userRepo      repository.UserRepository
	notifications NotificationService
}

func NewUserService(userRepo repository.UserRepository, notifications NotificationService) UserService {
	return &userService{userRepo: userRepo, notifications: notifications}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsernameWithGraph(ctx, username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.Website != nil {
		fields["website"] = *input.Website
	}
	if input.ProfilePicture != nil {
		fields["profile_picture"] = *input.ProfilePicture
	}
	if input.CoverPhoto != nil {
		fields["cover_photo"] = *input.CoverPhoto
	}

	if len(fields) == 0 {
		return s.GetByID(ctx, userID)
	}
	return s.userRepo.UpdateProfile(ctx, userID, fields)
}

func (s *userService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}
	if _, err := s.userRepo.FindByID(followeeID); err != nil {
		return ErrUserNotFound
	}

	already, err := s.userRepo.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	if err := s.userRepo.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}

	follower, err := s.userRepo.FindByID(followerID)
	if err != nil {
		return err
	}
	_, err = s.notifications.Notify(ctx, followeeID, followerID,
		models.NotificationFollow, followerID, follower.Username+" started following you")
	return err
}

func (s *userService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return s.userRepo.Unfollow(ctx, followerID, followeeID)
}

func (s *userService) Search(ctx context.Context, term string) ([]models.User, error) {
	if term == "" {
		return []models.User{}, nil
	}
	return s.userRepo.SearchByUsername(ctx, term, searchResultLimit)
}

// Heartbeat records user activity for presence and last-seen display.
func (s *userService) Heartbeat(ctx context.Context, userID string) error {
	return s.userRepo.UpdateLastSeen(ctx, userID)
}

// HidePost records negative feedback so the feed stops surfacing the post
// for this user.
func (s *userService) HidePost(ctx context.Context, userID string, postID int64, reason string) error {
	return s.userRepo.AddFeedback(ctx, &models.PostFeedback{
		UserID: userID,
		PostID: postID,
		Reason: reason,
	})
}
