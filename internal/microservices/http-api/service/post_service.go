package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("post does not belong to user")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrEmptyContent    = errors.New("content must not be empty")
)

// CreatePostInput describes a new post. GoogleBooksID is optional, posts
// can exist without a book attached.
type CreatePostInput struct {
	GoogleBooksID string `json:"google_books_id"`
	Content       string `json:"content"`
	PostType      string `json:"post_type"`
	ImageURL      string `json:"image_url"`
}

type PostService interface {
	Create(ctx context.Context, userID string, input CreatePostInput) (*models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
	ListByBook(ctx context.Context, googleID string, types []string) ([]models.Post, error)
	Like(ctx context.Context, userID string, postID int64) error
	Unlike(ctx context.Context, userID string, postID int64) error
	Delete(ctx context.Context, userID string, postID int64) error
}

type postService struct {
	postRepo      repository.PostRepository
	novelRepo     repository.NovelRepository
	novels        NovelService
	notifications NotificationService
}

func NewPostService(
	postRepo repository.PostRepository,
	novelRepo repository.NovelRepository,
	novels NovelService,
	notifications NotificationService,
) PostService {
	return &postService{
		postRepo:      postRepo,
		novelRepo:     novelRepo,
		novels:        novels,
		notifications: notifications,
	}
}

func validPostType(postType string) bool {
	switch postType {
	case models.PostTypeReview, models.PostTypeDiscussion, models.PostTypeQuote:
		return true
	}
	return false
}

func (s *postService) Create(ctx context.Context, userID string, input CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	if !validPostType(input.PostType) {
		return nil, ErrInvalidPostType
	}

	post := &models.Post{
		UserID:   userID,
		Content:  input.Content,
		PostType: input.PostType,
		ImageURL: input.ImageURL,
	}

	if input.GoogleBooksID != "" {
		novel, err := s.novels.EnsureByGoogleID(ctx, input.GoogleBooksID)
		if err != nil {
			return nil, err
		}
		post.NovelID = &novel.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postService) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// ListByBook returns posts attached to a catalog book, optionally filtered
// by post type.
func (s *postService) ListByBook(ctx context.Context, googleID string, types []string) ([]models.Post, error) {
	novel, err := s.novelRepo.FindByGoogleID(ctx, googleID)
	if err != nil {
		return []models.Post{}, nil
	}
	if len(types) == 0 {
		types = []string{models.PostTypeReview, models.PostTypeDiscussion, models.PostTypeQuote}
	}
	return s.postRepo.ListByNovelAndTypes(ctx, novel.ID, types)
}

func (s *postService) Like(ctx context.Context, userID string, postID int64) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return ErrPostNotFound
	}
	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		return err
	}

	_, err = s.notifications.Notify(ctx, post.UserID, userID,
		models.NotificationLike, strconv.FormatInt(postID, 10), "liked your post")
	return err
}

func (s *postService) Unlike(ctx context.Context, userID string, postID int64) error {
	return s.postRepo.Unlike(ctx, postID, userID)
}

func (s *postService) Delete(ctx context.Context, userID string, postID int64) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	return s.postRepo.Delete(ctx, postID)
}
