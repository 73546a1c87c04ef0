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
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment does not belong to user")
	ErrReplyMismatch   = errors.New("parent comment belongs to a different post")
)

// CommentThread is one top-level comment with its replies attached.
type CommentThread struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

type CommentService interface {
	Create(ctx context.Context, userID string, postID int64, content string, parentCommentID *int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]CommentThread, error)
	Like(ctx context.Context, userID string, commentID int64) error
	Unlike(ctx context.Context, userID string, commentID int64) error
	Delete(ctx context.Context, userID string, commentID int64) error
}

type commentService struct {
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	notifications NotificationService
	realtime      RealtimeNotifier
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	notifications NotificationService,
	realtime RealtimeNotifier,
) CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		notifications: notifications,
		realtime:      realtime,
	}
}

// Create adds a comment or a reply. The post author is notified for
// top-level comments, the parent comment author for replies. Everyone
// watching the post gets a realtime event.
func (s *commentService) Create(ctx context.Context, userID string, postID int64, content string, parentCommentID *int64) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var parent *models.Comment
	if parentCommentID != nil {
		parent, err = s.commentRepo.FindByID(ctx, *parentCommentID)
		if err != nil {
			return nil, ErrCommentNotFound
		}
		if parent.PostID != postID {
			return nil, ErrReplyMismatch
		}
	}

	comment := &models.Comment{
		UserID:          userID,
		PostID:          postID,
		Content:         content,
		ParentCommentID: parentCommentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	entityID := strconv.FormatInt(postID, 10)
	if parent != nil {
		_, err = s.notifications.Notify(ctx, parent.UserID, userID,
			models.NotificationReply, entityID, "replied to your comment")
	} else {
		_, err = s.notifications.Notify(ctx, post.UserID, userID,
			models.NotificationComment, entityID, "commented on your post")
	}
	if err != nil {
		return nil, err
	}

	if s.realtime != nil {
		event := "newComment"
		if parent != nil {
			event = "newReply"
		}
		s.realtime.EmitToPost(postID, event, comment)
	}
	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]CommentThread, error) {
	comments, err := s.commentRepo.TopLevelByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	threads := make([]CommentThread, 0, len(comments))
	for _, comment := range comments {
		replies, err := s.commentRepo.RepliesOf(ctx, comment.ID)
		if err != nil {
			return nil, err
		}
		threads = append(threads, CommentThread{Comment: comment, Replies: replies})
	}
	return threads, nil
}

func (s *commentService) Like(ctx context.Context, userID string, commentID int64) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return ErrCommentNotFound
	}
	if err := s.commentRepo.Like(ctx, commentID, userID); err != nil {
		return err
	}

	if s.realtime != nil {
		s.realtime.EmitToPost(comment.PostID, "commentUpdated", map[string]any{
			"comment_id": commentID,
		})
	}

	_, err = s.notifications.Notify(ctx, comment.UserID, userID,
		models.NotificationLikeComment, strconv.FormatInt(comment.PostID, 10), "liked your comment")
	return err
}

func (s *commentService) Unlike(ctx context.Context, userID string, commentID int64) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return ErrCommentNotFound
	}
	if err := s.commentRepo.Unlike(ctx, commentID, userID); err != nil {
		return err
	}
	if s.realtime != nil {
		s.realtime.EmitToPost(comment.PostID, "commentUpdated", map[string]any{
			"comment_id": commentID,
		})
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, userID string, commentID int64) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}
	if err := s.commentRepo.DeleteTree(ctx, commentID); err != nil {
		return err
	}
	if s.realtime != nil {
		s.realtime.EmitToPost(comment.PostID, "commentUpdated", map[string]any{
			"comment_id": commentID,
			"deleted":    true,
		})
	}
	return nil
}
