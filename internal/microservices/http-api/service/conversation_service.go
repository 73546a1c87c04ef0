package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

// A rejected request blocks a new one to the same person for this long.
const rejectionCooldown = 30 * 24 * time.Hour

var (
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrNotConversationMember = errors.New("user is not part of this conversation")
	ErrConversationCooldown  = errors.New("message request was rejected recently")
	ErrConversationRejected  = errors.New("conversation has been rejected")
	ErrSelfConversation      = errors.New("cannot start a conversation with yourself")
	ErrNotRequestRecipient   = errors.New("only the request recipient can respond")
)

// ConversationSummary is one row of the inbox: the thread, who it is with,
// the latest message and how many are unread.
type ConversationSummary struct {
	Conversation models.Conversation `json:"conversation"`
	OtherUser    *models.User        `json:"other_user,omitempty"`
	LastMessage  *models.Message     `json:"last_message,omitempty"`
	UnreadCount  int64               `json:"unread_count"`
}

type ConversationService interface {
	OpenOrCreate(ctx context.Context, requesterID, otherUserID string) (*models.Conversation, error)
	List(ctx context.Context, userID string) ([]ConversationSummary, error)
	Requests(ctx context.Context, userID string) ([]ConversationSummary, error)
	Respond(ctx context.Context, userID string, conversationID int64, accept bool) (*models.Conversation, error)
	Messages(ctx context.Context, userID string, conversationID int64) ([]models.Message, error)
	SendMessage(ctx context.Context, senderID string, conversationID int64, text string) (*models.Message, error)
	MarkRead(ctx context.Context, userID string, conversationID int64) error
	UnreadConversationIDs(ctx context.Context, userID string) ([]int64, error)
}

type conversationService struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	realtime RealtimeNotifier
}

func NewConversationService(
	convRepo repository.ConversationRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	realtime RealtimeNotifier,
) ConversationService {
	return &conversationService{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
		realtime: realtime,
	}
}

// OpenOrCreate returns the thread between two users, creating a pending
// request if none exists. A rejection inside the cooldown window blocks a
// new request; past the window the thread resets to pending.
func (s *conversationService) OpenOrCreate(ctx context.Context, requesterID, otherUserID string) (*models.Conversation, error) {
	if requesterID == otherUserID {
		return nil, ErrSelfConversation
	}
	if _, err := s.userRepo.FindByID(otherUserID); err != nil {
		return nil, ErrUserNotFound
	}

	conv, err := s.convRepo.FindBetween(ctx, requesterID, otherUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conv = &models.Conversation{
			MemberA:     requesterID,
			MemberB:     otherUserID,
			RequesterID: requesterID,
			Status:      models.ConversationPending,
		}
		if err := s.convRepo.Create(ctx, conv); err != nil {
			return nil, err
		}
		return conv, nil
	}
	if err != nil {
		return nil, err
	}

	if conv.Status == models.ConversationRejected {
		if time.Since(conv.UpdatedAt) < rejectionCooldown {
			return nil, ErrConversationCooldown
		}
		conv.Status = models.ConversationPending
		conv.RequesterID = requesterID
		if err := s.convRepo.Save(ctx, conv); err != nil {
			return nil, err
		}
	}
	return conv, nil
}

func (s *conversationService) List(ctx context.Context, userID string) ([]ConversationSummary, error) {
	convs, err := s.convRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, userID, convs)
}

func (s *conversationService) Requests(ctx context.Context, userID string) ([]ConversationSummary, error) {
	convs, err := s.convRepo.ListRequestsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, userID, convs)
}

func (s *conversationService) summarize(ctx context.Context, userID string, convs []models.Conversation) ([]ConversationSummary, error) {
	summaries := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		summary := ConversationSummary{Conversation: conv}

		if other, err := s.userRepo.FindByID(conv.OtherMember(userID)); err == nil {
			summary.OtherUser = other
		}

		last, err := s.msgRepo.LastMessage(ctx, conv.ID)
		if err != nil {
			return nil, err
		}
		summary.LastMessage = last

		unread, err := s.msgRepo.CountUnread(ctx, conv.ID, userID)
		if err != nil {
			return nil, err
		}
		summary.UnreadCount = unread

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Respond accepts or rejects a pending request. Only the recipient of the
// request may respond.
func (s *conversationService) Respond(ctx context.Context, userID string, conversationID int64, accept bool) (*models.Conversation, error) {
	conv, err := s.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasMember(userID) {
		return nil, ErrNotConversationMember
	}
	if conv.RequesterID == userID {
		return nil, ErrNotRequestRecipient
	}

	status := models.ConversationRejected
	if accept {
		status = models.ConversationAccepted
	}
	conv, err = s.convRepo.UpdateStatus(ctx, conversationID, status)
	if err != nil {
		return nil, err
	}

	if accept && s.realtime != nil {
		s.realtime.EmitToUser(conv.OtherMember(userID), "requestAccepted", conv)
	}
	return conv, nil
}

func (s *conversationService) Messages(ctx context.Context, userID string, conversationID int64) ([]models.Message, error) {
	conv, err := s.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasMember(userID) {
		return nil, ErrNotConversationMember
	}
	return s.msgRepo.ListByConversation(ctx, conversationID)
}

// SendMessage appends to the thread and pushes it to the other member. A
// reply from the request recipient implicitly accepts the request.
func (s *conversationService) SendMessage(ctx context.Context, senderID string, conversationID int64, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	conv, err := s.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasMember(senderID) {
		return nil, ErrNotConversationMember
	}
	if conv.Status == models.ConversationRejected {
		return nil, ErrConversationRejected
	}

	if conv.Status == models.ConversationPending && conv.RequesterID != senderID {
		conv, err = s.convRepo.UpdateStatus(ctx, conversationID, models.ConversationAccepted)
		if err != nil {
			return nil, err
		}
	}

	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Touch updated_at so the thread bubbles up in the inbox.
	if err := s.convRepo.Save(ctx, conv); err != nil {
		return nil, err
	}

	if s.realtime != nil {
		s.realtime.EmitToUser(conv.OtherMember(senderID), "getMessage", msg)
	}
	return msg, nil
}

func (s *conversationService) MarkRead(ctx context.Context, userID string, conversationID int64) error {
	conv, err := s.convRepo.FindByID(ctx, conversationID)
	if err != nil {
		return ErrConversationNotFound
	}
	if !conv.HasMember(userID) {
		return ErrNotConversationMember
	}

	if err := s.msgRepo.MarkAllRead(ctx, conversationID, userID); err != nil {
		return err
	}

	if s.realtime != nil {
		s.realtime.EmitToUser(conv.OtherMember(userID), "messagesSeen", map[string]any{
			"conversation_id": conversationID,
			"seen_by":         userID,
		})
	}
	return nil
}

func (s *conversationService) UnreadConversationIDs(ctx context.Context, userID string) ([]int64, error) {
	ids, err := s.convRepo.IDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.msgRepo.UnreadConversationIDs(ctx, ids, userID)
}
