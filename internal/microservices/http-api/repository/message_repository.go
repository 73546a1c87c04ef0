package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	ListByConversation(ctx context.Context, conversationID int64) ([]models.Message, error)
	LastMessage(ctx context.Context, conversationID int64) (*models.Message, error)
	CountUnread(ctx context.Context, conversationID int64, notSenderID string) (int64, error)
	MarkAllRead(ctx context.Context, conversationID int64, notSenderID string) error
	UnreadConversationIDs(ctx context.Context, conversationIDs []int64, notSenderID string) ([]int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) LastMessage(ctx context.Context, conversationID int64) (*models.Message, error) {
	var msg models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&msg).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) CountUnread(ctx context.Context, conversationID int64, notSenderID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND is_read = ? AND sender_id <> ?",
			conversationID, false, notSenderID).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) MarkAllRead(ctx context.Context, conversationID int64, notSenderID string) error {
	return r.db.WithContext(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND is_read = ? AND sender_id <> ?",
			conversationID, false, notSenderID).
		Update("is_read", true).Error
}

// UnreadConversationIDs returns the distinct conversations holding unread
// messages sent by someone other than the given user.
func (r *messageRepository) UnreadConversationIDs(ctx context.Context, conversationIDs []int64, notSenderID string) ([]int64, error) {
	if len(conversationIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Distinct("conversation_id").
		Where("conversation_id IN ? AND is_read = ? AND sender_id <> ?",
			conversationIDs, false, notSenderID).
		Pluck("conversation_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
