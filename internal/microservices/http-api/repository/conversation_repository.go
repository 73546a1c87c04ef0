package repository

import (
	"context"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *models.Conversation) error
	Save(ctx context.Context, conv *models.Conversation) error
	FindByID(ctx context.Context, id int64) (*models.Conversation, error)
	FindBetween(ctx context.Context, userA, userB string) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	ListRequestsForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	IDsForUser(ctx context.Context, userID string) ([]int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *conversationRepository) Save(ctx context.Context, conv *models.Conversation) error {
	return r.db.WithContext(ctx).Save(conv).Error
}

func (r *conversationRepository) FindByID(ctx context.Context, id int64) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// FindBetween locates the conversation between two users regardless of who
// started it.
func (r *conversationRepository) FindBetween(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Where("(member_a = ? AND member_b = ?) OR (member_a = ? AND member_b = ?)",
			userA, userB, userB, userA).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForUser returns conversations shown in the primary list: accepted ones,
// plus pending ones the user started themselves.
func (r *conversationRepository) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Where("(member_a = ? OR member_b = ?)", userID, userID).
		Where("status = ? OR (status = ? AND requester_id = ?)",
			models.ConversationAccepted, models.ConversationPending, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// ListRequestsForUser returns pending conversations started by someone else.
func (r *conversationRepository) ListRequestsForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Where("(member_a = ? OR member_b = ?)", userID, userID).
		Where("status = ? AND requester_id <> ?", models.ConversationPending, userID).
		Order("created_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepository) IDsForUser(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.Conversation{}).
		Where("member_a = ? OR member_b = ?", userID, userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *conversationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Conversation, error) {
	if err := r.db.WithContext(ctx).Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
