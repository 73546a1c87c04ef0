package service

import (
	"context"
	"errors"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

var ErrNotNotificationOwner = errors.New("notification does not belong to user")

type NotificationService interface {
	Notify(ctx context.Context, recipientID, senderID, notifType, entityID, title string) (*models.Notification, error)
	NotifySystem(ctx context.Context, recipientID, notifType, entityID, title string) (*models.Notification, error)
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, notificationID int64) error
}

type notificationService struct {
	repo     repository.NotificationRepository
	realtime RealtimeNotifier
}

func NewNotificationService(repo repository.NotificationRepository, realtime RealtimeNotifier) NotificationService {
	return &notificationService{repo: repo, realtime: realtime}
}

// Notify stores a notification and pushes it to the recipient if they are
// connected. Acting on your own content never notifies.
func (s *notificationService) Notify(ctx context.Context, recipientID, senderID, notifType, entityID, title string) (*models.Notification, error) {
	if recipientID == senderID {
		return nil, nil
	}

	notification := &models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notifType,
		EntityID:    entityID,
		Title:       title,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if s.realtime != nil {
		s.realtime.EmitToUser(recipientID, "getNotification", notification)
	}
	return notification, nil
}

// NotifySystem stores a notification that does not come from another user,
// such as a reading reminder. The sender column points back at the
// recipient to satisfy the foreign key.
func (s *notificationService) NotifySystem(ctx context.Context, recipientID, notifType, entityID, title string) (*models.Notification, error) {
	notification := &models.Notification{
		RecipientID: recipientID,
		SenderID:    recipientID,
		Type:        notifType,
		EntityID:    entityID,
		Title:       title,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if s.realtime != nil {
		s.realtime.EmitToUser(recipientID, "getNotification", notification)
	}
	return notification, nil
}

func (s *notificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repo.ListByRecipient(ctx, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID string, notificationID int64) error {
	notification, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return ErrNotNotificationOwner
	}
	return s.repo.Delete(ctx, notificationID)
}
