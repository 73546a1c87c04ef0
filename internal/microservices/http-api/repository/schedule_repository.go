package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"novelverse/internal/microservices/http-api/models"
)

type ScheduleRepository interface {
	CreateBatch(ctx context.Context, events []models.ScheduleEvent) error
	FindByID(ctx context.Context, id int64) (*models.ScheduleEvent, error)
	Save(ctx context.Context, event *models.ScheduleEvent) error
	ListByUser(ctx context.Context, userID string) ([]models.ScheduleEvent, error)
	DeleteGroup(ctx context.Context, groupID, userID string) (int64, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.ScheduleEvent, error)
	FindEndedWithoutFollowUp(ctx context.Context, before time.Time) ([]models.ScheduleEvent, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateBatch(ctx context.Context, events []models.ScheduleEvent) error {
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id int64) (*models.ScheduleEvent, error) {
	var event models.ScheduleEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *scheduleRepository) Save(ctx context.Context, event *models.ScheduleEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteGroup removes every event of a reading goal, completed or not, and
// reports how many rows went away.
func (r *scheduleRepository) DeleteGroup(ctx context.Context, groupID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.ScheduleEvent{})
	return res.RowsAffected, res.Error
}

// FindStartingBetween returns incomplete events with start in [from, to).
func (r *scheduleRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent
	err := r.db.WithContext(ctx).
		Where("start >= ? AND start < ? AND completed = ?", from, to, false).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindEndedWithoutFollowUp returns incomplete events that ended before the
// given time and have not had a follow-up notification yet.
func (r *scheduleRepository) FindEndedWithoutFollowUp(ctx context.Context, before time.Time) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent
	err := r.db.WithContext(ctx).
		Where(`"end" < ? AND completed = ? AND follow_up_sent = ?`, before, false, false).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
