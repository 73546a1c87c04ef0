package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
	"novelverse/internal/microservices/http-api/service"
)

const (
	scanInterval = time.Minute

	// Reminders fire for events starting 14 to 15 minutes from now, so a
	// minute-interval scan catches each event exactly once.
	reminderLead   = 14 * time.Minute
	reminderWindow = time.Minute
)

// ScheduleNotifier scans the reading schedule once a minute and sends two
// kinds of notifications: a reminder shortly before a reading day starts,
// and a follow-up after one ends unfinished.
type ScheduleNotifier struct {
	scheduleRepo  repository.ScheduleRepository
	notifications service.NotificationService
	logger        *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewScheduleNotifier(
	scheduleRepo repository.ScheduleRepository,
	notifications service.NotificationService,
	logger *slog.Logger,
) *ScheduleNotifier {
	return &ScheduleNotifier{
		scheduleRepo:  scheduleRepo,
		notifications: notifications,
		logger:        logger,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start launches the scan loop in its own goroutine.
func (n *ScheduleNotifier) Start() {
	go n.run()
	n.logger.Info("schedule notifier started", "interval", scanInterval)
}

// Stop halts the loop and waits for an in-flight scan to finish.
func (n *ScheduleNotifier) Stop() {
	close(n.stop)
	<-n.done
	n.logger.Info("schedule notifier stopped")
}

func (n *ScheduleNotifier) run() {
	defer close(n.done)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stop:
			return
		case <-ticker.C:
			n.scan()
		}
	}
}

func (n *ScheduleNotifier) scan() {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("schedule scan panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	n.sendReminders(ctx, now)
	n.sendFollowUps(ctx, now)
}

func (n *ScheduleNotifier) sendReminders(ctx context.Context, now time.Time) {
	from := now.Add(reminderLead)
	events, err := n.scheduleRepo.FindStartingBetween(ctx, from, from.Add(reminderWindow))
	if err != nil {
		n.logger.Error("reminder query failed", "error", err)
		return
	}

	for _, event := range events {
		title := fmt.Sprintf("Time to read %s! %d pages are waiting for you.",
			event.BookTitle, event.PagesToRead)
		_, err := n.notifications.NotifySystem(ctx, event.UserID,
			models.NotificationScheduleReminder, strconv.FormatInt(event.ID, 10), title)
		if err != nil {
			n.logger.Error("failed to send reading reminder",
				"event_id", event.ID, "user_id", event.UserID, "error", err)
			continue
		}
		n.logger.Info("reading reminder sent", "event_id", event.ID, "user_id", event.UserID)
	}
}

// sendFollowUps nudges users about reading days that ended unfinished. Each
// event gets at most one follow-up, tracked on the event itself.
func (n *ScheduleNotifier) sendFollowUps(ctx context.Context, now time.Time) {
	events, err := n.scheduleRepo.FindEndedWithoutFollowUp(ctx, now)
	if err != nil {
		n.logger.Error("follow-up query failed", "error", err)
		return
	}

	for _, event := range events {
		title := fmt.Sprintf("Did you finish your %d pages of %s?",
			event.PagesToRead, event.BookTitle)
		_, err := n.notifications.NotifySystem(ctx, event.UserID,
			models.NotificationScheduleFollowUp, strconv.FormatInt(event.ID, 10), title)
		if err != nil {
			n.logger.Error("failed to send follow-up",
				"event_id", event.ID, "user_id", event.UserID, "error", err)
			continue
		}

		event.FollowUpSent = true
		if err := n.scheduleRepo.Save(ctx, &event); err != nil {
			n.logger.Error("failed to mark follow-up sent",
				"event_id", event.ID, "error", err)
		}
	}
}
