package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NotificationService owns user-defined recurring notifications: CRUD for
// the web layer and the once-a-minute evaluation pass for the scheduler.
type NotificationService struct {
	repo     ports.NotificationRepo
	sequence ports.SequenceSender
	clock    ports.Clock
	logger   logger.Logger
}

func NewNotificationService(
	repo ports.NotificationRepo,
	sequence ports.SequenceSender,
	clock ports.Clock,
	logger logger.Logger,
) *NotificationService {
	return &NotificationService{
		repo:     repo,
		sequence: sequence,
		clock:    clock,
		logger:   logger,
	}
}

func (s *NotificationService) Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	if input.MessageText == "" {
		return nil, fmt.Errorf("%w: message text is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.TimeLayout, input.SendTime); err != nil {
		return nil, fmt.Errorf("%w: bad send time", domain.ErrValidation)
	}
	if len(input.DaysOfWeek) == 0 {
		return nil, fmt.Errorf("%w: at least one day is required", domain.ErrValidation)
	}
	for _, d := range input.DaysOfWeek {
		if d < 1 || d > 7 {
			return nil, fmt.Errorf("%w: day of week out of range", domain.ErrValidation)
		}
	}
	if input.WeeksCount < 1 {
		return nil, fmt.Errorf("%w: weeks count must be positive", domain.ErrValidation)
	}

	notifications, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	notification := domain.Notification{
		ID:          len(notifications) + 1,
		UserID:      input.UserID,
		MessageText: input.MessageText,
		SendTime:    input.SendTime,
		DaysOfWeek:  input.DaysOfWeek,
		WeeksCount:  input.WeeksCount,
		CreatedAt:   s.clock.Now(),
		IsActive:    true,
		Executions:  []string{},
	}

	notifications = append(notifications, notification)
	if err = s.repo.SaveAll(ctx, notifications); err != nil {
		return nil, fmt.Errorf("save notifications: %w", err)
	}

	s.logger.Info("notification created",
		logger.Int("notification_id", notification.ID),
		logger.Int64("user_id", notification.UserID),
	)

	return &notification, nil
}

// ListByUser returns the user's active notifications only: deactivated ones
// stay in the file (their ids must not be reissued) but are never shown.
func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	res := make([]domain.Notification, 0)
	for _, n := range notifications {
		if n.UserID == userID && n.IsActive {
			res = append(res, n)
		}
	}
	return res, nil
}

// Deactivate soft-deletes a notification owned by userID.
func (s *NotificationService) Deactivate(ctx context.Context, id int, userID int64) error {
	notifications, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	for i := range notifications {
		if notifications[i].ID == id && notifications[i].UserID == userID {
			notifications[i].IsActive = false
			if err = s.repo.SaveAll(ctx, notifications); err != nil {
				return fmt.Errorf("save notifications: %w", err)
			}
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// CheckAndSend is one scheduler pass: find every notification due this
// minute, start its message sequence and record the execution immediately so
// the next tick cannot fire it again.
func (s *NotificationService) CheckAndSend(ctx context.Context) error {
	notifications, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	now := s.clock.Now()
	fired := false
	for i := range notifications {
		n := notifications[i]
		if !n.IsActive {
			continue
		}
		if !NotificationDue(n, now) {
			continue
		}

		s.logger.Info("sending notification",
			logger.Int("notification_id", n.ID),
			logger.Int64("user_id", n.UserID),
		)

		s.sequence.Start(n.UserID, n.MessageText)

		notifications[i].Executions = append(notifications[i].Executions, now.Format(time.RFC3339))
		fired = true
	}

	if fired {
		if err = s.repo.SaveAll(ctx, notifications); err != nil {
			return fmt.Errorf("save notifications: %w", err)
		}
	}
	return nil
}
