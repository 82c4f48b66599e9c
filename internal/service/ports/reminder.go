package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

type ReminderRepo interface {
	LoadAll(ctx context.Context) ([]domain.ReminderRecord, error)
	SaveAll(ctx context.Context, reminders []domain.ReminderRecord) error
}
