package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

type NotificationRepo interface {
	LoadAll(ctx context.Context) ([]domain.Notification, error)
	SaveAll(ctx context.Context, notifications []domain.Notification) error
}
