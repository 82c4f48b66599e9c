package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

type RoomRepo interface {
	LoadAll(ctx context.Context) ([]domain.Room, error)
}
