package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

type UserRepo interface {
	LoadAll(ctx context.Context) (map[string]domain.User, error)
	SaveAll(ctx context.Context, users map[string]domain.User) error
}
