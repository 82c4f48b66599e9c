package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

type AdminRepo interface {
	LoadAll(ctx context.Context) (map[string]domain.Admin, error)
	SaveAll(ctx context.Context, admins map[string]domain.Admin) error
}
