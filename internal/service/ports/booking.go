package ports

import (
	"context"

	"github.com/sapateam/roombooker/internal/domain"
)

// BookingRepo is the whole-collection record store for bookings: every load
// returns a snapshot, every mutation hands back a full replacement.
type BookingRepo interface {
	LoadAll(ctx context.Context) ([]domain.Booking, error)
	SaveAll(ctx context.Context, bookings []domain.Booking) error
}
