package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

type BookingStore struct {
	file *jsonFile
}

func NewBookingStore(dataDir string) *BookingStore {
	return &BookingStore{file: newJSONFile(dataDir, "bookings.json")}
}

func (s *BookingStore) LoadAll(ctx context.Context) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var bookings []domain.Booking
	if err := s.file.load(&bookings); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingStore) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	if err := s.file.save(bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}
