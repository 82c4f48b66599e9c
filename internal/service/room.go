package service

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
)

type RoomService struct {
	roomRepo    ports.RoomRepo
	bookingRepo ports.BookingRepo
	clock       ports.Clock
}

func NewRoomService(roomRepo ports.RoomRepo, bookingRepo ports.BookingRepo, clock ports.Clock) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

// List returns all rooms with their live occupancy status.
func (s *RoomService) List(ctx context.Context) ([]domain.RoomWithStatus, error) {
	rooms, err := s.roomRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	now := s.clock.Now()
	res := make([]domain.RoomWithStatus, 0, len(rooms))
	for _, room := range rooms {
		res = append(res, domain.RoomWithStatus{
			Room:          room,
			CurrentStatus: RoomStatus(bookings, room.ID, now),
		})
	}
	return res, nil
}
