package service

import (
	"context"
	"testing"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomService_List_WithLiveStatus(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewRoomService(roomRepo, bookingRepo, clock)

	roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Алматы"},
		{ID: 2, Name: "Астана"},
	}, nil)
	bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{
		confirmedBooking(1, "2025-06-02", "10:00", "11:00"),
	}, nil)
	clock.EXPECT().Now().Return(testNow(10, 30))

	rooms, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.RoomStatusOccupied, rooms[0].CurrentStatus)
	assert.Equal(t, domain.RoomStatusAvailable, rooms[1].CurrentStatus)
}

func TestRoomService_List_Empty(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewRoomService(roomRepo, bookingRepo, clock)

	roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{}, nil)
	bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{}, nil)
	clock.EXPECT().Now().Return(testNow(10, 0))

	rooms, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rooms)
}
