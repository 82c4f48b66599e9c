package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	bookingRepo  *mocks.MockBookingRepo
	reminderRepo *mocks.MockReminderRepo
	messenger    *mocks.MockMessenger
	clock        *mocks.MockClock
	svc          *ReminderService
}

func newReminderFixture(t *testing.T) *reminderFixture {
	t.Helper()
	f := &reminderFixture{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		reminderRepo: mocks.NewMockReminderRepo(t),
		messenger:    mocks.NewMockMessenger(t),
		clock:        mocks.NewMockClock(t),
	}
	f.svc = NewReminderService(f.bookingRepo, f.reminderRepo, f.messenger, f.clock,
		15*time.Minute, newTestLogger(t))
	return f
}

func TestReminderService_CheckAndSend_SendsAndRecords(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.TelegramID = 100
	b.UserName = "Alice"
	b.RoomName = "Алматы"

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b}, nil)
	f.reminderRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.ReminderRecord{}, nil)
	f.clock.EXPECT().Now().Return(testNow(9, 45))
	f.messenger.EXPECT().Send(mock.Anything, int64(100), mock.Anything).Return(1, nil)

	var saved []domain.ReminderRecord
	f.reminderRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, reminders []domain.ReminderRecord) { saved = reminders }).
		Return(nil)

	require.NoError(t, f.svc.CheckAndSend(context.Background()))

	require.Len(t, saved, 1)
	assert.Equal(t, "existing", saved[0].BookingID)
	assert.Equal(t, int64(100), saved[0].UserID)
	assert.Equal(t, "10:00", saved[0].BookingTime)
}

func TestReminderService_CheckAndSend_AlreadySent(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b}, nil)
	f.reminderRepo.EXPECT().LoadAll(mock.Anything).
		Return([]domain.ReminderRecord{{BookingID: "existing"}}, nil)
	f.clock.EXPECT().Now().Return(testNow(9, 45))

	require.NoError(t, f.svc.CheckAndSend(context.Background()))
}

func TestReminderService_CheckAndSend_OutsideWindow(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b}, nil)
	f.reminderRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.ReminderRecord{}, nil)
	f.clock.EXPECT().Now().Return(testNow(9, 30))

	require.NoError(t, f.svc.CheckAndSend(context.Background()))
}

// A failed delivery leaves no record, so the next tick inside the window
// retries.
func TestReminderService_CheckAndSend_SendFailureNotRecorded(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b}, nil)
	f.reminderRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.ReminderRecord{}, nil)
	f.clock.EXPECT().Now().Return(testNow(9, 45))
	f.messenger.EXPECT().Send(mock.Anything, int64(100), mock.Anything).
		Return(0, errors.New("telegram down"))

	require.NoError(t, f.svc.CheckAndSend(context.Background()))
}

func TestReminderService_ReminderTextMentionsSlot(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.UserName = "Alice"
	b.RoomName = "Алматы"
	b.Purpose = "standup"

	text := f.svc.reminderText(b)
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Алматы")
	assert.Contains(t, text, "10:00 - 11:00")
	assert.Contains(t, text, "standup")
}

func TestReminderService_ReminderTextFallbacks(t *testing.T) {
	f := newReminderFixture(t)

	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")

	text := f.svc.reminderText(b)
	assert.Contains(t, text, "Пользователь")
	assert.Contains(t, text, "Переговорная")
	assert.NotContains(t, text, "Цель")
}
