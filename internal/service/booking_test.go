package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	userRepo    *mocks.MockUserRepo
	messenger   *mocks.MockMessenger
	clock       *mocks.MockClock
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		messenger:   mocks.NewMockMessenger(t),
		clock:       mocks.NewMockClock(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.roomRepo, f.userRepo, f.messenger, f.clock, newTestLogger(t))
	return f
}

func userMap(telegramID int64, name string) map[string]domain.User {
	return map[string]domain.User{
		strconv.FormatInt(telegramID, 10): {TelegramID: telegramID, Name: name, Company: "Sapa"},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1, Name: "Алматы"}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(100, "Alice"), nil)
	f.clock.EXPECT().Now().Return(testNow(12, 0))
	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{}, nil)

	var saved []domain.Booking
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, bookings []domain.Booking) { saved = bookings }).
		Return(nil)

	booking, err := f.svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:    1,
		Date:      "2025-06-03",
		StartTime: "10:00",
		EndTime:   "11:00",
		Purpose:   "standup",
	}, Actor{TelegramID: 100})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Алматы", booking.RoomName)
	assert.Equal(t, "Alice", booking.UserName)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	require.Len(t, saved, 1)
	assert.Equal(t, booking.ID, saved[0].ID)
}

func TestBookingService_Create_RoomNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1}}, nil)

	_, err := f.svc.Create(context.Background(), domain.CreateBookingInput{RoomID: 99}, Actor{TelegramID: 100})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_Create_RequiresRegistration(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(map[string]domain.User{}, nil)

	_, err := f.svc.Create(context.Background(), domain.CreateBookingInput{RoomID: 1}, Actor{TelegramID: 100})

	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestBookingService_Create_PastSlot(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(100, "Alice"), nil)
	f.clock.EXPECT().Now().Return(testNow(12, 0))

	_, err := f.svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:    1,
		Date:      "2025-06-02",
		StartTime: "11:00",
		EndTime:   "12:00",
	}, Actor{TelegramID: 100})

	assert.ErrorIs(t, err, domain.ErrPastTime)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(100, "Alice"), nil)
	f.clock.EXPECT().Now().Return(testNow(12, 0))
	f.bookingRepo.EXPECT().LoadAll(mock.Anything).
		Return([]domain.Booking{confirmedBooking(1, "2025-06-03", "10:00", "11:00")}, nil)

	_, err := f.svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:    1,
		Date:      "2025-06-03",
		StartTime: "10:30",
		EndTime:   "11:30",
	}, Actor{TelegramID: 100})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Update_OwnerSuccess(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)
	f.clock.EXPECT().Now().Return(testNow(12, 0))
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)

	updated, err := f.svc.Update(context.Background(), "existing", domain.UpdateBookingInput{
		Date:      "2025-06-04",
		StartTime: "14:00",
		EndTime:   "15:00",
	}, Actor{TelegramID: 100})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-04", updated.Date)
	assert.Equal(t, "14:00", updated.StartTime)
}

func TestBookingService_Update_ForeignWithoutReason(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)

	_, err := f.svc.Update(context.Background(), "existing", domain.UpdateBookingInput{
		Date:      "2025-06-04",
		StartTime: "14:00",
		EndTime:   "15:00",
	}, Actor{TelegramID: 200, Level: domain.AdminLevelModerator})

	assert.ErrorIs(t, err, domain.ErrReasonRequired)
}

func TestBookingService_Update_ForeignNotifiesOwner(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)
	f.clock.EXPECT().Now().Return(testNow(12, 0))
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(200, "Boss"), nil)
	f.messenger.EXPECT().Send(mock.Anything, int64(100), mock.Anything).Return(1, nil)

	_, err := f.svc.Update(context.Background(), "existing", domain.UpdateBookingInput{
		Date:        "2025-06-04",
		StartTime:   "14:00",
		EndTime:     "15:00",
		AdminReason: "переезд встречи",
	}, Actor{TelegramID: 200, Level: domain.AdminLevelModerator})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Update_StrangerCannotTouch(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)

	_, err := f.svc.Update(context.Background(), "existing", domain.UpdateBookingInput{
		Date:      "2025-06-04",
		StartTime: "14:00",
		EndTime:   "15:00",
	}, Actor{TelegramID: 300})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete_OwnerSuccess(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)

	var saved []domain.Booking
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, bookings []domain.Booking) { saved = bookings }).
		Return(nil)

	err := f.svc.Delete(context.Background(), "existing", "", Actor{TelegramID: 100})

	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestBookingService_Delete_ForeignNotifiesOwner(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(200, "Boss"), nil)
	f.messenger.EXPECT().Send(mock.Anything, int64(100), mock.Anything).Return(1, nil)

	err := f.svc.Delete(context.Background(), "existing", "нарушение правил",
		Actor{TelegramID: 200, Level: domain.AdminLevelModerator})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Delete_ForeignWithoutReason(t *testing.T) {
	f := newBookingFixture(t)

	existing := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	existing.TelegramID = 100

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{existing}, nil)

	err := f.svc.Delete(context.Background(), "existing", "",
		Actor{TelegramID: 200, Level: domain.AdminLevelBasic})

	assert.ErrorIs(t, err, domain.ErrReasonRequired)
}

func TestBookingService_ListByUser_SortedByDateThenTime(t *testing.T) {
	f := newBookingFixture(t)

	b1 := confirmedBooking(1, "2025-06-04", "10:00", "11:00")
	b2 := confirmedBooking(1, "2025-06-03", "15:00", "16:00")
	b3 := confirmedBooking(1, "2025-06-03", "09:00", "10:00")
	for _, b := range []*domain.Booking{&b1, &b2, &b3} {
		b.TelegramID = 100
	}
	other := confirmedBooking(1, "2025-06-03", "12:00", "13:00")
	other.TelegramID = 200

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b1, b2, b3, other}, nil)

	res, err := f.svc.ListByUser(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "09:00", res[0].StartTime)
	assert.Equal(t, "15:00", res[1].StartTime)
	assert.Equal(t, "2025-06-04", res[2].Date)
}

func TestBookingService_CreateRecurring_RequiresAdmin(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateRecurring(context.Background(), CreateRecurringInput{}, Actor{TelegramID: 100})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_CreateRecurring_IgnoresExistingOverlaps(t *testing.T) {
	f := newBookingFixture(t)

	// a clashing booking already sits on the anchor Monday; the recurring
	// path appends anyway
	clash := confirmedBooking(1, "2025-06-02", "10:00", "11:00")

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1, Name: "Астана"}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(200, "Boss"), nil)
	f.clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc))
	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{clash}, nil)

	var saved []domain.Booking
	f.bookingRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, bookings []domain.Booking) { saved = bookings }).
		Return(nil)

	created, err := f.svc.CreateRecurring(context.Background(), CreateRecurringInput{
		RoomID:     1,
		StartDate:  "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		DaysOfWeek: []string{"monday"},
		WeeksCount: 2,
	}, Actor{TelegramID: 200, Level: domain.AdminLevelModerator})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.True(t, created[0].IsRecurring)
	assert.Len(t, saved, 3)
}

func TestBookingService_CreateRecurring_NoValidDays(t *testing.T) {
	f := newBookingFixture(t)

	f.roomRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Room{{ID: 1}}, nil)
	f.userRepo.EXPECT().LoadAll(mock.Anything).Return(userMap(200, "Boss"), nil)

	_, err := f.svc.CreateRecurring(context.Background(), CreateRecurringInput{
		RoomID:     1,
		StartDate:  "2025-06-02",
		DaysOfWeek: []string{"someday"},
		WeeksCount: 2,
	}, Actor{TelegramID: 200, Level: domain.AdminLevelBasic})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Availability_MapsOccupiedSlots(t *testing.T) {
	f := newBookingFixture(t)

	b := confirmedBooking(1, "2025-06-03", "10:00", "11:00")
	b.UserName = "Alice"
	b.Purpose = "standup"

	f.bookingRepo.EXPECT().LoadAll(mock.Anything).Return([]domain.Booking{b}, nil)

	slots, err := f.svc.Availability(context.Background(), 1, "2025-06-03")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, OccupiedSlot{Start: "10:00", End: "11:00", User: "Alice", Purpose: "standup"}, slots[0])
}
