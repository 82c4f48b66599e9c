package service

import (
	"testing"
	"time"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC+5", 5*3600)

// 2025-06-02 is a Monday.
func testNow(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, testLoc)
}

func confirmedBooking(roomID int, date, start, end string) domain.Booking {
	return domain.Booking{
		ID:        "existing",
		RoomID:    roomID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.BookingStatusConfirmed,
	}
}

func TestConflicts_Overlap(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "10:30", "11:30", ""))
	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "09:30", "10:30", ""))
	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "10:00", "11:00", ""))
	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "09:00", "12:00", ""))
	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "10:15", "10:45", ""))
}

func TestConflicts_BackToBackIsFree(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.False(t, Conflicts(bookings, 1, "2025-06-02", "11:00", "12:00", ""))
	assert.False(t, Conflicts(bookings, 1, "2025-06-02", "09:00", "10:00", ""))
}

func TestConflicts_OtherRoomOrDate(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.False(t, Conflicts(bookings, 2, "2025-06-02", "10:00", "11:00", ""))
	assert.False(t, Conflicts(bookings, 1, "2025-06-03", "10:00", "11:00", ""))
}

func TestConflicts_ExcludesEditedBooking(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.False(t, Conflicts(bookings, 1, "2025-06-02", "10:00", "11:00", "existing"))
	assert.True(t, Conflicts(bookings, 1, "2025-06-02", "10:00", "11:00", "other"))
}

func TestConflicts_SkipsMalformedStoredTimes(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "garbage", "11:00")}

	assert.False(t, Conflicts(bookings, 1, "2025-06-02", "10:00", "11:00", ""))
}

func TestValidateSlot_WorkingHoursBounds(t *testing.T) {
	now := testNow(12, 0)

	cases := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"first slot of the day", "09:00", "10:00", nil},
		{"last start", "17:45", "18:00", nil},
		{"close with grace minute", "17:00", "18:01", nil},
		{"before opening", "08:59", "10:00", domain.ErrOutsideWorkingHours},
		{"start past last start", "17:46", "18:00", domain.ErrOutsideWorkingHours},
		{"end past grace", "17:00", "18:02", domain.ErrOutsideWorkingHours},
		{"end before earliest end", "09:00", "09:14", domain.ErrOutsideWorkingHours},
		{"end equals start", "10:00", "10:00", domain.ErrInvalidTime},
		{"end before start", "11:00", "10:00", domain.ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlot("2025-06-03", tc.start, tc.end, now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSlot_RejectsPast(t *testing.T) {
	now := testNow(12, 0)

	assert.ErrorIs(t, ValidateSlot("2025-06-01", "10:00", "11:00", now), domain.ErrPastTime)
	assert.ErrorIs(t, ValidateSlot("2025-06-02", "11:00", "12:00", now), domain.ErrPastTime)
	// starting exactly on the buffer edge is still "now"
	assert.ErrorIs(t, ValidateSlot("2025-06-02", "12:01", "13:00", now), domain.ErrPastTime)
	assert.NoError(t, ValidateSlot("2025-06-02", "12:02", "13:00", now))
}

func TestValidateSlot_RejectsMalformedInput(t *testing.T) {
	now := testNow(12, 0)

	assert.ErrorIs(t, ValidateSlot("not-a-date", "10:00", "11:00", now), domain.ErrInvalidTime)
	assert.ErrorIs(t, ValidateSlot("2025-06-03", "25:00", "11:00", now), domain.ErrInvalidTime)
	assert.ErrorIs(t, ValidateSlot("2025-06-03", "10:00", "11:70", now), domain.ErrInvalidTime)
}

func TestExpandRecurring_MondayWednesdayTwoWeeks(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc) // Sunday before the anchor
	req := domain.RecurringRequest{
		Base: domain.Booking{
			RoomID:    1,
			Date:      "2025-06-02",
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    domain.BookingStatusConfirmed,
		},
		Offsets: []int{0, 2},
		Weeks:   2,
	}

	out, err := ExpandRecurring(req, now)
	require.NoError(t, err)
	require.Len(t, out, 4)

	dates := []string{out[0].Date, out[1].Date, out[2].Date, out[3].Date}
	assert.Equal(t, []string{"2025-06-02", "2025-06-04", "2025-06-09", "2025-06-11"}, dates)

	seen := map[string]bool{}
	for _, b := range out {
		assert.NotEmpty(t, b.ID)
		assert.False(t, seen[b.ID], "occurrence ids must be unique")
		seen[b.ID] = true
		assert.Equal(t, now, b.CreatedAt)
	}
}

func TestExpandRecurring_SkipsPastOccurrences(t *testing.T) {
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, testLoc) // Tuesday after the anchor
	req := domain.RecurringRequest{
		Base:    domain.Booking{RoomID: 1, Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00"},
		Offsets: []int{0, 2},
		Weeks:   2,
	}

	out, err := ExpandRecurring(req, now)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "2025-06-04", out[0].Date)
}

func TestExpandRecurring_BadAnchorDate(t *testing.T) {
	req := domain.RecurringRequest{
		Base:    domain.Booking{Date: "junk"},
		Offsets: []int{0},
		Weeks:   1,
	}

	_, err := ExpandRecurring(req, testNow(10, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}

func TestRoomStatus_OccupiedInsideInterval(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.Equal(t, domain.RoomStatusOccupied, RoomStatus(bookings, 1, testNow(10, 30)))
	assert.Equal(t, domain.RoomStatusOccupied, RoomStatus(bookings, 1, testNow(10, 0)))
}

func TestRoomStatus_FreeAtIntervalEnd(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1, "2025-06-02", "10:00", "11:00")}

	assert.Equal(t, domain.RoomStatusAvailable, RoomStatus(bookings, 1, testNow(11, 0)))
	assert.Equal(t, domain.RoomStatusAvailable, RoomStatus(bookings, 1, testNow(9, 59)))
	assert.Equal(t, domain.RoomStatusAvailable, RoomStatus(bookings, 2, testNow(10, 30)))
}

func testNotification(sendTime string, days []int, weeks int, createdAt time.Time) domain.Notification {
	return domain.Notification{
		ID:          1,
		UserID:      100,
		MessageText: "standup",
		SendTime:    sendTime,
		DaysOfWeek:  days,
		WeeksCount:  weeks,
		CreatedAt:   createdAt,
		IsActive:    true,
		Executions:  []string{},
	}
}

func TestNotificationDue_FiresInsideWindow(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, testLoc)
	n := testNotification("10:00", []int{1}, 1, created)

	assert.True(t, NotificationDue(n, testNow(10, 0)))
	assert.True(t, NotificationDue(n, testNow(10, 1)))
	assert.True(t, NotificationDue(n, testNow(9, 59)))
	assert.False(t, NotificationDue(n, testNow(10, 2)))
	assert.False(t, NotificationDue(n, testNow(9, 58)))
}

func TestNotificationDue_WeekdayNotSelected(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, testLoc)
	n := testNotification("10:00", []int{2, 3}, 1, created)

	assert.False(t, NotificationDue(n, testNow(10, 0)))
}

func TestNotificationDue_SundayIsISODaySeven(t *testing.T) {
	created := time.Date(2025, 5, 31, 9, 0, 0, 0, testLoc)
	n := testNotification("10:00", []int{7}, 1, created)

	sunday := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	assert.True(t, NotificationDue(n, sunday))
}

func TestNotificationDue_WeeksHorizonExpires(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, testLoc)
	n := testNotification("10:00", []int{1}, 1, created)

	// first Monday is within week zero, the next one is past the horizon
	assert.True(t, NotificationDue(n, testNow(10, 0)))
	nextMonday := time.Date(2025, 6, 9, 10, 0, 0, 0, testLoc)
	assert.False(t, NotificationDue(n, nextMonday))
}

func TestNotificationDue_AlreadyFiredToday(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, testLoc)
	n := testNotification("10:00", []int{1}, 1, created)
	n.Executions = []string{"2025-06-02T10:00:12+05:00"}

	assert.False(t, NotificationDue(n, testNow(10, 1)))
}

func TestReminderDue_WindowAndDedup(t *testing.T) {
	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	lead := 15 * time.Minute

	assert.True(t, ReminderDue(b, nil, testNow(9, 45), lead))
	within := time.Date(2025, 6, 2, 9, 45, 30, 0, testLoc)
	assert.True(t, ReminderDue(b, nil, within, lead))
	assert.False(t, ReminderDue(b, nil, testNow(9, 43), lead))
	assert.False(t, ReminderDue(b, nil, testNow(9, 47), lead))

	sent := []domain.ReminderRecord{{BookingID: "existing"}}
	assert.False(t, ReminderDue(b, sent, testNow(9, 45), lead))
}

func TestReminderDue_CompositeKeyFallback(t *testing.T) {
	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.ID = ""
	b.TelegramID = 42

	sent := []domain.ReminderRecord{{BookingID: "42_2025-06-02_10:00"}}
	assert.False(t, ReminderDue(b, sent, testNow(9, 45), lead15()))
	assert.True(t, ReminderDue(b, nil, testNow(9, 45), lead15()))
}

func TestReminderDue_IgnoresUnconfirmed(t *testing.T) {
	b := confirmedBooking(1, "2025-06-02", "10:00", "11:00")
	b.Status = "cancelled"

	assert.False(t, ReminderDue(b, nil, testNow(9, 45), lead15()))
}

func lead15() time.Duration { return 15 * time.Minute }
