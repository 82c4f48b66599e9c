package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sapateam/roombooker/internal/domain"
)

// Working hours: bookings start in [09:00, 17:45] and end in [09:15, 18:00],
// with a one-minute grace up to 18:01 on the end time to tolerate form
// rounding.
const (
	openHour          = 9
	lastStartHour     = 17
	lastStartMinute   = 45
	closeHour         = 18
	earliestEndMinute = 15
	closeGraceMinutes = 1
	pastBuffer        = time.Minute
	dueWindowMinutes  = 1
	reminderDueWindow = time.Minute
)

func minutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse(domain.TimeLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Conflicts reports whether the [start, end) slot overlaps any confirmed
// booking for the same room and date. Intervals are half-open, so a booking
// ending exactly when another starts never conflicts. excludeID skips the
// booking being edited so it does not collide with itself.
func Conflicts(bookings []domain.Booking, roomID int, date, startTime, endTime, excludeID string) bool {
	slotStart, ok := minutesOfDay(startTime)
	if !ok {
		return false
	}
	slotEnd, ok := minutesOfDay(endTime)
	if !ok {
		return false
	}

	for i := range bookings {
		b := &bookings[i]
		if b.RoomID != roomID || b.Date != date || b.Status != domain.BookingStatusConfirmed {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}

		bStart, ok := minutesOfDay(b.StartTime)
		if !ok {
			continue
		}
		bEnd, ok := minutesOfDay(b.EndTime)
		if !ok {
			continue
		}

		if !(slotEnd <= bStart || slotStart >= bEnd) {
			return true
		}
	}
	return false
}

// ValidateSlot enforces the not-in-the-past and working-hours policy for a
// proposed slot. Checks run in a fixed order so identical inputs always
// yield the same rejection reason:
//
//  1. unparsable date or time            -> ErrInvalidTime
//  2. start not after now + 1min buffer  -> ErrPastTime
//  3. stricter same-day re-check         -> ErrPastTime
//  4. start outside [09:00, 17:45]       -> ErrOutsideWorkingHours
//  5. end outside [09:15, 18:01]         -> ErrOutsideWorkingHours
//  6. end not after start                -> ErrInvalidTime
//
// Check 3 partially duplicates check 2 with a different rounding rule; both
// are kept, in this order, to match the observed product behavior exactly.
func ValidateSlot(date, startTime, endTime string, now time.Time) error {
	day, err := time.ParseInLocation(domain.DateLayout, date, now.Location())
	if err != nil {
		return domain.ErrInvalidTime
	}
	start, err := time.Parse(domain.TimeLayout, startTime)
	if err != nil {
		return domain.ErrInvalidTime
	}
	end, err := time.Parse(domain.TimeLayout, endTime)
	if err != nil {
		return domain.ErrInvalidTime
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(),
		start.Hour(), start.Minute(), 0, 0, now.Location())
	if !startsAt.After(now.Add(pastBuffer)) {
		return domain.ErrPastTime
	}

	if date == now.Format(domain.DateLayout) {
		switch {
		case start.Hour() == now.Hour() && start.Minute() <= now.Minute()+1:
			return domain.ErrPastTime
		case start.Hour() < now.Hour():
			return domain.ErrPastTime
		}
	}

	if start.Hour() < openHour ||
		(start.Hour() == lastStartHour && start.Minute() > lastStartMinute) ||
		start.Hour() >= closeHour {
		return domain.ErrOutsideWorkingHours
	}

	if end.Hour() < openHour ||
		(end.Hour() == openHour && end.Minute() < earliestEndMinute) ||
		end.Hour() > closeHour ||
		(end.Hour() == closeHour && end.Minute() > closeGraceMinutes) {
		return domain.ErrOutsideWorkingHours
	}

	if end.Hour()*60+end.Minute() <= start.Hour()*60+start.Minute() {
		return domain.ErrInvalidTime
	}

	return nil
}

// ExpandRecurring turns a template booking into concrete dated occurrences:
// one per (weekday offset, week) pair, skipping dates already in the past.
// Each occurrence is a copy of the base with a fresh id and creation time.
// Availability is deliberately not checked here; see BookingService.
func ExpandRecurring(req domain.RecurringRequest, now time.Time) ([]domain.Booking, error) {
	anchor, err := time.ParseInLocation(domain.DateLayout, req.Base.Date, now.Location())
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var out []domain.Booking
	for week := 0; week < req.Weeks; week++ {
		for _, offset := range req.Offsets {
			target := anchor.AddDate(0, 0, offset+week*7)
			if target.Before(today) {
				continue
			}

			b := req.Base
			b.ID = uuid.New().String()
			b.Date = target.Format(domain.DateLayout)
			b.CreatedAt = now
			b.UpdatedAt = now
			out = append(out, b)
		}
	}
	return out, nil
}

// RoomStatus reports live occupancy: occupied iff "now" falls inside the
// half-open interval of a confirmed booking for today.
func RoomStatus(bookings []domain.Booking, roomID int, now time.Time) domain.RoomStatus {
	today := now.Format(domain.DateLayout)
	nowMin := now.Hour()*60 + now.Minute()

	for i := range bookings {
		b := &bookings[i]
		if b.RoomID != roomID || b.Date != today || b.Status != domain.BookingStatusConfirmed {
			continue
		}

		start, ok := minutesOfDay(b.StartTime)
		if !ok {
			continue
		}
		end, ok := minutesOfDay(b.EndTime)
		if !ok {
			continue
		}

		if start <= nowMin && nowMin < end {
			return domain.RoomStatusOccupied
		}
	}
	return domain.RoomStatusAvailable
}

// NotificationDue decides whether a recurring notification fires this minute:
// today's ISO weekday is selected, the time of day is within one minute of
// the send time, the weeks horizon has not passed, and it has not already
// fired today. The execution-log check is what prevents a double fire when a
// tick lands twice inside the same window.
func NotificationDue(n domain.Notification, now time.Time) bool {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	selected := false
	for _, d := range n.DaysOfWeek {
		if d == weekday {
			selected = true
			break
		}
	}
	if !selected {
		return false
	}

	sendMin, ok := minutesOfDay(n.SendTime)
	if !ok {
		return false
	}
	nowMin := now.Hour()*60 + now.Minute()
	diff := nowMin - sendMin
	if diff < 0 {
		diff = -diff
	}
	if diff > dueWindowMinutes {
		return false
	}

	created := n.CreatedAt.In(now.Location())
	createdDay := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weeksPassed := int(today.Sub(createdDay).Hours()/24) / 7
	if weeksPassed >= n.WeeksCount {
		return false
	}

	todayPrefix := now.Format(domain.DateLayout)
	for _, exec := range n.Executions {
		if strings.HasPrefix(exec, todayPrefix) {
			return false
		}
	}

	return true
}

// ReminderDue decides whether the "lead before start" reminder for a booking
// falls within the current polling tick and has not been sent yet.
func ReminderDue(b domain.Booking, reminders []domain.ReminderRecord, now time.Time, lead time.Duration) bool {
	if b.Status != domain.BookingStatusConfirmed {
		return false
	}

	startsAt, err := b.StartsAt(now.Location())
	if err != nil {
		return false
	}

	remindAt := startsAt.Add(-lead)
	diff := now.Sub(remindAt)
	if diff < 0 {
		diff = -diff
	}
	if diff > reminderDueWindow {
		return false
	}

	if !startsAt.After(now) {
		return false
	}

	key := b.Key()
	for i := range reminders {
		if reminders[i].BookingID == key {
			return false
		}
	}
	return true
}
