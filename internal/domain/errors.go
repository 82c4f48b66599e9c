package domain

import "errors"

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAdminNotFound        = errors.New("admin not found")
)

// Slot rejection reasons. The strings are stable codes the web layer maps to
// localized messages, so they must not change.
var (
	ErrInvalidTime         = errors.New("invalid_time")
	ErrPastTime            = errors.New("cannot_book_past_time")
	ErrOutsideWorkingHours = errors.New("outside_working_hours")
	ErrRoomUnavailable     = errors.New("room_unavailable")
)

var (
	ErrNotGroupMember = errors.New("user is not a member of the group")
	ErrNotRegistered  = errors.New("user is not registered")
	ErrForbidden      = errors.New("insufficient privileges")
	ErrReasonRequired = errors.New("admin reason is required")
)

var (
	ErrValidation = errors.New("validation error")
)
