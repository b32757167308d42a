package domain

import "errors"

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrUserNotFound = errors.New("user not found")
)

var (
	ErrSlotUnavailable = errors.New("slot is not available")
	ErrSlotNotPending  = errors.New("slot is not pending review")
	ErrNoActiveBooking = errors.New("no active booking attempt")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrNotifyFailed marks outbound delivery failures. Non-fatal: the store
// mutation it follows is already committed and is never rolled back.
var ErrNotifyFailed = errors.New("notification failed")
