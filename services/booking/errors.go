package booking

import "errors"

var (
	// ErrBusinessNotFound means the booking link points at no known business.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBookingLimitReached means the business's plan quota is exhausted
	// for the current month and the booking page is blocked.
	ErrBookingLimitReached = errors.New("business has reached its monthly appointment limit")
	// ErrSlotUnavailable means the chosen time is not in the day's slot set.
	ErrSlotUnavailable = errors.New("selected time is no longer available")
	// ErrServiceUnavailable means the chosen service is inactive or belongs
	// to another business.
	ErrServiceUnavailable = errors.New("service is not available for booking")
	// ErrSessionNotFound means the booking session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found")
)
