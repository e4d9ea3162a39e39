package schedule

import "errors"

var (
	// ErrMissingStartDate is returned when generation is requested without a
	// start date. Recoverable: the user picks one and retries.
	ErrMissingStartDate = errors.New("no start date supplied")

	// ErrInsufficientAvailability is returned when the generator cannot place
	// every required session inside the search horizon. Recoverable: the user
	// picks a different start date or slot.
	ErrInsufficientAvailability = errors.New("insufficient availability for the requested sessions")

	// ErrNoSlots is returned when generation is requested with no weekly
	// slots selected.
	ErrNoSlots = errors.New("no weekly slots selected")

	// ErrInvalidWeekday is returned when a slot names a day that cannot be
	// scheduled.
	ErrInvalidWeekday = errors.New("slot has an unschedulable day of week")
)
