package enrollment

import "errors"

var (
	// ErrDraftNotFound is returned when a draft id has no live session, either
	// because it never existed or because its TTL expired.
	ErrDraftNotFound = errors.New("enrollment draft not found or expired")

	// Override validation: all recoverable, surfaced inline to the editor.
	ErrIndexOutOfRange = errors.New("class date index out of range")
	ErrWeekdayMismatch = errors.New("replacement date must fall on the entry's original weekday")
	ErrPastDate        = errors.New("replacement date must not be in the past")
	ErrDateUnavailable = errors.New("replacement date is not available for the section")

	// Confirm/assembly preconditions: an invalid draft never reaches the
	// network layer.
	ErrMissingSelections    = errors.New("no schedule selected")
	ErrMissingSectionID     = errors.New("a selected slot lacks a resolved section id")
	ErrMissingPlan          = errors.New("no payment plan selected")
	ErrEmptyDates           = errors.New("no class dates generated")
	ErrDuplicateDates       = errors.New("class dates contain duplicates")
	ErrMissingStudent       = errors.New("student information incomplete")
	ErrMissingPaymentMethod = errors.New("no payment method selected")
	ErrInvalidStartDate     = errors.New("start_date must equal the earliest class date")
	ErrInvalidAmount        = errors.New("enrollment amounts are inconsistent")
)
