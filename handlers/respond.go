package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lienzo/services/enrollment"
	"lienzo/services/schedule"
)

// JSONData sends the standard success envelope.
func JSONData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// statusForError maps domain errors onto HTTP statuses: expired drafts are
// 404, user-recoverable validation problems are 400, insufficient
// availability is 422, anything else is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, enrollment.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrInsufficientAvailability):
		return http.StatusUnprocessableEntity
	case errors.Is(err, schedule.ErrMissingStartDate),
		errors.Is(err, schedule.ErrNoSlots),
		errors.Is(err, schedule.ErrInvalidWeekday),
		errors.Is(err, enrollment.ErrIndexOutOfRange),
		errors.Is(err, enrollment.ErrWeekdayMismatch),
		errors.Is(err, enrollment.ErrPastDate),
		errors.Is(err, enrollment.ErrDateUnavailable),
		errors.Is(err, enrollment.ErrMissingSelections),
		errors.Is(err, enrollment.ErrMissingSectionID),
		errors.Is(err, enrollment.ErrMissingPlan),
		errors.Is(err, enrollment.ErrEmptyDates),
		errors.Is(err, enrollment.ErrDuplicateDates),
		errors.Is(err, enrollment.ErrMissingStudent),
		errors.Is(err, enrollment.ErrMissingPaymentMethod),
		errors.Is(err, enrollment.ErrInvalidStartDate),
		errors.Is(err, enrollment.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
