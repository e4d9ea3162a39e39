package models

import "time"

// Weekday is a teaching day. The school runs Monday through Saturday; Sunday
// is never schedulable.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdayToTime = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// SpanishWeekdayLabels maps day keys to the labels shown to students. Kept as
// the single lookup table so day naming cannot drift between surfaces.
var SpanishWeekdayLabels = map[Weekday]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
}

// TimeWeekday converts a Weekday to the stdlib representation.
// The second return is false for unknown or unschedulable days.
func (w Weekday) TimeWeekday() (time.Weekday, bool) {
	tw, ok := weekdayToTime[w]
	return tw, ok
}

// Valid reports whether w names a schedulable teaching day.
func (w Weekday) Valid() bool {
	_, ok := weekdayToTime[w]
	return ok
}

// Label returns the Spanish display label for w, or the raw key when unknown.
func (w Weekday) Label() string {
	if label, ok := SpanishWeekdayLabels[w]; ok {
		return label
	}
	return string(w)
}
