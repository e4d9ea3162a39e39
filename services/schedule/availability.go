package schedule

// OpenDateSet is a section's set of bookable calendar dates, as supplied by
// the section calendar endpoint. Upstream already accounts for teacher and
// room blackouts and capacity windows.
type OpenDateSet map[string]struct{}

// NewOpenDateSet builds a set from a list of ISO dates, normalizing each to
// its date component.
func NewOpenDateSet(dates []string) OpenDateSet {
	set := make(OpenDateSet, len(dates))
	for _, d := range dates {
		set[DateOnly(d)] = struct{}{}
	}
	return set
}

// Contains reports whether the set has the given date.
func (s OpenDateSet) Contains(date string) bool {
	_, ok := s[DateOnly(date)]
	return ok
}

// Filter intersects candidate dates against the open set, preserving order.
// Pure set intersection: any business meaning of an absent date belongs
// upstream. Filtering an already-filtered list is a no-op.
func Filter(candidates []string, open OpenDateSet) []string {
	kept := make([]string, 0, len(candidates))
	for _, d := range candidates {
		if open.Contains(d) {
			kept = append(kept, d)
		}
	}
	return kept
}
