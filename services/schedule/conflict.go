package schedule

import (
	"sort"

	"lienzo/models"
)

// FindDuplicates flags every index whose calendar date appears more than once
// within the same section's dates. All occurrences are flagged, not just the
// second and later ones, so callers can highlight each colliding entry.
// Comparison is by date component only; time of day is irrelevant. Different
// sections may share a calendar day, so a multi-course week is not a conflict.
func FindDuplicates(dates []models.ClassDate) map[int]struct{} {
	byDate := make(map[string][]int, len(dates))
	for i, d := range dates {
		key := d.SectionID + "|" + DateOnly(d.Date)
		byDate[key] = append(byDate[key], i)
	}

	dupes := make(map[int]struct{})
	for _, idxs := range byDate {
		if len(idxs) < 2 {
			continue
		}
		for _, i := range idxs {
			dupes[i] = struct{}{}
		}
	}
	return dupes
}

// IsValid reports whether no section repeats a calendar date. Validity gates
// progression to payment; duplicates are surfaced, never silently
// deduplicated.
func IsValid(dates []models.ClassDate) bool {
	return len(FindDuplicates(dates)) == 0
}

// DuplicateIndexes returns the flagged indexes in ascending order, the shape
// handed to clients.
func DuplicateIndexes(dates []models.ClassDate) []int {
	dupes := FindDuplicates(dates)
	idxs := make([]int, 0, len(dupes))
	for i := range dupes {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}
