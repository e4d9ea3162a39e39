package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lienzo/models"
)

func classList(dates ...string) []models.ClassDate {
	list := make([]models.ClassDate, len(dates))
	for i, d := range dates {
		list[i] = models.ClassDate{SectionID: "sec-1", Date: d}
	}
	return list
}

func TestFindDuplicatesEmptyWhenUnique(t *testing.T) {
	list := classList("2026-03-02", "2026-03-09", "2026-03-16", "2026-03-23")
	assert.Empty(t, FindDuplicates(list))
	assert.True(t, IsValid(list))
}

func TestFindDuplicatesFlagsEveryOccurrence(t *testing.T) {
	// Entry 2 edited to collide with entry 0: both occurrences are flagged so
	// the client can highlight each one.
	list := classList("2026-03-02", "2026-03-09", "2026-03-02", "2026-03-23")

	dupes := FindDuplicates(list)
	assert.Equal(t, map[int]struct{}{0: {}, 2: {}}, dupes)
	assert.False(t, IsValid(list))
	assert.Equal(t, []int{0, 2}, DuplicateIndexes(list))
}

func TestFindDuplicatesTripleCollision(t *testing.T) {
	list := classList("2026-03-02", "2026-03-02", "2026-03-02", "2026-03-23")
	assert.Equal(t, []int{0, 1, 2}, DuplicateIndexes(list))
}

func TestFindDuplicatesScopedPerSection(t *testing.T) {
	// Two sections teaching the same weekday share every calendar date; a
	// multi-course week is not a conflict.
	list := []models.ClassDate{
		{SectionID: "sec-1", Date: "2026-03-02"},
		{SectionID: "sec-2", Date: "2026-03-02"},
		{SectionID: "sec-1", Date: "2026-03-09"},
		{SectionID: "sec-2", Date: "2026-03-09"},
	}
	assert.Empty(t, FindDuplicates(list))
	assert.True(t, IsValid(list))

	// A repeat inside one of the sections still flags both occurrences.
	list = append(list, models.ClassDate{SectionID: "sec-1", Date: "2026-03-02"})
	assert.Equal(t, []int{0, 4}, DuplicateIndexes(list))
}

func TestFindDuplicatesIgnoresTimeComponent(t *testing.T) {
	list := classList("2026-03-02", "2026-03-02T18:30:00Z")
	assert.False(t, IsValid(list))
}

func TestIsValidIffNoDuplicates(t *testing.T) {
	cases := []struct {
		name  string
		dates []models.ClassDate
		valid bool
	}{
		{"empty", nil, true},
		{"single", classList("2026-03-02"), true},
		{"unique", classList("2026-03-02", "2026-03-09"), true},
		{"duplicated", classList("2026-03-02", "2026-03-02"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValid(tc.dates))
			assert.Equal(t, tc.valid, len(FindDuplicates(tc.dates)) == 0)
		})
	}
}
