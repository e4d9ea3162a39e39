package enrollment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOpenDatesMergesPerSection(t *testing.T) {
	catalog := &mockCatalog{calendars: map[string][]string{
		"sec-1": {"2026-03-02", "2026-03-09"},
		"sec-2": {"2026-03-05"},
		"sec-3": {},
	}}
	svc := &DefaultEnrollmentSessionService{Catalog: catalog}

	open, err := svc.fetchOpenDates([]string{"sec-1", "sec-2", "sec-3"})
	require.NoError(t, err)
	require.Len(t, open, 3)

	// Completions land under their own section key; one section's calendar
	// never bleeds into another's.
	assert.True(t, open["sec-1"].Contains("2026-03-02"))
	assert.True(t, open["sec-1"].Contains("2026-03-09"))
	assert.True(t, open["sec-2"].Contains("2026-03-05"))
	assert.False(t, open["sec-2"].Contains("2026-03-02"))
	assert.Empty(t, open["sec-3"])
}

func TestFetchOpenDatesPropagatesFetchError(t *testing.T) {
	catalog := &mockCatalog{
		calendars:    map[string][]string{"sec-1": {"2026-03-02"}},
		calendarErrs: map[string]error{"sec-2": errors.New("calendar lookup failed")},
	}
	svc := &DefaultEnrollmentSessionService{Catalog: catalog}

	_, err := svc.fetchOpenDates([]string{"sec-1", "sec-2"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "sec-2")
}
