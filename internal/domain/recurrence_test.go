package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandRecurrence_None(t *testing.T) {
	start := date(2025, 1, 1)

	dates, err := ExpandRecurrence(RecurrenceNone, start, start)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestExpandRecurrence_WeeklyCappedAtTwelve(t *testing.T) {
	// A full year of weekly occurrences still stops at the cap
	dates, err := ExpandRecurrence(RecurrenceWeekly, date(2025, 1, 1), date(2025, 12, 31))
	require.NoError(t, err)
	require.Len(t, dates, MaxRecurrenceOccurrences)

	assert.Equal(t, date(2025, 1, 1), dates[0])
	assert.Equal(t, date(2025, 1, 8), dates[1])
	assert.Equal(t, date(2025, 3, 19), dates[11])
}

func TestExpandRecurrence_WeeklyBoundedByEndDate(t *testing.T) {
	// endDate is inclusive: 2025-01-15 is the third occurrence
	dates, err := ExpandRecurrence(RecurrenceWeekly, date(2025, 1, 1), date(2025, 1, 15))
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, date(2025, 1, 15), dates[2])
}

func TestExpandRecurrence_Biweekly(t *testing.T) {
	dates, err := ExpandRecurrence(RecurrenceBiweekly, date(2025, 1, 1), date(2025, 2, 28))
	require.NoError(t, err)
	require.Len(t, dates, 5)
	assert.Equal(t, date(2025, 1, 15), dates[1])
	assert.Equal(t, date(2025, 2, 26), dates[4])
}

func TestExpandRecurrence_MonthlyNormalizesFromOrigin(t *testing.T) {
	// Jan 31 + 1 month normalizes to Mar 3 (no Feb 31), but the next step
	// is computed from the origin again, so April lands on May 1, not on a
	// drifted date.
	dates, err := ExpandRecurrence(RecurrenceMonthly, date(2025, 1, 31), date(2025, 6, 30))
	require.NoError(t, err)
	require.Len(t, dates, 5)

	assert.Equal(t, date(2025, 1, 31), dates[0])
	assert.Equal(t, date(2025, 3, 3), dates[1])  // Feb 31 -> Mar 3
	assert.Equal(t, date(2025, 3, 31), dates[2])
	assert.Equal(t, date(2025, 5, 1), dates[3]) // Apr 31 -> May 1
	assert.Equal(t, date(2025, 5, 31), dates[4])
}

func TestExpandRecurrence_SingleDayRange(t *testing.T) {
	start := date(2025, 1, 1)

	dates, err := ExpandRecurrence(RecurrenceWeekly, start, start)
	require.NoError(t, err)
	require.Len(t, dates, 1)
}

func TestExpandRecurrence_InvalidRange(t *testing.T) {
	_, err := ExpandRecurrence(RecurrenceWeekly, date(2025, 2, 1), date(2025, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// RecurrenceNone ignores the end date entirely
	dates, err := ExpandRecurrence(RecurrenceNone, date(2025, 2, 1), date(2025, 1, 1))
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestExpandRecurrence_UnknownPattern(t *testing.T) {
	_, err := ExpandRecurrence(RecurrencePattern("daily"), date(2025, 1, 1), date(2025, 2, 1))
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestParseRecurrencePattern(t *testing.T) {
	for _, valid := range []string{"none", "weekly", "biweekly", "monthly"} {
		pattern, err := ParseRecurrencePattern(valid)
		require.NoError(t, err)
		assert.Equal(t, RecurrencePattern(valid), pattern)
	}

	_, err := ParseRecurrencePattern("yearly")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}
