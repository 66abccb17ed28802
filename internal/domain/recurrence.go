package domain

import (
	"errors"
	"fmt"
	"time"
)

// RecurrencePattern names the supported repetition schemes
type RecurrencePattern string

const (
	RecurrenceNone     RecurrencePattern = "none"
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiweekly RecurrencePattern = "biweekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

var (
	// ErrUnknownPattern is returned for a pattern outside the supported set
	ErrUnknownPattern = errors.New("domain: unknown recurrence pattern")

	// ErrInvalidDateRange is returned when endDate precedes startDate
	ErrInvalidDateRange = errors.New("domain: invalid recurrence date range")
)

// ParseRecurrencePattern validates a pattern name coming off the wire.
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	switch RecurrencePattern(s) {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return RecurrencePattern(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
}

// ExpandRecurrence produces the concrete occurrence dates for a pattern
// within [startDate, endDate], capped at MaxRecurrenceOccurrences.
//
// RecurrenceNone yields just the start date. Weekly and biweekly step by 7
// and 14 days. Monthly steps by one calendar month, always computed from the
// original start (startDate.AddDate(0, n, 0)) so short months normalize the
// same way every time instead of drifting.
//
// Each returned date is an independent candidate: the caller conflict-checks
// and commits occurrences one by one.
func ExpandRecurrence(pattern RecurrencePattern, startDate, endDate time.Time) ([]time.Time, error) {
	if pattern == RecurrenceNone {
		return []time.Time{startDate}, nil
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidDateRange, endDate.Format(DateFormat), startDate.Format(DateFormat))
	}

	dates := make([]time.Time, 0, MaxRecurrenceOccurrences)
	for n := 0; len(dates) < MaxRecurrenceOccurrences; n++ {
		var next time.Time
		switch pattern {
		case RecurrenceWeekly:
			next = startDate.AddDate(0, 0, 7*n)
		case RecurrenceBiweekly:
			next = startDate.AddDate(0, 0, 14*n)
		case RecurrenceMonthly:
			next = startDate.AddDate(0, n, 0)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
		}

		if next.After(endDate) {
			break
		}
		dates = append(dates, next)
	}

	return dates, nil
}
