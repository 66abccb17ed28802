package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/careslot/booking-service/pkg/types"
)

// ProviderSchedule is a provider's weekly operating window.
// Same-day only: closing at or before opening leaves the day without slots,
// schedules spanning midnight are not supported.
type ProviderSchedule struct {
	OpeningTime   types.TimeString
	ClosingTime   types.TimeString
	OperatingDays map[time.Weekday]bool
}

// IsOpenOn reports whether the provider operates on the given weekday.
func (s *ProviderSchedule) IsOpenOn(day time.Weekday) bool {
	return s.OperatingDays[day]
}

// Validate checks that both times parse and at least the shape is usable.
func (s *ProviderSchedule) Validate() error {
	if err := s.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("opening time: %w", err)
	}
	if err := s.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("closing time: %w", err)
	}
	return nil
}

// ParseWeekday converts a weekday name ("Monday", "monday") to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
}

// OperatingDaysFromNames builds the weekday set from a list of day names.
func OperatingDaysFromNames(names []string) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		day, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		days[day] = true
	}
	return days, nil
}
