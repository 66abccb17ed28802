package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange is returned when arithmetic on a TimeString crosses a day boundary
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// It carries no date and no timezone; all comparisons are within a single day.
type TimeString string

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses "HH:MM" into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromHoursMinutes builds a zero-padded TimeString from clock components.
func FromHoursMinutes(hours, minutes int) (TimeString, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hours, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	_, _, err := t.parts()
	return err
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// HoursMinutes returns the parsed clock components.
func (t TimeString) HoursMinutes() (hours, minutes int, err error) {
	return t.parts()
}

// TotalMinutes returns minutes elapsed since midnight.
// The value must be valid; invalid values return an error.
func (t TimeString) TotalMinutes() (int, error) {
	h, m, err := t.parts()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight in either direction is an error: schedules are same-day only.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}
	return FromHoursMinutes(total/60, total%60)
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal reports whether both values name the same minute.
func (t TimeString) Equal(other TimeString) bool {
	a, err1 := t.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a == b
}

// On anchors the wall-clock value to the given calendar date, in the date's location.
func (t TimeString) On(date time.Time) (time.Time, error) {
	h, m, err := t.parts()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

// Scan implements sql.Scanner so the value can be read from TIME columns
// and text columns alike.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME columns come back as "10:00:00"; keep only HH:MM.
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeString) parts() (hours, minutes int, err error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	hours = int(s[0]-'0')*10 + int(s[1]-'0')
	minutes = int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return hours, minutes, nil
}
