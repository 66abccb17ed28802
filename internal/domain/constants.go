package domain

import "time"

// Default booking policy values, used when a provider has no stored policy
const (
	DefaultSlotDurationMinutes = 30
	DefaultLeadTimeHours       = 24
	DefaultHorizonDays         = 14
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinLeadTimeHours       = 0
	MaxLeadTimeHours       = 168 // 1 week
	MinHorizonDays         = 1
	MaxHorizonDays         = 90

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// MinVisitReserve is how much room a slot start must leave before closing
// time. Generation stops one hour before close regardless of the configured
// slot step, so a visit of typical length always fits.
const MinVisitReserve = time.Hour

// LateCancellationNotice is the advisory threshold: cancelling closer than
// this to the scheduled start still succeeds but is flagged.
const LateCancellationNotice = 24 * time.Hour

// MaxRecurrenceOccurrences bounds series expansion against runaway ranges.
const MaxRecurrenceOccurrences = 12

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are the statuses that release a booking's time slot.
// Completed bookings keep their interval (the visit happened), cancelled and
// no-show ones do not.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
