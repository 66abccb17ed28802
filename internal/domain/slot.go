package domain

import (
	"time"

	"github.com/careslot/booking-service/pkg/types"
)

// TimeSlot is one candidate visit start within an open day.
// Ephemeral: recomputed on every availability query, never stored.
type TimeSlot struct {
	Time            types.TimeString // wall-clock start, e.g. "10:00"
	StartsAt        time.Time        // absolute instant of the start
	DurationMinutes int
	Available       bool
}

// DayAvailability is the generated calendar for a single day.
type DayAvailability struct {
	Date      time.Time
	DayOfWeek time.Weekday
	IsOpen    bool
	Slots     []TimeSlot
}

// AvailabilityOptions tunes calendar generation. Zero values fall back to
// the defaults, so a caller without a stored policy can pass the zero value.
type AvailabilityOptions struct {
	DaysAhead           int
	SlotDurationMinutes int
	LeadTime            time.Duration
}

func (o AvailabilityOptions) withDefaults() AvailabilityOptions {
	if o.DaysAhead <= 0 {
		o.DaysAhead = DefaultHorizonDays
	}
	if o.SlotDurationMinutes <= 0 {
		o.SlotDurationMinutes = DefaultSlotDurationMinutes
	}
	if o.LeadTime <= 0 {
		o.LeadTime = DefaultLeadTimeHours * time.Hour
	}
	return o
}

// GenerateAvailability produces the bookable calendar for the next
// opts.DaysAhead days starting today (midnight of now, in now's location).
//
// Per open day, slot starts step from the opening time in slot-duration
// increments and stop once a start would leave less than one hour before
// closing. A slot is Available when its start satisfies the lead time AND
// does not conflict with any active existing booking.
//
// Pure: identical inputs plus the same now produce identical output.
func GenerateAvailability(schedule ProviderSchedule, existing []*Booking, opts AvailabilityOptions, now time.Time) []DayAvailability {
	opts = opts.withDefaults()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make([]DayAvailability, 0, opts.DaysAhead)

	for offset := 0; offset < opts.DaysAhead; offset++ {
		date := today.AddDate(0, 0, offset)
		day := DayAvailability{
			Date:      date,
			DayOfWeek: date.Weekday(),
			IsOpen:    schedule.IsOpenOn(date.Weekday()),
			Slots:     []TimeSlot{},
		}

		if day.IsOpen {
			day.Slots = generateDaySlots(schedule, existing, opts, date, now)
		}

		days = append(days, day)
	}

	return days
}

// generateDaySlots builds the slot sequence for one open day.
func generateDaySlots(schedule ProviderSchedule, existing []*Booking, opts AvailabilityOptions, date, now time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0)

	current := schedule.OpeningTime
	for {
		// The last generated start must leave at least one hour before
		// closing so a visit of typical length fits.
		reserveEnd, err := current.AddMinutes(int(MinVisitReserve.Minutes()))
		if err != nil || reserveEnd.IsAfter(schedule.ClosingTime) {
			break
		}

		startsAt, err := current.On(date)
		if err != nil {
			break
		}

		available := IsLeadTimeSatisfied(startsAt, now, opts.LeadTime) &&
			!HasConflict(startsAt, opts.SlotDurationMinutes, existing)

		slots = append(slots, TimeSlot{
			Time:            current,
			StartsAt:        startsAt,
			DurationMinutes: opts.SlotDurationMinutes,
			Available:       available,
		})

		current, err = current.AddMinutes(opts.SlotDurationMinutes)
		if err != nil {
			break
		}
	}

	return slots
}

// IsLeadTimeSatisfied reports whether candidate gives at least leadTime of
// notice from now.
func IsLeadTimeSatisfied(candidate, now time.Time, leadTime time.Duration) bool {
	return !candidate.Before(now.Add(leadTime))
}

// HasConflict reports whether a candidate interval overlaps any active
// existing booking.
//
// Cancelled and no-show bookings release their slot and are skipped, as are
// bookings without a scheduled time. Intervals are half-open
// [start, start+duration): a booking ending exactly where the candidate
// starts is NOT a conflict.
//
// This is the single source of truth for double-booking prevention. It runs
// for display in GenerateAvailability and again, authoritatively, inside the
// transaction that commits a new booking.
func HasConflict(candidateStart time.Time, candidateDurationMinutes int, existing []*Booking) bool {
	if candidateDurationMinutes <= 0 {
		candidateDurationMinutes = DefaultSlotDurationMinutes
	}
	candidateEnd := candidateStart.Add(time.Duration(candidateDurationMinutes) * time.Minute)

	for _, booking := range existing {
		if !booking.IsActive() || booking.ScheduledAt == nil {
			continue
		}

		bookingStart := *booking.ScheduledAt
		bookingEnd := bookingStart.Add(booking.EffectiveDuration())

		// Strict inequalities: touching boundaries do not overlap
		if bookingStart.Before(candidateEnd) && bookingEnd.After(candidateStart) {
			return true
		}
	}

	return false
}
