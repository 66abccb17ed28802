package domain

import (
	"errors"
	"fmt"
	"time"
)

// Action is a lifecycle operation requested on a booking
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionDecline  Action = "decline"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no_show"
)

// ParseAction validates an action name coming off the wire.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionConfirm, ActionDecline, ActionCancel, ActionComplete, ActionNoShow:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, s)
	}
}

// ErrInvalidTransition is returned when an action is not legal for the
// booking's current status, including any action on a terminal booking.
var ErrInvalidTransition = errors.New("domain: invalid state transition")

// allowedTransitions is the complete lifecycle. Statuses absent from the map
// (cancelled, completed, no_show) are terminal: nothing transitions out.
var allowedTransitions = map[BookingStatus]map[Action]BookingStatus{
	StatusPending: {
		ActionConfirm: StatusConfirmed,
		ActionDecline: StatusCancelled,
	},
	StatusConfirmed: {
		ActionCancel:   StatusCancelled,
		ActionComplete: StatusCompleted,
		ActionNoShow:   StatusNoShow,
	},
}

// CanTransition reports whether action is legal for a booking in status from.
func CanTransition(from BookingStatus, action Action) bool {
	_, ok := allowedTransitions[from][action]
	return ok
}

// Transition is the outcome of applying an action: everything an
// orchestrator needs to persist the change and decide what to notify.
type Transition struct {
	Action Action
	From   BookingStatus
	To     BookingStatus
	Reason *string

	// LateCancellation flags a cancel within LateCancellationNotice of the
	// scheduled start. Advisory: the cancel still succeeds, downstream
	// account-standing logic decides what to do with it.
	LateCancellation bool
}

// ApplyTransition computes the status change for (booking, action) without
// mutating the booking. It is a total function: every pair yields either a
// Transition or ErrInvalidTransition.
func ApplyTransition(booking *Booking, action Action, reason *string, now time.Time) (*Transition, error) {
	to, ok := allowedTransitions[booking.Status][action]
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, action, booking.Status)
	}

	// Completing is a tour concept; enrollments have no visit to complete.
	if action == ActionComplete && booking.Type != TypeTour {
		return nil, fmt.Errorf("%w: only tours can be completed", ErrInvalidTransition)
	}

	t := &Transition{
		Action: action,
		From:   booking.Status,
		To:     to,
		Reason: reason,
	}

	if action == ActionCancel && booking.ScheduledAt != nil {
		t.LateCancellation = booking.ScheduledAt.Sub(now) < LateCancellationNotice
	}

	return t, nil
}
