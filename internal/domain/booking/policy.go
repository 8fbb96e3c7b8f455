package booking

import (
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
)

var (
	ErrInsufficientNotice = errs.New("slot starts too soon")
	ErrNotFutureDate      = errs.New("reservations must be for a future date")
)

const DefaultMinNotice = 20 * time.Minute

// Policy holds the rules every reservation has to satisfy at the time it is made.
type Policy struct {
	MinNotice time.Duration
	Location  *time.Location
}

func NewPolicy(minNotice time.Duration, loc *time.Location) Policy {
	if minNotice < 0 {
		minNotice = 0
	}
	if loc == nil {
		loc = time.UTC
	}
	return Policy{MinNotice: minNotice, Location: loc}
}

// EarliestStart is the first instant a slot may start at when booked at now.
func (p Policy) EarliestStart(now time.Time) time.Time {
	return now.Add(p.MinNotice)
}

// Validate checks the start of a session booked at now. A start of exactly
// now + MinNotice is accepted.
func (p Policy) Validate(now, start time.Time) error {
	if start.Before(p.EarliestStart(now)) {
		return ErrInsufficientNotice
	}
	if !slot.DayOf(start, p.Location).After(slot.DayOf(now, p.Location)) {
		return ErrNotFutureDate
	}
	return nil
}

type Services struct {
	Clock  clock.Clock
	Policy Policy
}
