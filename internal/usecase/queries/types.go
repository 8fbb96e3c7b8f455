package queries

import (
	"encoding/json"
	"time"

	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxRangeDays bounds every date-range read and rebuild.
const MaxRangeDays = 93

var ErrInvalidDateRange = errs.New("invalid date range")

type DaySummaryView struct {
	OwnerID           uuid.UUID  `json:"owner_id"`
	Date              time.Time  `json:"date"`
	HasBookableWindow bool       `json:"has_bookable_window"`
	HasBookedActivity bool       `json:"has_booked_activity"`
	ComputedAt        *time.Time `json:"computed_at,omitempty"`
}

type SlotView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

type BookingView struct {
	ID        uuid.UUID       `json:"id"`
	SessionID uuid.UUID       `json:"session_id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	SlotID    uuid.UUID       `json:"slot_id"`
	Subject   string          `json:"subject"`
	Metadata  json.RawMessage `json:"metadata"`
	Status    string          `json:"status"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	CreatedAt time.Time       `json:"created_at"`
}

// ValidateDateRange checks an inclusive [from, to] range of midnight-UTC dates.
func ValidateDateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return ErrInvalidDateRange
	}
	if DaysBetween(from, to) > MaxRangeDays {
		return errs.Mark(errs.Newf("range of %d days exceeds %d", DaysBetween(from, to), MaxRangeDays), ErrInvalidDateRange)
	}
	return nil
}

// DaysBetween counts the dates in the inclusive range.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}
