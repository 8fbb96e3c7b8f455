package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Slots struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	StartTime   pgtype.Timestamptz `json:"start_time"`
	EndTime     pgtype.Timestamptz `json:"end_time"`
	IsAvailable bool               `json:"is_available"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Bookings struct {
	ID        uuid.UUID          `json:"id"`
	SessionID uuid.UUID          `json:"session_id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	ClientID  uuid.UUID          `json:"client_id"`
	SlotID    uuid.UUID          `json:"slot_id"`
	Subject   string             `json:"subject"`
	Metadata  []byte             `json:"metadata"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type DaySummaries struct {
	OwnerID           uuid.UUID          `json:"owner_id"`
	Date              pgtype.Date        `json:"date"`
	HasBookableWindow bool               `json:"has_bookable_window"`
	HasBookedActivity bool               `json:"has_booked_activity"`
	ComputedAt        pgtype.Timestamptz `json:"computed_at"`
}
