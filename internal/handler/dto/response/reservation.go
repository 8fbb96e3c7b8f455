package response

import (
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveResponse struct {
	SessionID  uuid.UUID   `json:"sessionId"`
	BookingIDs []uuid.UUID `json:"bookingIds"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		SessionID:  r.SessionID,
		BookingIDs: r.BookingIDs,
	}
}

type ConfirmResponse struct {
	BookingIDs []uuid.UUID `json:"bookingIds"`
	Status     string      `json:"status"`
}

type RebuildResponse struct {
	Days int `json:"days"`
}
