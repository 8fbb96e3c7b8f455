package request

import (
	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/ptr"
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	OwnerID  *uuid.UUID     `json:"ownerId"`
	SlotIDs  []uuid.UUID    `json:"slotIds" binding:"required,min=1,dive,required"`
	Subject  string         `json:"subject" binding:"max=200"`
	Metadata map[string]any `json:"metadata"`
}

// ToInput builds the command input; the client is always the authenticated caller.
func (r ReserveRequest) ToInput(clientID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		OwnerID:  ptr.Deref(r.OwnerID, uuid.Nil),
		ClientID: clientID,
		SlotIDs:  r.SlotIDs,
		Subject:  r.Subject,
		Metadata: r.Metadata,
	}
}

type ConfirmRequest struct {
	BookingIDs []uuid.UUID `json:"bookingIds" binding:"required,min=1,dive,required"`
}

type CancelRequest struct {
	BookingIDs []uuid.UUID `json:"bookingIds" binding:"required,min=1,dive,required"`
	ActorRole  string      `json:"actorRole" binding:"required,actor_role"`
}

func (r CancelRequest) Actor() booking.ActorRole {
	return booking.ActorRole(r.ActorRole)
}
