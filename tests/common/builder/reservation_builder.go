//go:build unit || e2e

package builder

import (
	reqdto "slotbook/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReserveRequestBuilder struct {
	OwnerID  uuid.UUID
	SlotIDs  []uuid.UUID
	Subject  string
	Metadata map[string]any
}

func NewReserveRequestBuilder() *ReserveRequestBuilder {
	return &ReserveRequestBuilder{
		OwnerID:  uuid.New(),
		SlotIDs:  []uuid.UUID{uuid.New(), uuid.New()},
		Subject:  "Trial lesson",
		Metadata: map[string]any{"note": "first visit"},
	}
}

func (b *ReserveRequestBuilder) WithOwner(id uuid.UUID) *ReserveRequestBuilder {
	b.OwnerID = id
	return b
}

func (b *ReserveRequestBuilder) WithSlots(ids ...uuid.UUID) *ReserveRequestBuilder {
	b.SlotIDs = ids
	return b
}

func (b *ReserveRequestBuilder) BuildRequestDTO() reqdto.ReserveRequest {
	owner := b.OwnerID
	return reqdto.ReserveRequest{
		OwnerID:  &owner,
		SlotIDs:  b.SlotIDs,
		Subject:  b.Subject,
		Metadata: b.Metadata,
	}
}
