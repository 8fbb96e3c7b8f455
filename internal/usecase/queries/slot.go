package queries

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot.go -package=queriesmock

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type SlotQueries interface {
	// ListSlots returns every slot of the owner starting on the dates [from, to], booked or not.
	ListSlots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
	loc       *time.Location
}

func NewSlotQueries(readStore SlotReadStore, policy booking.Policy) SlotQueries {
	return &slotQueriesImpl{readStore: readStore, loc: policy.Location}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*SlotView, error) {
	if err := ValidateDateRange(from, to); err != nil {
		return nil, err
	}
	start, _ := slot.DayBounds(from, q.loc)
	_, end := slot.DayBounds(to, q.loc)
	return q.readStore.ListByOwner(ctx, ownerID, start, end)
}
