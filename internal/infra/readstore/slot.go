package readstore

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadQueries interface {
	ListSlotsInRange(ctx context.Context, db query.DBTX, arg query.ListSlotsInRangeParams) ([]query.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      query.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db query.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsInRange(ctx, r.db, query.ListSlotsInRangeParams{
		OwnerID: ownerID,
		From:    pgconv.TimeToPgtype(from),
		To:      pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	views := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.SlotView{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			StartTime:   pgconv.TimeFromPgtype(row.StartTime),
			EndTime:     pgconv.TimeFromPgtype(row.EndTime),
			IsAvailable: row.IsAvailable,
		})
	}
	return views, nil
}
