package repository

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/repository/slot.go -package=repositorymock

import (
	"context"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/infra/repository/converter"
	"slotbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	LockAvailableSlots(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]uuid.UUID, error)
	GetSlotsByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.Slots, error)
	MarkSlotsUnavailable(ctx context.Context, db query.DBTX, ids []uuid.UUID) (int64, error)
	ReleaseSlots(ctx context.Context, db query.DBTX, ids []uuid.UUID) (int64, error)
	ListAvailableSlotsInRange(ctx context.Context, db query.DBTX, arg query.ListSlotsInRangeParams) ([]query.Slots, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      query.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db query.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) LockAvailable(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]uuid.UUID, error) {
	locked, err := r.queries.LockAvailableSlots(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slots", err)
	}
	return locked, nil
}

func (r *SlotRepository) FindByIDs(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]*slot.Slot, error) {
	rows, err := r.queries.GetSlotsByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get slots by ids", err)
	}
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slots", err)
	}
	return slots, nil
}

func (r *SlotRepository) MarkUnavailable(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkSlotsUnavailable(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark slots unavailable", err)
	}
	return n, nil
}

func (r *SlotRepository) Release(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.ReleaseSlots(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release slots", err)
	}
	return n, nil
}

func (r *SlotRepository) ListAvailable(ctx context.Context, tx query.DBTX, ownerID uuid.UUID, from, to time.Time) ([]*slot.Slot, error) {
	if tx == nil {
		tx = r.db
	}
	rows, err := r.queries.ListAvailableSlotsInRange(ctx, tx, query.ListSlotsInRangeParams{
		OwnerID: ownerID,
		From:    pgconv.TimeToPgtype(from),
		To:      pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slots", err)
	}
	return slots, nil
}
