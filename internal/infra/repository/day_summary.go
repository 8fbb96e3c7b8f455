package repository

//go:generate mockgen -source=day_summary.go -destination=../../../tests/mock/repository/day_summary.go -package=repositorymock

import (
	"context"
	"fmt"

	"slotbook/internal/domain/summary"
	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/pgconv"
)

type DaySummaryWriteQueries interface {
	AdvisoryXactLock(ctx context.Context, db query.DBTX, key string) error
	UpsertDaySummary(ctx context.Context, db query.DBTX, arg query.UpsertDaySummaryParams) error
}

type DaySummaryRepository struct {
	queries DaySummaryWriteQueries
	db      query.DBTX
}

func NewDaySummaryRepository(queries DaySummaryWriteQueries, db query.DBTX) *DaySummaryRepository {
	return &DaySummaryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DaySummaryRepository) LockKey(ctx context.Context, tx query.DBTX, key summary.Key) error {
	if err := r.queries.AdvisoryXactLock(ctx, tx, lockKey(key)); err != nil {
		return infra.WrapRepoErr("failed to lock day summary key", err)
	}
	return nil
}

func (r *DaySummaryRepository) Upsert(ctx context.Context, tx query.DBTX, s summary.DaySummary) error {
	err := r.queries.UpsertDaySummary(ctx, tx, query.UpsertDaySummaryParams{
		OwnerID:           s.OwnerID,
		Date:              pgconv.DateToPgtype(s.Date),
		HasBookableWindow: s.HasBookableWindow,
		HasBookedActivity: s.HasBookedActivity,
		ComputedAt:        pgconv.TimeToPgtype(s.ComputedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert day summary", err)
	}
	return nil
}

func lockKey(key summary.Key) string {
	return fmt.Sprintf("day_summary:%s:%s", key.OwnerID, key.Date.Format("2006-01-02"))
}
