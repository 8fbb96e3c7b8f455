package readstore

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/pkg/ptr"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SummaryReadQueries interface {
	GetDaySummary(ctx context.Context, db query.DBTX, ownerID uuid.UUID, date pgtype.Date) (query.DaySummaries, error)
	ListDaySummaries(ctx context.Context, db query.DBTX, arg query.ListDaySummariesParams) ([]query.DaySummaries, error)
}

type SummaryReadStore struct {
	queries SummaryReadQueries
	db      query.DBTX
}

func NewSummaryReadStore(queries SummaryReadQueries, db query.DBTX) *SummaryReadStore {
	return &SummaryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SummaryReadStore) FindDaySummary(ctx context.Context, ownerID uuid.UUID, date time.Time) (*queries.DaySummaryView, error) {
	row, err := r.queries.GetDaySummary(ctx, r.db, ownerID, pgconv.DateToPgtype(date))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("day summary not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get day summary", err)
	}
	return toDaySummaryView(row), nil
}

func (r *SummaryReadStore) ListDaySummaries(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*queries.DaySummaryView, error) {
	rows, err := r.queries.ListDaySummaries(ctx, r.db, query.ListDaySummariesParams{
		OwnerID: ownerID,
		From:    pgconv.DateToPgtype(from),
		To:      pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list day summaries", err)
	}
	views := make([]*queries.DaySummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toDaySummaryView(row))
	}
	return views, nil
}

func toDaySummaryView(row query.DaySummaries) *queries.DaySummaryView {
	return &queries.DaySummaryView{
		OwnerID:           row.OwnerID,
		Date:              pgconv.DateFromPgtype(row.Date),
		HasBookableWindow: row.HasBookableWindow,
		HasBookedActivity: row.HasBookedActivity,
		ComputedAt:        ptr.TimeFromPgtype(row.ComputedAt),
	}
}
