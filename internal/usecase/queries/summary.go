package queries

//go:generate mockgen -source=summary.go -destination=../../../tests/mock/queries/summary.go -package=queriesmock

import (
	"context"
	"time"

	"slotbook/internal/infra"

	"github.com/google/uuid"
)

type SummaryReadStore interface {
	FindDaySummary(ctx context.Context, ownerID uuid.UUID, date time.Time) (*DaySummaryView, error)
	ListDaySummaries(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*DaySummaryView, error)
}

// SummaryQueries only ever reads the cached day summaries, never the slot table.
type SummaryQueries interface {
	GetDaySummary(ctx context.Context, ownerID uuid.UUID, date time.Time) (*DaySummaryView, error)
	ListDaySummaries(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*DaySummaryView, error)
}

type summaryQueriesImpl struct {
	readStore SummaryReadStore
}

func NewSummaryQueries(readStore SummaryReadStore) SummaryQueries {
	return &summaryQueriesImpl{readStore: readStore}
}

func (q *summaryQueriesImpl) GetDaySummary(ctx context.Context, ownerID uuid.UUID, date time.Time) (*DaySummaryView, error) {
	view, err := q.readStore.FindDaySummary(ctx, ownerID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return emptySummary(ownerID, date), nil
		}
		return nil, err
	}
	return view, nil
}

// ListDaySummaries returns one entry per date in [from, to]; dates never computed read as empty.
func (q *summaryQueriesImpl) ListDaySummaries(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*DaySummaryView, error) {
	if err := ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	stored, err := q.readStore.ListDaySummaries(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[time.Time]*DaySummaryView, len(stored))
	for _, v := range stored {
		byDate[v.Date] = v
	}

	views := make([]*DaySummaryView, 0, DaysBetween(from, to))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if v, ok := byDate[d]; ok {
			views = append(views, v)
			continue
		}
		views = append(views, emptySummary(ownerID, d))
	}
	return views, nil
}

func emptySummary(ownerID uuid.UUID, date time.Time) *DaySummaryView {
	return &DaySummaryView{OwnerID: ownerID, Date: date}
}
