package readstore

import (
	"context"
	"encoding/json"

	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListBookingViewsBySession(ctx context.Context, db query.DBTX, sessionID uuid.UUID) ([]query.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by session", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views, nil
}

func toBookingView(row query.BookingViewRow) *queries.BookingView {
	metadata := json.RawMessage(row.Metadata)
	if len(metadata) == 0 {
		metadata = json.RawMessage("{}")
	}
	return &queries.BookingView{
		ID:        row.ID,
		SessionID: row.SessionID,
		OwnerID:   row.OwnerID,
		ClientID:  row.ClientID,
		SlotID:    row.SlotID,
		Subject:   row.Subject,
		Metadata:  metadata,
		Status:    row.Status,
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
