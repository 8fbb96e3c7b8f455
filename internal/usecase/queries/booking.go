package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListSessionBookings(ctx context.Context, sessionID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListSessionBookings reports a cancelled or unknown session as not found.
func (q *bookingQueriesImpl) ListSessionBookings(ctx context.Context, sessionID uuid.UUID) ([]*BookingView, error) {
	views, err := q.readStore.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrBookingNotFound
	}
	return views, nil
}
