package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/infra/repository/converter"
	"slotbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) error
	LockBookingsByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, ids []uuid.UUID, status string) (int64, error)
	DeleteBookings(ctx context.Context, db query.DBTX, ids []uuid.UUID) (int64, error)
	CountBookingsInRange(ctx context.Context, db query.DBTX, arg query.ListSlotsInRangeParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) CreateAll(ctx context.Context, tx query.DBTX, bookings []*booking.Booking) error {
	for _, b := range bookings {
		if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
			return infra.WrapRepoErr("failed to create booking", err)
		}
	}
	return nil
}

func (r *BookingRepository) LockByIDs(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.LockBookingsByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock bookings", err)
	}
	bookings := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx query.DBTX, ids []uuid.UUID, status booking.Status) (int64, error) {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, ids, status.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteBookings(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bookings", err)
	}
	if n == 0 && len(ids) > 0 {
		return 0, infra.WrapRepoErr("bookings not found", nil, infra.KindNotFound)
	}
	return n, nil
}

func (r *BookingRepository) CountInRange(ctx context.Context, tx query.DBTX, ownerID uuid.UUID, from, to time.Time) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	n, err := r.queries.CountBookingsInRange(ctx, tx, query.ListSlotsInRangeParams{
		OwnerID: ownerID,
		From:    pgconv.TimeToPgtype(from),
		To:      pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}
