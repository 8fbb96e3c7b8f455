package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/summary"
	"slotbook/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic and a bounded lock wait
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Summaries() DaySummaryRepository
	DB() query.DBTX
}

type SlotRepository interface {
	// LockAvailable locks the id rows of the requested slots that are still available and
	// returns their ids. Fewer ids than requested means some slot was taken or never existed.
	LockAvailable(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]uuid.UUID, error)
	FindByIDs(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]*slot.Slot, error)
	MarkUnavailable(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error)
	// Release makes the given slots available again unless a booking still references them.
	Release(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error)
	ListAvailable(ctx context.Context, tx query.DBTX, ownerID uuid.UUID, from, to time.Time) ([]*slot.Slot, error)
}

type BookingRepository interface {
	CreateAll(ctx context.Context, tx query.DBTX, bookings []*booking.Booking) error
	// LockByIDs locks the booking rows in id order. Missing ids are simply absent from the result.
	LockByIDs(ctx context.Context, tx query.DBTX, ids []uuid.UUID) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx query.DBTX, ids []uuid.UUID, status booking.Status) (int64, error)
	Delete(ctx context.Context, tx query.DBTX, ids []uuid.UUID) (int64, error)
	CountInRange(ctx context.Context, tx query.DBTX, ownerID uuid.UUID, from, to time.Time) (int64, error)
}

type DaySummaryRepository interface {
	// LockKey serializes recomputes of the same owner and date until the transaction ends.
	LockKey(ctx context.Context, tx query.DBTX, key summary.Key) error
	Upsert(ctx context.Context, tx query.DBTX, s summary.DaySummary) error
}
