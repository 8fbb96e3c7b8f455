//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/summary"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/shared"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/testutil"
	commandsmock "slotbook/tests/mock/commands"
	sharedmock "slotbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// late evening, so a slot 20 minutes later is already on the next date
var testNow = time.Date(2030, 6, 1, 23, 40, 0, 0, time.UTC)

type fixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	slots     *sharedmock.MockSlotRepository
	bookings  *sharedmock.MockBookingRepository
	summaries *commandsmock.MockSummaryCommands
	notifier  *commandsmock.MockNotifier
	clock     *clock.MockClock
	sut       commands.ReservationCommands
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		slots:     sharedmock.NewMockSlotRepository(ctrl),
		bookings:  sharedmock.NewMockBookingRepository(ctrl),
		summaries: commandsmock.NewMockSummaryCommands(ctrl),
		notifier:  commandsmock.NewMockNotifier(ctrl),
		clock:     clock.NewMockClock(testNow),
	}
	services := &booking.Services{
		Clock:  f.clock,
		Policy: booking.NewPolicy(20*time.Minute, time.UTC),
	}
	f.sut = commands.NewReservationCommands(f.uow, services, f.summaries, f.notifier, config.NewTestConfig())
	return f
}

// runsTx makes Within execute fn once against the mocked tx.
func (f *fixture) runsTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func idsOf(slots []*slot.Slot) []uuid.UUID {
	ids := make([]uuid.UUID, len(slots))
	for i, s := range slots {
		ids[i] = s.ID()
	}
	return ids
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	tomorrow := time.Date(2030, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewSlotBuilder().WithStart(tomorrow).WithCount(2)
		slots := b.MustBuildDomain()
		ids := idsOf(slots)

		f.runsTx()
		f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
		f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
		f.bookings.EXPECT().CreateAll(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
		f.slots.EXPECT().MarkUnavailable(gomock.Any(), gomock.Any(), ids).Return(int64(2), nil)
		f.summaries.EXPECT().RecomputeMany(gomock.Any(), []summary.Key{{OwnerID: b.OwnerID, Date: time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)}}).Return(nil)

		var published commands.BookingEvent
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev commands.BookingEvent) error {
				published = ev
				return nil
			})

		result, err := f.sut.Reserve(ctx, commands.ReserveInput{
			OwnerID:  b.OwnerID,
			ClientID: clientID,
			SlotIDs:  ids,
			Subject:  "Piano lesson",
			Metadata: map[string]any{"level": "beginner"},
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.SessionID)
		assert.Len(t, result.BookingIDs, 2)

		assert.Equal(t, commands.EventReserved, published.Event)
		assert.Equal(t, "booking.reserved", published.RoutingKey())
		assert.Equal(t, result.SessionID, published.SessionID)
		assert.Equal(t, result.BookingIDs, published.BookingIDs)
		assert.Equal(t, b.OwnerID, published.OwnerID)
		assert.Equal(t, clientID, published.ClientID)
		assert.True(t, published.TimeRange.Start.Equal(tomorrow))
		assert.True(t, published.TimeRange.End.Equal(tomorrow.Add(time.Hour)))
	})

	t.Run("notification and recompute failures do not fail the reservation", func(t *testing.T) {
		f := newFixture(t)
		slots := builder.NewSlotBuilder().WithStart(tomorrow).MustBuildDomain()
		ids := idsOf(slots)

		f.runsTx()
		f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
		f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
		f.bookings.EXPECT().CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slots.EXPECT().MarkUnavailable(gomock.Any(), gomock.Any(), ids).Return(int64(1), nil)
		f.summaries.EXPECT().RecomputeMany(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		result, err := f.sut.Reserve(ctx, commands.ReserveInput{ClientID: clientID, SlotIDs: ids})

		require.NoError(t, err)
		assert.Len(t, result.BookingIDs, 1)
	})

	testCases := []struct {
		name  string
		setup func(f *fixture) commands.ReserveInput
		errIs error
	}{
		{
			name: "a slot was taken by a concurrent reservation",
			setup: func(f *fixture) commands.ReserveInput {
				slots := builder.NewSlotBuilder().WithStart(tomorrow).WithCount(3).MustBuildDomain()
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids[:2], nil)
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrSlotConflict,
		},
		{
			name: "lock wait timed out",
			setup: func(f *fixture) commands.ReserveInput {
				ids := []uuid.UUID{uuid.New()}
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).
					Return(nil, infra.WrapRepoErr("failed to lock slots", &pgconn.PgError{Code: "55P03"}))
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrSlotConflict,
		},
		{
			name: "slot already referenced by a booking",
			setup: func(f *fixture) commands.ReserveInput {
				slots := builder.NewSlotBuilder().WithStart(tomorrow).MustBuildDomain()
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
				f.bookings.EXPECT().CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23505"}))
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrSlotConflict,
		},
		{
			name: "slot starts inside the notice window",
			setup: func(f *fixture) commands.ReserveInput {
				slots := builder.NewSlotBuilder().WithStart(testNow.Add(19 * time.Minute)).MustBuildDomain()
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrPolicyViolation,
		},
		{
			name: "slots are not contiguous",
			setup: func(f *fixture) commands.ReserveInput {
				b := builder.NewSlotBuilder().WithStart(tomorrow)
				first := b.MustBuildDomain()
				second := builder.NewSlotBuilder().WithOwner(b.OwnerID).WithStart(tomorrow.Add(2 * time.Hour)).MustBuildDomain()
				slots := append(first, second...)
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrPolicyViolation,
		},
		{
			name: "slots of two owners",
			setup: func(f *fixture) commands.ReserveInput {
				first := builder.NewSlotBuilder().WithStart(tomorrow).MustBuildDomain()
				second := builder.NewSlotBuilder().WithStart(tomorrow.Add(30 * time.Minute)).MustBuildDomain()
				slots := append(first, second...)
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
				return commands.ReserveInput{ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrCrossOwnerRequest,
		},
		{
			name: "slots of another owner than requested",
			setup: func(f *fixture) commands.ReserveInput {
				slots := builder.NewSlotBuilder().WithStart(tomorrow).MustBuildDomain()
				ids := idsOf(slots)
				f.runsTx()
				f.slots.EXPECT().LockAvailable(gomock.Any(), gomock.Any(), ids).Return(ids, nil)
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), ids).Return(slots, nil)
				return commands.ReserveInput{OwnerID: uuid.New(), ClientID: clientID, SlotIDs: ids}
			},
			errIs: commands.ErrCrossOwnerRequest,
		},
		{
			name: "no slots",
			setup: func(f *fixture) commands.ReserveInput {
				return commands.ReserveInput{ClientID: clientID}
			},
			errIs: commands.ErrInvalidSlotSelection,
		},
		{
			name: "duplicate slot ids",
			setup: func(f *fixture) commands.ReserveInput {
				id := uuid.New()
				return commands.ReserveInput{ClientID: clientID, SlotIDs: []uuid.UUID{id, id}}
			},
			errIs: commands.ErrInvalidSlotSelection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := tc.setup(f)

			result, err := f.sut.Reserve(ctx, in)

			require.Error(t, err)
			testutil.AssertErrorIs(t, err, tc.errIs)
			assert.Nil(t, result)
		})
	}
}

func pendingBooking(sessionID, ownerID, clientID uuid.UUID, s *slot.Slot) *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), sessionID, ownerID, clientID, s.ID(),
		booking.Subject{}, booking.Metadata{}, booking.StatusPending, testNow)
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSlotBuilder().WithStart(testNow.Add(24 * time.Hour)).WithCount(2)
	slots := b.MustBuildDomain()
	sessionID, clientID := uuid.New(), uuid.New()

	t.Run("confirms every pending booking", func(t *testing.T) {
		f := newFixture(t)
		bookings := []*booking.Booking{
			pendingBooking(sessionID, b.OwnerID, clientID, slots[0]),
			pendingBooking(sessionID, b.OwnerID, clientID, slots[1]),
		}
		ids := []uuid.UUID{bookings[0].ID(), bookings[1].ID()}

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).Return(bookings, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), ids, booking.StatusConfirmed).Return(int64(2), nil)
		f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), idsOf(slots)).Return(slots, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev commands.BookingEvent) error {
				assert.Equal(t, commands.EventConfirmed, ev.Event)
				assert.Equal(t, sessionID, ev.SessionID)
				assert.ElementsMatch(t, ids, ev.BookingIDs)
				assert.True(t, ev.TimeRange.Start.Equal(slots[0].Start()))
				assert.True(t, ev.TimeRange.End.Equal(slots[1].End()))
				return nil
			})

		require.NoError(t, f.sut.Confirm(ctx, ids))
	})

	t.Run("partial match is rejected up front", func(t *testing.T) {
		f := newFixture(t)
		existing := pendingBooking(sessionID, b.OwnerID, clientID, slots[0])
		ids := []uuid.UUID{existing.ID(), uuid.New()}

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).Return([]*booking.Booking{existing}, nil)

		err := f.sut.Confirm(ctx, ids)

		testutil.AssertErrorIs(t, err, commands.ErrNotFound)
	})

	t.Run("already confirmed set is a no-op", func(t *testing.T) {
		f := newFixture(t)
		done := booking.ReconstructBooking(uuid.New(), sessionID, b.OwnerID, clientID, slots[0].ID(),
			booking.Subject{}, booking.Metadata{}, booking.StatusConfirmed, testNow)

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{done.ID()}).Return([]*booking.Booking{done}, nil)

		assert.NoError(t, f.sut.Confirm(ctx, []uuid.UUID{done.ID()}))
	})

	t.Run("empty selection", func(t *testing.T) {
		f := newFixture(t)
		testutil.AssertErrorIs(t, f.sut.Confirm(ctx, nil), commands.ErrInvalidBookingIDs)
	})

	t.Run("lock timeout on the bookings is a conflict", func(t *testing.T) {
		f := newFixture(t)
		ids := []uuid.UUID{uuid.New()}

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).
			Return(nil, infra.WrapRepoErr("failed to lock bookings", &pgconn.PgError{Code: "55P03"}))

		err := f.sut.Confirm(ctx, ids)

		testutil.AssertErrorIs(t, err, commands.ErrSlotConflict)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSlotBuilder().WithStart(time.Date(2030, 6, 2, 10, 0, 0, 0, time.UTC)).WithCount(2)
	slots := b.MustBuildDomain()
	sessionID, clientID := uuid.New(), uuid.New()

	testCases := []struct {
		name              string
		actor             booking.ActorRole
		expectedRecipient string
	}{
		{name: "client cancels, owner is told", actor: booking.ActorClient, expectedRecipient: "owner"},
		{name: "owner cancels, client is told", actor: booking.ActorOwner, expectedRecipient: "client"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			bookings := []*booking.Booking{
				pendingBooking(sessionID, b.OwnerID, clientID, slots[0]),
				pendingBooking(sessionID, b.OwnerID, clientID, slots[1]),
			}
			ids := []uuid.UUID{bookings[0].ID(), bookings[1].ID()}
			slotIDs := idsOf(slots)

			f.runsTx()
			gomock.InOrder(
				f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).Return(bookings, nil),
				f.slots.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), slotIDs).Return(slots, nil),
				f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), ids).Return(int64(2), nil),
				f.slots.EXPECT().Release(gomock.Any(), gomock.Any(), slotIDs).Return(int64(2), nil),
			)
			f.summaries.EXPECT().RecomputeMany(gomock.Any(), []summary.Key{{OwnerID: b.OwnerID, Date: time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)}}).Return(nil)
			f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, ev commands.BookingEvent) error {
					assert.Equal(t, commands.EventCancelled, ev.Event)
					assert.Equal(t, tc.actor.String(), ev.ActorRole)
					assert.Equal(t, tc.expectedRecipient, ev.Recipient)
					return nil
				})

			require.NoError(t, f.sut.Cancel(ctx, ids, tc.actor))
		})
	}

	t.Run("missing booking leaves everything untouched", func(t *testing.T) {
		f := newFixture(t)
		existing := pendingBooking(sessionID, b.OwnerID, clientID, slots[0])
		ids := []uuid.UUID{existing.ID(), uuid.New()}

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).Return([]*booking.Booking{existing}, nil)

		err := f.sut.Cancel(ctx, ids, booking.ActorClient)

		testutil.AssertErrorIs(t, err, commands.ErrNotFound)
	})

	t.Run("lock timeout on the bookings is a conflict", func(t *testing.T) {
		f := newFixture(t)
		ids := []uuid.UUID{uuid.New()}

		f.runsTx()
		f.bookings.EXPECT().LockByIDs(gomock.Any(), gomock.Any(), ids).
			Return(nil, infra.WrapRepoErr("failed to lock bookings", &pgconn.PgError{Code: "55P03"}))

		err := f.sut.Cancel(ctx, ids, booking.ActorOwner)

		testutil.AssertErrorIs(t, err, commands.ErrSlotConflict)
		assert.False(t, errs.Is(err, commands.ErrNotFound))
	})

	t.Run("unknown actor role", func(t *testing.T) {
		f := newFixture(t)
		err := f.sut.Cancel(ctx, []uuid.UUID{uuid.New()}, booking.ActorRole("admin"))
		testutil.AssertErrorIs(t, err, commands.ErrInvalidBookingIDs)
	})
}
