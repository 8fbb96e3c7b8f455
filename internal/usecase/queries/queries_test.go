//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/testutil"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var day = time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

func TestGetDaySummary(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("stored summary", func(t *testing.T) {
		store := queriesmock.NewMockSummaryReadStore(gomock.NewController(t))
		computed := day.Add(-time.Hour)
		stored := &queries.DaySummaryView{OwnerID: ownerID, Date: day, HasBookableWindow: true, ComputedAt: &computed}
		store.EXPECT().FindDaySummary(ctx, ownerID, day).Return(stored, nil)

		got, err := queries.NewSummaryQueries(store).GetDaySummary(ctx, ownerID, day)

		require.NoError(t, err)
		assert.Same(t, stored, got)
	})

	t.Run("never computed reads as empty", func(t *testing.T) {
		store := queriesmock.NewMockSummaryReadStore(gomock.NewController(t))
		store.EXPECT().FindDaySummary(ctx, ownerID, day).
			Return(nil, infra.WrapRepoErr("failed to get day summary", pgx.ErrNoRows))

		got, err := queries.NewSummaryQueries(store).GetDaySummary(ctx, ownerID, day)

		require.NoError(t, err)
		assert.Equal(t, &queries.DaySummaryView{OwnerID: ownerID, Date: day}, got)
	})
}

func TestListDaySummaries(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("fills every date in the range", func(t *testing.T) {
		store := queriesmock.NewMockSummaryReadStore(gomock.NewController(t))
		second := &queries.DaySummaryView{OwnerID: ownerID, Date: day.AddDate(0, 0, 1), HasBookedActivity: true}
		store.EXPECT().ListDaySummaries(ctx, ownerID, day, day.AddDate(0, 0, 2)).
			Return([]*queries.DaySummaryView{second}, nil)

		got, err := queries.NewSummaryQueries(store).ListDaySummaries(ctx, ownerID, day, day.AddDate(0, 0, 2))

		require.NoError(t, err)
		want := []*queries.DaySummaryView{
			{OwnerID: ownerID, Date: day},
			second,
			{OwnerID: ownerID, Date: day.AddDate(0, 0, 2)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListDaySummaries() mismatch (-want +got):\n%s", diff)
		}
	})

	testCases := []struct {
		name     string
		from, to time.Time
	}{
		{name: "inverted", from: day, to: day.AddDate(0, 0, -1)},
		{name: "too long", from: day, to: day.AddDate(0, 0, queries.MaxRangeDays)},
		{name: "zero", from: time.Time{}, to: day},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := queriesmock.NewMockSummaryReadStore(gomock.NewController(t))

			_, err := queries.NewSummaryQueries(store).ListDaySummaries(ctx, ownerID, tc.from, tc.to)

			testutil.AssertErrorIs(t, err, queries.ErrInvalidDateRange)
		})
	}

	t.Run("the longest allowed range", func(t *testing.T) {
		store := queriesmock.NewMockSummaryReadStore(gomock.NewController(t))
		to := day.AddDate(0, 0, queries.MaxRangeDays-1)
		store.EXPECT().ListDaySummaries(ctx, ownerID, day, to).Return(nil, nil)

		got, err := queries.NewSummaryQueries(store).ListDaySummaries(ctx, ownerID, day, to)

		require.NoError(t, err)
		assert.Len(t, got, queries.MaxRangeDays)
	})
}

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	store := queriesmock.NewMockSlotReadStore(gomock.NewController(t))
	store.EXPECT().ListByOwner(ctx, ownerID,
		time.Date(2030, 6, 2, 0, 0, 0, 0, tokyo),
		time.Date(2030, 6, 4, 0, 0, 0, 0, tokyo),
	).DoAndReturn(func(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
		return []*queries.SlotView{{OwnerID: ownerID, StartTime: from}}, nil
	})

	sut := queries.NewSlotQueries(store, booking.NewPolicy(20*time.Minute, tokyo))
	got, err := sut.ListSlots(ctx, ownerID, day, day.AddDate(0, 0, 1))

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown booking", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("failed to get booking", pgx.ErrNoRows))

		_, err := queries.NewBookingQueries(store).GetBooking(ctx, id)

		testutil.AssertErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("cancelled session", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		sessionID := uuid.New()
		store.EXPECT().FindBySession(ctx, sessionID).Return(nil, nil)

		_, err := queries.NewBookingQueries(store).ListSessionBookings(ctx, sessionID)

		testutil.AssertErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("session bookings", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		sessionID := uuid.New()
		views := []*queries.BookingView{{ID: uuid.New(), SessionID: sessionID}, {ID: uuid.New(), SessionID: sessionID}}
		store.EXPECT().FindBySession(ctx, sessionID).Return(views, nil)

		got, err := queries.NewBookingQueries(store).ListSessionBookings(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})
}
