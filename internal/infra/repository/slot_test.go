//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/query"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/pgconv"
	"slotbook/tests/common/builder"
	repositorymock "slotbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Lock Tests
// =============================================================================

func TestSlotRepository_LockAvailable(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSlotWriteQueries, query.DBTX)
		expectedIDs   []uuid.UUID
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: every slot locked",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockAvailableSlots(ctx, tx, ids).Return(ids, nil)
			},
			expectedIDs: ids,
		},
		{
			name: "success: a slot already taken is simply missing",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockAvailableSlots(ctx, tx, ids).Return(ids[:1], nil)
			},
			expectedIDs: ids[:1],
		},
		{
			name: "error: lock wait timed out",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx query.DBTX) {
				timeout := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}
				mock.EXPECT().LockAvailableSlots(ctx, tx, ids).Return(nil, timeout)
			},
			expectedError: true,
			expectKind:    infra.KindLockTimeout,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockAvailableSlots(ctx, tx, ids).Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			locked, err := repo.LockAvailable(ctx, mockDB, ids)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, locked)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedIDs, locked)
			}
		})
	}
}

// =============================================================================
// Read Tests
// =============================================================================

func TestSlotRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows converted to domain slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		expected := builder.NewSlotBuilder().WithCount(2).MustBuildDomain()
		rows := make([]query.Slots, len(expected))
		ids := make([]uuid.UUID, len(expected))
		for i, s := range expected {
			rows[i] = query.Slots{
				ID:          s.ID(),
				OwnerID:     s.OwnerID(),
				StartTime:   pgconv.TimeToPgtype(s.Start()),
				EndTime:     pgconv.TimeToPgtype(s.End()),
				IsAvailable: s.IsAvailable(),
			}
			ids[i] = s.ID()
		}
		mockQueries.EXPECT().GetSlotsByIDs(ctx, mockDB, ids).Return(rows, nil)

		got, err := repo.FindByIDs(ctx, mockDB, ids)

		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range expected {
			assert.Equal(t, expected[i].ID(), got[i].ID())
			assert.True(t, expected[i].Start().Equal(got[i].Start()))
			assert.True(t, expected[i].End().Equal(got[i].End()))
		}
	})

	t.Run("error: corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		now := time.Now()
		id := uuid.New()
		mockQueries.EXPECT().GetSlotsByIDs(ctx, mockDB, []uuid.UUID{id}).Return([]query.Slots{{
			ID:        id,
			OwnerID:   uuid.New(),
			StartTime: pgconv.TimeToPgtype(now),
			EndTime:   pgconv.TimeToPgtype(now.Add(-time.Minute)),
		}}, nil)

		_, err := repo.FindByIDs(ctx, mockDB, []uuid.UUID{id})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSlotRepository_ListAvailable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	pool := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries, pool)

	ownerID := uuid.New()
	from := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	// without a transaction the repository reads through its own pool
	mockQueries.EXPECT().ListAvailableSlotsInRange(ctx, pool, query.ListSlotsInRangeParams{
		OwnerID: ownerID,
		From:    pgconv.TimeToPgtype(from),
		To:      pgconv.TimeToPgtype(to),
	}).Return(nil, nil)

	got, err := repo.ListAvailable(ctx, nil, ownerID, from, to)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// =============================================================================
// Write Tests
// =============================================================================

func TestSlotRepository_MarkAndRelease(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}

	t.Run("mark unavailable reports affected rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)
		mockQueries.EXPECT().MarkSlotsUnavailable(ctx, mockDB, ids).Return(int64(1), nil)

		n, err := repo.MarkUnavailable(ctx, mockDB, ids)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("release wraps database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)
		mockQueries.EXPECT().ReleaseSlots(ctx, mockDB, ids).Return(int64(0), errors.New("connection reset"))

		_, err := repo.Release(ctx, mockDB, ids)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// mockDBTX satisfies query.DBTX; every call goes through the mocked queries instead.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mock instead.")
}
