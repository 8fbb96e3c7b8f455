//go:build unit

package summary_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/summary"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tr(t *testing.T, day time.Time, from, to string) slot.TimeRange {
	t.Helper()
	parse := func(hm string) time.Time {
		p, err := time.Parse("15:04", hm)
		require.NoError(t, err)
		return time.Date(day.Year(), day.Month(), day.Day(), p.Hour(), p.Minute(), 0, 0, day.Location())
	}
	r, err := slot.NewTimeRange(parse(from), parse(to))
	require.NoError(t, err)
	return r
}

func TestCompute(t *testing.T) {
	day := time.Date(2030, 4, 10, 0, 0, 0, 0, time.UTC)
	dayBefore := day.AddDate(0, 0, -1).Add(12 * time.Hour)
	key := summary.Key{OwnerID: uuid.New(), Date: day}
	minNotice := 20 * time.Minute

	t.Run("contiguous pair before a booking", func(t *testing.T) {
		available := []slot.TimeRange{
			tr(t, day, "10:00", "10:30"),
			tr(t, day, "10:30", "11:00"),
			tr(t, day, "13:00", "13:30"),
		}

		actual := summary.Compute(key, available, 0, dayBefore, minNotice)

		assert.True(t, actual.HasBookableWindow)
		assert.False(t, actual.HasBookedActivity)
		assert.Equal(t, key.OwnerID, actual.OwnerID)
		assert.Equal(t, day, actual.Date)
		assert.Equal(t, dayBefore, actual.ComputedAt)
	})

	t.Run("isolated slot after the pair is booked", func(t *testing.T) {
		available := []slot.TimeRange{tr(t, day, "13:00", "13:30")}

		actual := summary.Compute(key, available, 2, dayBefore, minNotice)

		assert.False(t, actual.HasBookableWindow)
		assert.True(t, actual.HasBookedActivity)
	})
}

func TestHasBookableWindow(t *testing.T) {
	day := time.Date(2030, 4, 10, 0, 0, 0, 0, time.UTC)
	minNotice := 20 * time.Minute

	tests := []struct {
		name      string
		available func(t *testing.T) []slot.TimeRange
		now       time.Time
		expected  bool
	}{
		{
			name:      "no slots",
			available: func(t *testing.T) []slot.TimeRange { return nil },
			now:       day.Add(-time.Hour),
			expected:  false,
		},
		{
			name: "single slot",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{tr(t, day, "10:00", "10:30")}
			},
			now:      day.Add(-time.Hour),
			expected: false,
		},
		{
			name: "gap between slots",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{tr(t, day, "10:00", "10:30"), tr(t, day, "10:45", "11:15")}
			},
			now:      day.Add(-time.Hour),
			expected: false,
		},
		{
			name: "unsorted input is sorted first",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{tr(t, day, "10:30", "11:00"), tr(t, day, "10:00", "10:30")}
			},
			now:      day.Add(-time.Hour),
			expected: true,
		},
		{
			name: "first slot inside the notice window",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{tr(t, day, "10:00", "10:30"), tr(t, day, "10:30", "11:00")}
			},
			now:      day.Add(9*time.Hour + 50*time.Minute),
			expected: false,
		},
		{
			name: "first slot exactly at the notice boundary",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{tr(t, day, "10:00", "10:30"), tr(t, day, "10:30", "11:00")}
			},
			now:      day.Add(9*time.Hour + 40*time.Minute),
			expected: true,
		},
		{
			name: "later pair qualifies when the earlier one is too soon",
			available: func(t *testing.T) []slot.TimeRange {
				return []slot.TimeRange{
					tr(t, day, "10:00", "10:30"),
					tr(t, day, "10:30", "11:00"),
					tr(t, day, "11:00", "11:30"),
				}
			},
			now:      day.Add(10 * time.Hour),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := summary.HasBookableWindow(tt.available(t), tt.now, minNotice)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestKeysForSlots(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	owner := uuid.New()

	mk := func(start time.Time) *slot.Slot {
		s, err := slot.ReconstructSlot(uuid.New(), owner, start, start.Add(30*time.Minute), true)
		require.NoError(t, err)
		return s
	}

	// 23:30 and 00:00 JST straddle midnight.
	slots := []*slot.Slot{
		mk(time.Date(2030, 4, 10, 23, 0, 0, 0, tokyo)),
		mk(time.Date(2030, 4, 10, 23, 30, 0, 0, tokyo)),
		mk(time.Date(2030, 4, 11, 0, 0, 0, 0, tokyo)),
	}

	keys := summary.KeysForSlots(slots, tokyo)

	require.Len(t, keys, 2)
	assert.Equal(t, summary.Key{OwnerID: owner, Date: time.Date(2030, 4, 10, 0, 0, 0, 0, time.UTC)}, keys[0])
	assert.Equal(t, summary.Key{OwnerID: owner, Date: time.Date(2030, 4, 11, 0, 0, 0, 0, time.UTC)}, keys[1])
}
