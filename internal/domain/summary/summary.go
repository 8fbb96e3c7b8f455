package summary

import (
	"sort"
	"time"

	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
)

// Key identifies one owner's calendar date. Date is midnight UTC.
type Key struct {
	OwnerID uuid.UUID
	Date    time.Time
}

func NewKey(ownerID uuid.UUID, t time.Time, loc *time.Location) Key {
	return Key{OwnerID: ownerID, Date: slot.DayOf(t, loc)}
}

// KeysForSlots returns the distinct (owner, date) keys touched by slots, in first-seen order.
func KeysForSlots(slots []*slot.Slot, loc *time.Location) []Key {
	seen := make(map[Key]struct{}, len(slots))
	keys := make([]Key, 0, 1)
	for _, s := range slots {
		k := NewKey(s.OwnerID(), s.Start(), loc)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

type DaySummary struct {
	OwnerID           uuid.UUID
	Date              time.Time
	HasBookableWindow bool
	HasBookedActivity bool
	ComputedAt        time.Time
}

// Compute derives the summary of key from its currently available slots and the number
// of bookings on that date. It never looks at a previous summary.
func Compute(key Key, available []slot.TimeRange, bookedCount int, now time.Time, minNotice time.Duration) DaySummary {
	return DaySummary{
		OwnerID:           key.OwnerID,
		Date:              key.Date,
		HasBookableWindow: HasBookableWindow(available, now, minNotice),
		HasBookedActivity: bookedCount > 0,
		ComputedAt:        now,
	}
}

// HasBookableWindow reports whether two adjacent available slots form a contiguous
// pair whose first slot starts at or after now + minNotice.
func HasBookableWindow(available []slot.TimeRange, now time.Time, minNotice time.Duration) bool {
	if len(available) < 2 {
		return false
	}
	ranges := make([]slot.TimeRange, len(available))
	copy(ranges, available)
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Start().Before(ranges[j].Start())
	})

	earliest := now.Add(minNotice)
	for i := 0; i+1 < len(ranges); i++ {
		if ranges[i].Start().Before(earliest) {
			continue
		}
		if ranges[i].Precedes(ranges[i+1]) {
			return true
		}
	}
	return false
}
