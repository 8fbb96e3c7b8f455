//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
)

// SlotBuilder produces a run of back-to-back slots for one owner.
type SlotBuilder struct {
	OwnerID   uuid.UUID
	Start     time.Time
	Length    time.Duration
	Count     int
	Available bool
}

func NewSlotBuilder() *SlotBuilder {
	tomorrow := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 2)
	return &SlotBuilder{
		OwnerID:   uuid.New(),
		Start:     tomorrow.Add(10 * time.Hour),
		Length:    30 * time.Minute,
		Count:     1,
		Available: true,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithOwner(id uuid.UUID) *SlotBuilder {
	b.OwnerID = id
	return b
}

func (b *SlotBuilder) WithStart(t time.Time) *SlotBuilder {
	b.Start = t
	return b
}

func (b *SlotBuilder) WithCount(n int) *SlotBuilder {
	b.Count = n
	return b
}

func (b *SlotBuilder) BuildDomain() ([]*slot.Slot, error) {
	slots := make([]*slot.Slot, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		start := b.Start.Add(time.Duration(i) * b.Length)
		s, err := slot.ReconstructSlot(uuid.New(), b.OwnerID, start, start.Add(b.Length), b.Available)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// MustBuildDomain panics on error; the builder's own values are always valid ranges.
func (b *SlotBuilder) MustBuildDomain() []*slot.Slot {
	slots, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return slots
}
