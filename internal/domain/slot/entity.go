package slot

import (
	"sort"
	"time"

	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMixedOwners   = errs.New("slots belong to different owners")
	ErrNotContiguous = errs.New("slots do not form one contiguous run")
	ErrEmptyRun      = errs.New("no slots given")
)

type Slot struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	timeRange   TimeRange
	isAvailable bool
}

func ReconstructSlot(id, ownerID uuid.UUID, start, end time.Time, isAvailable bool) (*Slot, error) {
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}
	return &Slot{
		id:          id,
		ownerID:     ownerID,
		timeRange:   tr,
		isAvailable: isAvailable,
	}, nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Slot) TimeRange() TimeRange { return s.timeRange }
func (s *Slot) Start() time.Time     { return s.timeRange.start }
func (s *Slot) End() time.Time       { return s.timeRange.end }
func (s *Slot) IsAvailable() bool    { return s.isAvailable }

// Run is a non-empty set of slots of a single owner, ordered by start time, each one
// starting where the previous one ends.
type Run struct {
	slots []*Slot
}

func NewRun(slots []*Slot) (*Run, error) {
	if len(slots) == 0 {
		return nil, ErrEmptyRun
	}

	sorted := make([]*Slot, len(slots))
	copy(sorted, slots)
	SortByStart(sorted)

	owner := sorted[0].ownerID
	for i, s := range sorted {
		if s.ownerID != owner {
			return nil, ErrMixedOwners
		}
		if i > 0 && !sorted[i-1].timeRange.Precedes(s.timeRange) {
			return nil, ErrNotContiguous
		}
	}
	return &Run{slots: sorted}, nil
}

func (r *Run) Slots() []*Slot     { return r.slots }
func (r *Run) OwnerID() uuid.UUID { return r.slots[0].ownerID }
func (r *Run) Start() time.Time   { return r.slots[0].Start() }
func (r *Run) End() time.Time     { return r.slots[len(r.slots)-1].End() }

func (r *Run) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.slots))
	for i, s := range r.slots {
		ids[i] = s.id
	}
	return ids
}

func SortByStart(slots []*Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Start().Equal(slots[j].Start()) {
			return slots[i].id.String() < slots[j].id.String()
		}
		return slots[i].Start().Before(slots[j].Start())
	})
}

// SpanOf returns the earliest start and latest end of slots. slots must be non-empty.
func SpanOf(slots []*Slot) (time.Time, time.Time) {
	start, end := slots[0].Start(), slots[0].End()
	for _, s := range slots[1:] {
		if s.Start().Before(start) {
			start = s.Start()
		}
		if s.End().After(end) {
			end = s.End()
		}
	}
	return start, end
}
