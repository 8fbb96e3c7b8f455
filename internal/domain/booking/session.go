package booking

import (
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOwnerMismatch = errs.New("slots do not belong to the requested owner")

type SessionRequest struct {
	// OwnerID is optional; when set every slot must belong to it.
	OwnerID  uuid.UUID
	ClientID uuid.UUID
	Slots    []*slot.Slot
	Subject  Subject
	Metadata Metadata
}

// Session is the set of bookings created together for one contiguous run of slots.
type Session struct {
	id       uuid.UUID
	run      *slot.Run
	clientID uuid.UUID
	bookings []*Booking
}

func NewSession(services *Services, req SessionRequest) (*Session, error) {
	run, err := slot.NewRun(req.Slots)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != uuid.Nil && run.OwnerID() != req.OwnerID {
		return nil, ErrOwnerMismatch
	}

	now := services.Clock.Now()
	if err := services.Policy.Validate(now, run.Start()); err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	bookings := make([]*Booking, 0, len(run.Slots()))
	for _, s := range run.Slots() {
		bookings = append(bookings, &Booking{
			id:        uuid.New(),
			sessionID: sessionID,
			ownerID:   run.OwnerID(),
			clientID:  req.ClientID,
			slotID:    s.ID(),
			subject:   req.Subject,
			metadata:  req.Metadata,
			status:    StatusPending,
			createdAt: now,
		})
	}

	return &Session{
		id:       sessionID,
		run:      run,
		clientID: req.ClientID,
		bookings: bookings,
	}, nil
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) OwnerID() uuid.UUID   { return s.run.OwnerID() }
func (s *Session) ClientID() uuid.UUID  { return s.clientID }
func (s *Session) Bookings() []*Booking { return s.bookings }
func (s *Session) Slots() []*slot.Slot  { return s.run.Slots() }
func (s *Session) SlotIDs() []uuid.UUID { return s.run.IDs() }
func (s *Session) Start() time.Time     { return s.run.Start() }
func (s *Session) End() time.Time       { return s.run.End() }

func (s *Session) BookingIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.bookings))
	for i, b := range s.bookings {
		ids[i] = b.id
	}
	return ids
}
