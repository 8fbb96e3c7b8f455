package booking

import (
	"time"

	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyConfirmed = errs.New("booking is already confirmed")

// Booking is one client's claim on exactly one slot.
type Booking struct {
	id        uuid.UUID
	sessionID uuid.UUID
	ownerID   uuid.UUID
	clientID  uuid.UUID
	slotID    uuid.UUID
	subject   Subject
	metadata  Metadata
	status    Status
	createdAt time.Time
}

func ReconstructBooking(
	id, sessionID, ownerID, clientID, slotID uuid.UUID,
	subject Subject,
	metadata Metadata,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		sessionID: sessionID,
		ownerID:   ownerID,
		clientID:  clientID,
		slotID:    slotID,
		subject:   subject,
		metadata:  metadata,
		status:    status,
		createdAt: createdAt,
	}
}

// Confirm moves a pending booking to confirmed. Confirming twice is a no-op reported
// as ErrAlreadyConfirmed so callers can decide whether it matters.
func (b *Booking) Confirm() error {
	if b.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SessionID() uuid.UUID { return b.sessionID }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) ClientID() uuid.UUID  { return b.clientID }
func (b *Booking) SlotID() uuid.UUID    { return b.slotID }
func (b *Booking) Subject() Subject     { return b.subject }
func (b *Booking) Metadata() Metadata   { return b.metadata }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
