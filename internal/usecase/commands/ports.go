package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventReserved  EventKind = "reserved"
	EventConfirmed EventKind = "confirmed"
	EventCancelled EventKind = "cancelled"
)

type EventTimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingEvent describes one session's outcome. It is published after commit and may be lost.
type BookingEvent struct {
	Event      EventKind      `json:"event"`
	SessionID  uuid.UUID      `json:"sessionId"`
	OwnerID    uuid.UUID      `json:"ownerId"`
	ClientID   uuid.UUID      `json:"clientId"`
	BookingIDs []uuid.UUID    `json:"bookingIds"`
	TimeRange  EventTimeRange `json:"timeRange"`
	ActorRole  string         `json:"actorRole,omitempty"`
	Recipient  string         `json:"recipient,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// RoutingKey is the topic the event is published under, e.g. "booking.reserved".
func (e BookingEvent) RoutingKey() string {
	return "booking." + string(e.Event)
}

type Notifier interface {
	Notify(ctx context.Context, event BookingEvent) error
}

// groupEvents builds one event per session from bookings and the slots they hold.
func groupEvents(kind EventKind, bookings []*booking.Booking, slotsByID map[uuid.UUID]*slot.Slot, now time.Time) []BookingEvent {
	var order []uuid.UUID
	bySession := make(map[uuid.UUID]*BookingEvent)
	for _, b := range bookings {
		ev, ok := bySession[b.SessionID()]
		if !ok {
			ev = &BookingEvent{
				Event:      kind,
				SessionID:  b.SessionID(),
				OwnerID:    b.OwnerID(),
				ClientID:   b.ClientID(),
				OccurredAt: now,
			}
			bySession[b.SessionID()] = ev
			order = append(order, b.SessionID())
		}
		ev.BookingIDs = append(ev.BookingIDs, b.ID())
		if s, ok := slotsByID[b.SlotID()]; ok {
			if ev.TimeRange.Start.IsZero() || s.Start().Before(ev.TimeRange.Start) {
				ev.TimeRange.Start = s.Start()
			}
			if s.End().After(ev.TimeRange.End) {
				ev.TimeRange.End = s.End()
			}
		}
	}

	events := make([]BookingEvent, 0, len(order))
	for _, id := range order {
		events = append(events, *bySession[id])
	}
	return events
}
