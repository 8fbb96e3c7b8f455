package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/summary"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrSlotConflict         = errs.New("one or more of your selected times were just taken")
	ErrPolicyViolation      = errs.New("reservation violates booking policy")
	ErrCrossOwnerRequest    = errs.New("slots belong to different owners")
	ErrNotFound             = errs.New("one or more bookings were not found")
	ErrInvalidSlotSelection = errs.New("invalid slot selection")
	ErrInvalidBookingIDs    = errs.New("invalid booking selection")
	ErrInvalidReservation   = errs.New("invalid reservation details")
)

type ReserveInput struct {
	// OwnerID is optional; when set every slot must belong to it.
	OwnerID  uuid.UUID
	ClientID uuid.UUID
	SlotIDs  []uuid.UUID
	Subject  string
	Metadata map[string]any
}

type ReserveResult struct {
	SessionID  uuid.UUID
	BookingIDs []uuid.UUID
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	Confirm(ctx context.Context, bookingIDs []uuid.UUID) error
	Cancel(ctx context.Context, bookingIDs []uuid.UUID, actor booking.ActorRole) error
}

type reservationUseCaseImpl struct {
	uow           shared.UnitOfWork
	services      *booking.Services
	summaries     SummaryCommands
	notifier      Notifier
	maxSlots      int
	notifyTimeout time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	summaries SummaryCommands,
	notifier Notifier,
	cfg config.Config,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:           uow,
		services:      services,
		summaries:     summaries,
		notifier:      notifier,
		maxSlots:      cfg.Booking.MaxSlotsPerRequest,
		notifyTimeout: cfg.Notify.Timeout,
	}
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("client.id", in.ClientID.String()),
		attribute.Int("slot.count", len(in.SlotIDs)),
	)

	slotIDs, err := distinctIDs(in.SlotIDs, uc.maxSlots)
	if err != nil {
		return nil, fail(span, errs.Mark(err, ErrInvalidSlotSelection))
	}
	subject, err := booking.NewSubject(in.Subject)
	if err != nil {
		return nil, fail(span, errs.Mark(err, ErrInvalidReservation))
	}
	metadata, err := booking.NewMetadata(in.Metadata)
	if err != nil {
		return nil, fail(span, errs.Mark(err, ErrInvalidReservation))
	}

	var session *booking.Session
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session = nil

		locked, err := tx.Slots().LockAvailable(ctx, tx.DB(), slotIDs)
		if err != nil {
			return asConflict(err)
		}
		if len(locked) != len(slotIDs) {
			return ErrSlotConflict
		}

		// the rows are locked, so the wide read cannot change under us
		slots, err := tx.Slots().FindByIDs(ctx, tx.DB(), slotIDs)
		if err != nil {
			return err
		}
		if len(slots) != len(slotIDs) {
			return ErrSlotConflict
		}

		s, err := booking.NewSession(uc.services, booking.SessionRequest{
			OwnerID:  in.OwnerID,
			ClientID: in.ClientID,
			Slots:    slots,
			Subject:  subject,
			Metadata: metadata,
		})
		if err != nil {
			return classifySessionErr(err)
		}

		if err := tx.Bookings().CreateAll(ctx, tx.DB(), s.Bookings()); err != nil {
			return asConflict(err)
		}
		n, err := tx.Slots().MarkUnavailable(ctx, tx.DB(), slotIDs)
		if err != nil {
			return err
		}
		if n != int64(len(slotIDs)) {
			return ErrSlotConflict
		}

		session = s
		return nil
	})
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.String("session.id", session.ID().String()))

	after := context.WithoutCancel(ctx)
	uc.refreshSummaries(after, session.Slots())
	uc.publish(after, []BookingEvent{{
		Event:      EventReserved,
		SessionID:  session.ID(),
		OwnerID:    session.OwnerID(),
		ClientID:   session.ClientID(),
		BookingIDs: session.BookingIDs(),
		TimeRange:  EventTimeRange{Start: session.Start(), End: session.End()},
		OccurredAt: uc.services.Clock.Now(),
	}})

	return &ReserveResult{
		SessionID:  session.ID(),
		BookingIDs: session.BookingIDs(),
	}, nil
}

// Confirm moves the whole set to confirmed or changes nothing. Already confirmed
// bookings in the set are left as they are.
func (uc *reservationUseCaseImpl) Confirm(ctx context.Context, bookingIDs []uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Confirm")
	defer span.End()
	span.SetAttributes(attribute.Int("booking.count", len(bookingIDs)))

	ids, err := distinctIDs(bookingIDs, 0)
	if err != nil {
		return fail(span, errs.Mark(err, ErrInvalidBookingIDs))
	}

	var confirmed []*booking.Booking
	var slotsByID map[uuid.UUID]*slot.Slot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		confirmed, slotsByID = nil, nil

		locked, err := tx.Bookings().LockByIDs(ctx, tx.DB(), ids)
		if err != nil {
			return asConflict(err)
		}
		if len(locked) != len(ids) {
			return ErrNotFound
		}

		var pending []*booking.Booking
		var pendingIDs []uuid.UUID
		for _, b := range locked {
			if b.Confirm() == nil {
				pending = append(pending, b)
				pendingIDs = append(pendingIDs, b.ID())
			}
		}
		if len(pending) == 0 {
			return nil
		}
		if _, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), pendingIDs, booking.StatusConfirmed); err != nil {
			return err
		}

		slots, err := tx.Slots().FindByIDs(ctx, tx.DB(), slotIDsOf(pending))
		if err != nil {
			return err
		}
		confirmed, slotsByID = pending, indexSlots(slots)
		return nil
	})
	if err != nil {
		return fail(span, err)
	}

	if len(confirmed) > 0 {
		uc.publish(context.WithoutCancel(ctx), groupEvents(EventConfirmed, confirmed, slotsByID, uc.services.Clock.Now()))
	}
	return nil
}

// Cancel deletes the whole set and releases its slots, or changes nothing.
// actor only decides who is told about it.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, bookingIDs []uuid.UUID, actor booking.ActorRole) error {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Cancel")
	defer span.End()
	span.SetAttributes(
		attribute.Int("booking.count", len(bookingIDs)),
		attribute.String("actor.role", actor.String()),
	)

	if !actor.IsValid() {
		return fail(span, errs.Mark(booking.ErrInvalidActorRole, ErrInvalidBookingIDs))
	}
	ids, err := distinctIDs(bookingIDs, 0)
	if err != nil {
		return fail(span, errs.Mark(err, ErrInvalidBookingIDs))
	}

	var cancelled []*booking.Booking
	var released []*slot.Slot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, released = nil, nil

		// a concurrent cancel of the same bookings waits here and then finds them gone
		locked, err := tx.Bookings().LockByIDs(ctx, tx.DB(), ids)
		if err != nil {
			return asConflict(err)
		}
		if len(locked) != len(ids) {
			return ErrNotFound
		}

		slotIDs := slotIDsOf(locked)
		slots, err := tx.Slots().FindByIDs(ctx, tx.DB(), slotIDs)
		if err != nil {
			return err
		}

		if _, err := tx.Bookings().Delete(ctx, tx.DB(), ids); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotFound)
			}
			return err
		}
		if _, err := tx.Slots().Release(ctx, tx.DB(), slotIDs); err != nil {
			return err
		}

		cancelled, released = locked, slots
		return nil
	})
	if err != nil {
		return fail(span, err)
	}

	after := context.WithoutCancel(ctx)
	uc.refreshSummaries(after, released)

	events := groupEvents(EventCancelled, cancelled, indexSlots(released), uc.services.Clock.Now())
	for i := range events {
		events[i].ActorRole = actor.String()
		events[i].Recipient = actor.Counterpart().String()
	}
	uc.publish(after, events)
	return nil
}

// refreshSummaries runs after commit. A failure is logged inside RecomputeMany and
// never undoes the committed change.
func (uc *reservationUseCaseImpl) refreshSummaries(ctx context.Context, slots []*slot.Slot) {
	keys := summary.KeysForSlots(slots, uc.services.Policy.Location)
	if len(keys) == 0 {
		return
	}
	_ = uc.summaries.RecomputeMany(ctx, keys)
}

func (uc *reservationUseCaseImpl) publish(ctx context.Context, events []BookingEvent) {
	for _, ev := range events {
		nctx, cancel := context.WithTimeout(ctx, uc.notifyTimeout)
		err := uc.notifier.Notify(nctx, ev)
		cancel()
		if err != nil {
			slog.Warn("booking notification failed",
				"event", ev.Event,
				"session_id", ev.SessionID,
				"error", err.Error())
		}
	}
}

func distinctIDs(ids []uuid.UUID, limit int) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, errs.New("at least one id is required")
	}
	if limit > 0 && len(ids) > limit {
		return nil, errs.Newf("at most %d ids are allowed", limit)
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, errs.New("nil id")
		}
		if _, dup := seen[id]; dup {
			return nil, errs.Newf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func slotIDsOf(bookings []*booking.Booking) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(bookings))
	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.SlotID()]; ok {
			continue
		}
		seen[b.SlotID()] = struct{}{}
		ids = append(ids, b.SlotID())
	}
	return ids
}

func indexSlots(slots []*slot.Slot) map[uuid.UUID]*slot.Slot {
	m := make(map[uuid.UUID]*slot.Slot, len(slots))
	for _, s := range slots {
		m[s.ID()] = s
	}
	return m
}

// asConflict reports lock timeouts and slot_id unique violations as a lost race.
func asConflict(err error) error {
	if infra.IsKind(err, infra.KindLockTimeout) || infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrSlotConflict)
	}
	return err
}

func classifySessionErr(err error) error {
	switch {
	case errs.IsAny(err, slot.ErrMixedOwners, booking.ErrOwnerMismatch):
		return errs.Mark(err, ErrCrossOwnerRequest)
	case errs.IsAny(err, slot.ErrNotContiguous, booking.ErrInsufficientNotice, booking.ErrNotFutureDate):
		return errs.Mark(err, ErrPolicyViolation)
	case errs.Is(err, slot.ErrEmptyRun):
		return errs.Mark(err, ErrInvalidSlotSelection)
	default:
		return err
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
