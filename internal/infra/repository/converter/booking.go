package converter

import (
	"slotbook/internal/domain/booking"
	"slotbook/internal/infra/query"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:        b.ID(),
		SessionID: b.SessionID(),
		OwnerID:   b.OwnerID(),
		ClientID:  b.ClientID(),
		SlotID:    b.SlotID(),
		Subject:   b.Subject().String(),
		Metadata:  b.Metadata().JSON(),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row query.Bookings) (*booking.Booking, error) {
	subject, err := booking.NewSubject(row.Subject)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	metadata, err := booking.MetadataFromJSON(row.Metadata)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booking %s has unknown status %q", row.ID, row.Status)
	}
	return booking.ReconstructBooking(
		row.ID,
		row.SessionID,
		row.OwnerID,
		row.ClientID,
		row.SlotID,
		subject,
		metadata,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
