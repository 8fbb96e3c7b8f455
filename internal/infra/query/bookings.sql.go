package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, session_id, owner_id, client_id, slot_id, subject, metadata, status, created_at, updated_at`

const createBooking = `
INSERT INTO bookings (id, session_id, owner_id, client_id, slot_id, subject, metadata, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`

type CreateBookingParams struct {
	ID        uuid.UUID          `json:"id"`
	SessionID uuid.UUID          `json:"session_id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	ClientID  uuid.UUID          `json:"client_id"`
	SlotID    uuid.UUID          `json:"slot_id"`
	Subject   string             `json:"subject"`
	Metadata  []byte             `json:"metadata"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.SessionID,
		arg.OwnerID,
		arg.ClientID,
		arg.SlotID,
		arg.Subject,
		arg.Metadata,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const lockBookingsByIDs = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE
`

func (q *Queries) LockBookingsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Bookings, error) {
	rows, err := db.Query(ctx, lockBookingsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

const updateBookingStatus = `
UPDATE bookings SET status = $2, updated_at = now()
WHERE id = ANY($1::uuid[])
`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, ids []uuid.UUID, status string) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, ids, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBookings = `
DELETE FROM bookings WHERE id = ANY($1::uuid[])
`

func (q *Queries) DeleteBookings(ctx context.Context, db DBTX, ids []uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBookings, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBookingByID = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.OwnerID,
		&i.ClientID,
		&i.SlotID,
		&i.Subject,
		&i.Metadata,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBookingViewsBySession = `
SELECT b.id, b.session_id, b.owner_id, b.client_id, b.slot_id, b.subject, b.metadata, b.status,
       b.created_at, s.start_time, s.end_time
FROM bookings b
JOIN slots s ON s.id = b.slot_id
WHERE b.session_id = $1
ORDER BY s.start_time, b.id
`

const getBookingView = `
SELECT b.id, b.session_id, b.owner_id, b.client_id, b.slot_id, b.subject, b.metadata, b.status,
       b.created_at, s.start_time, s.end_time
FROM bookings b
JOIN slots s ON s.id = b.slot_id
WHERE b.id = $1
`

type BookingViewRow struct {
	ID        uuid.UUID          `json:"id"`
	SessionID uuid.UUID          `json:"session_id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	ClientID  uuid.UUID          `json:"client_id"`
	SlotID    uuid.UUID          `json:"slot_id"`
	Subject   string             `json:"subject"`
	Metadata  []byte             `json:"metadata"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
}

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingView, id)
	var i BookingViewRow
	err := scanBookingView(row, &i)
	return i, err
}

func (q *Queries) ListBookingViewsBySession(ctx context.Context, db DBTX, sessionID uuid.UUID) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViewsBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		var i BookingViewRow
		if err := scanBookingView(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countBookingsInRange = `
SELECT count(*)
FROM bookings b
JOIN slots s ON s.id = b.slot_id
WHERE b.owner_id = $1 AND s.start_time >= $2 AND s.start_time < $3
`

func (q *Queries) CountBookingsInRange(ctx context.Context, db DBTX, arg ListSlotsInRangeParams) (int64, error) {
	row := db.QueryRow(ctx, countBookingsInRange, arg.OwnerID, arg.From, arg.To)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanBookingView(row interface{ Scan(dest ...any) error }, i *BookingViewRow) error {
	return row.Scan(
		&i.ID,
		&i.SessionID,
		&i.OwnerID,
		&i.ClientID,
		&i.SlotID,
		&i.Subject,
		&i.Metadata,
		&i.Status,
		&i.CreatedAt,
		&i.StartTime,
		&i.EndTime,
	)
}

func scanBookings(rows rowScanner) ([]Bookings, error) {
	var items []Bookings
	for rows.Next() {
		var i Bookings
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.OwnerID,
			&i.ClientID,
			&i.SlotID,
			&i.Subject,
			&i.Metadata,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
