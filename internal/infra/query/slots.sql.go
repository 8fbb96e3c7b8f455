package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const lockAvailableSlots = `
SELECT id FROM slots
WHERE id = ANY($1::uuid[]) AND is_available
ORDER BY id
FOR UPDATE
`

// LockAvailableSlots locks only the id projection of the requested slots that are still
// available. Rows are locked in id order.
func (q *Queries) LockAvailableSlots(ctx context.Context, db DBTX, ids []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, lockAvailableSlots, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSlotsByIDs = `
SELECT id, owner_id, start_time, end_time, is_available, created_at, updated_at
FROM slots
WHERE id = ANY($1::uuid[])
ORDER BY start_time, id
`

func (q *Queries) GetSlotsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Slots, error) {
	rows, err := db.Query(ctx, getSlotsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

const markSlotsUnavailable = `
UPDATE slots SET is_available = false, updated_at = now()
WHERE id = ANY($1::uuid[]) AND is_available
`

func (q *Queries) MarkSlotsUnavailable(ctx context.Context, db DBTX, ids []uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markSlotsUnavailable, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseSlots = `
UPDATE slots SET is_available = true, updated_at = now()
WHERE id = ANY($1::uuid[])
  AND NOT is_available
  AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = slots.id)
`

func (q *Queries) ReleaseSlots(ctx context.Context, db DBTX, ids []uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, releaseSlots, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listAvailableSlotsInRange = `
SELECT id, owner_id, start_time, end_time, is_available, created_at, updated_at
FROM slots
WHERE owner_id = $1 AND is_available AND start_time >= $2 AND start_time < $3
ORDER BY start_time, id
`

type ListSlotsInRangeParams struct {
	OwnerID uuid.UUID          `json:"owner_id"`
	From    pgtype.Timestamptz `json:"from"`
	To      pgtype.Timestamptz `json:"to"`
}

func (q *Queries) ListAvailableSlotsInRange(ctx context.Context, db DBTX, arg ListSlotsInRangeParams) ([]Slots, error) {
	rows, err := db.Query(ctx, listAvailableSlotsInRange, arg.OwnerID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

const listSlotsInRange = `
SELECT id, owner_id, start_time, end_time, is_available, created_at, updated_at
FROM slots
WHERE owner_id = $1 AND start_time >= $2 AND start_time < $3
ORDER BY start_time, id
`

func (q *Queries) ListSlotsInRange(ctx context.Context, db DBTX, arg ListSlotsInRangeParams) ([]Slots, error) {
	rows, err := db.Query(ctx, listSlotsInRange, arg.OwnerID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSlots(rows rowScanner) ([]Slots, error) {
	var items []Slots
	for rows.Next() {
		var i Slots
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.StartTime,
			&i.EndTime,
			&i.IsAvailable,
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
