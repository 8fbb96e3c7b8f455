package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertDaySummary = `
INSERT INTO day_summaries (owner_id, date, has_bookable_window, has_booked_activity, computed_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (owner_id, date) DO UPDATE
SET has_bookable_window = EXCLUDED.has_bookable_window,
    has_booked_activity = EXCLUDED.has_booked_activity,
    computed_at = EXCLUDED.computed_at
`

type UpsertDaySummaryParams struct {
	OwnerID           uuid.UUID          `json:"owner_id"`
	Date              pgtype.Date        `json:"date"`
	HasBookableWindow bool               `json:"has_bookable_window"`
	HasBookedActivity bool               `json:"has_booked_activity"`
	ComputedAt        pgtype.Timestamptz `json:"computed_at"`
}

func (q *Queries) UpsertDaySummary(ctx context.Context, db DBTX, arg UpsertDaySummaryParams) error {
	_, err := db.Exec(ctx, upsertDaySummary,
		arg.OwnerID,
		arg.Date,
		arg.HasBookableWindow,
		arg.HasBookedActivity,
		arg.ComputedAt,
	)
	return err
}

const getDaySummary = `
SELECT owner_id, date, has_bookable_window, has_booked_activity, computed_at
FROM day_summaries
WHERE owner_id = $1 AND date = $2
`

func (q *Queries) GetDaySummary(ctx context.Context, db DBTX, ownerID uuid.UUID, date pgtype.Date) (DaySummaries, error) {
	row := db.QueryRow(ctx, getDaySummary, ownerID, date)
	var i DaySummaries
	err := row.Scan(
		&i.OwnerID,
		&i.Date,
		&i.HasBookableWindow,
		&i.HasBookedActivity,
		&i.ComputedAt,
	)
	return i, err
}

const listDaySummaries = `
SELECT owner_id, date, has_bookable_window, has_booked_activity, computed_at
FROM day_summaries
WHERE owner_id = $1 AND date >= $2 AND date <= $3
ORDER BY date
`

type ListDaySummariesParams struct {
	OwnerID uuid.UUID   `json:"owner_id"`
	From    pgtype.Date `json:"from"`
	To      pgtype.Date `json:"to"`
}

func (q *Queries) ListDaySummaries(ctx context.Context, db DBTX, arg ListDaySummariesParams) ([]DaySummaries, error) {
	rows, err := db.Query(ctx, listDaySummaries, arg.OwnerID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DaySummaries
	for rows.Next() {
		var i DaySummaries
		if err := rows.Scan(
			&i.OwnerID,
			&i.Date,
			&i.HasBookableWindow,
			&i.HasBookedActivity,
			&i.ComputedAt,
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
