package query

import (
	"context"
	"fmt"
	"time"
)

// SetLockTimeout bounds row-lock waits for the rest of the current transaction.
// SET does not accept bind parameters, so the value is formatted as milliseconds.
func (q *Queries) SetLockTimeout(ctx context.Context, db DBTX, d time.Duration) error {
	ms := d.Milliseconds()
	if ms <= 0 {
		return nil
	}
	_, err := db.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", ms))
	return err
}

const advisoryXactLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// AdvisoryXactLock serializes holders of the same key until the transaction ends.
func (q *Queries) AdvisoryXactLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, advisoryXactLock, key)
	return err
}
