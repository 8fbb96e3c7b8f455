package slot

import (
	"fmt"
	"time"

	"slotbook/internal/pkg/errs"
)

var ErrInvalidTimeRange = errs.New("end time must be after start time")

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (tr TimeRange) Start() time.Time        { return tr.start }
func (tr TimeRange) End() time.Time          { return tr.end }
func (tr TimeRange) Duration() time.Duration { return tr.end.Sub(tr.start) }

// Precedes reports whether next starts exactly where tr ends.
func (tr TimeRange) Precedes(next TimeRange) bool {
	return tr.end.Equal(next.start)
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", tr.start.Format(time.RFC3339), tr.end.Format(time.RFC3339))
}

// DayOf returns the calendar date of t in loc, encoded as midnight UTC.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the instants [from, to) covering the calendar date in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
