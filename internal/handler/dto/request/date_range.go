package request

import (
	"time"
)

type DateRangeQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Dates parses both bounds as midnight-UTC dates.
func (q DateRangeQuery) Dates() (time.Time, time.Time, error) {
	from, err := ParseDate(q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}
