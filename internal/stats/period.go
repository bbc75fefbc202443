// Package stats contains period selection, aggregation, and formatting.
package stats

import "time"

// Period selects records by calendar date, inclusive on both ends.
// Bounds are dates at midnight UTC; matching compares the record's
// calendar date, never the raw instant, so source timezone offsets
// cannot shift a sample into a neighboring day.
type Period struct {
	Start time.Time
	End   time.Time
}

// DateRange builds a period covering [start, end] calendar dates.
func DateRange(start, end time.Time) Period {
	return Period{Start: dateOnly(start), End: dateOnly(end)}
}

// MonthOf builds a period covering one calendar month.
func MonthOf(year int, month time.Month) Period {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Period{Start: first, End: last}
}

// YearOf builds a period covering one calendar year.
func YearOf(year int) Period {
	return Period{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether the timestamp's calendar date falls inside
// the period.
func (p Period) Contains(ts time.Time) bool {
	d := dateOnly(ts)
	return !d.Before(p.Start) && !d.After(p.End)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
