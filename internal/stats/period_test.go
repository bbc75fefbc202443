package stats

import (
	"testing"
	"time"
)

func TestMonthOfBounds(t *testing.T) {
	cases := []struct {
		month time.Month
		last  int
	}{
		{time.January, 31},
		{time.February, 28},
		{time.April, 30},
		{time.December, 31},
	}
	for _, tc := range cases {
		p := MonthOf(2025, tc.month)
		if p.Start.Day() != 1 || p.Start.Month() != tc.month {
			t.Fatalf("%v: unexpected start %v", tc.month, p.Start)
		}
		if p.End.Day() != tc.last || p.End.Month() != tc.month {
			t.Fatalf("%v: unexpected end %v", tc.month, p.End)
		}
	}
}

func TestYearOfCoversWholeYear(t *testing.T) {
	p := YearOf(2025)
	if !p.Contains(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected first hour of the year to match")
	}
	if !p.Contains(time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected last hour of the year to match")
	}
	if p.Contains(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected previous year to be excluded")
	}
	if p.Contains(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected next year to be excluded")
	}
}

func TestContainsComparesCalendarDates(t *testing.T) {
	p := DateRange(
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	)
	offset := time.FixedZone("EEST", 3*60*60)
	// 00:30 local on June 1 is still May 31 in UTC; the local calendar
	// date decides.
	early := time.Date(2025, time.June, 1, 0, 30, 0, 0, offset)
	if !p.Contains(early) {
		t.Fatalf("expected offset timestamp on June 1 to match")
	}
	if p.Contains(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected June 2 to be excluded")
	}
}

func TestDateRangeIgnoresTimeOfDay(t *testing.T) {
	p := DateRange(
		time.Date(2025, time.March, 10, 15, 4, 5, 0, time.UTC),
		time.Date(2025, time.March, 12, 1, 2, 3, 0, time.UTC),
	)
	if !p.Contains(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected midnight of start date to match")
	}
	if !p.Contains(time.Date(2025, time.March, 12, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected evening of end date to match")
	}
}
