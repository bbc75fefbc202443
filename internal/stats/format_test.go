package stats

import (
	"strings"
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1173.4, "1173,40"},
		{194.02, "194,02"},
		{2.5, "2,50"},
		{0, "0,00"},
		{21, "21,00"},
		{-3.456, "-3,46"},
		{123456.789, "123456,79"},
	}
	for _, tc := range cases {
		got := FormatAmount(tc.value)
		if got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.value, got, tc.want)
		}
		fraction := got[strings.IndexByte(got, ',')+1:]
		if len(fraction) != 2 {
			t.Fatalf("FormatAmount(%v) = %q: want exactly two decimals", tc.value, got)
		}
	}
}

func TestFormatDateZeroPads(t *testing.T) {
	got := FormatDate(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	if got != "01.11.2025" {
		t.Fatalf("unexpected date: %q", got)
	}
	got = FormatDate(time.Date(2025, time.October, 13, 15, 30, 0, 0, time.UTC))
	if got != "13.10.2025" {
		t.Fatalf("unexpected date: %q", got)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"01.06.2025", "1.6.2025", " 01.06.2025 "} {
		got, err := ParseDate(value)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", value, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", value, got, want)
		}
	}
	for _, value := range []string{"", "2025-06-01", "32.01.2025", "June 1"} {
		if _, err := ParseDate(value); err == nil {
			t.Fatalf("expected ParseDate(%q) to fail", value)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(6); got != "June" {
		t.Fatalf("unexpected month name: %q", got)
	}
	if got := MonthName(1); got != "January" {
		t.Fatalf("unexpected month name: %q", got)
	}
	if got := MonthName(12); got != "December" {
		t.Fatalf("unexpected month name: %q", got)
	}
}
