// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Record is one hourly meter sample. Records are immutable after load.
type Record struct {
	Timestamp      time.Time
	ConsumptionKWh float64
	ProductionKWh  float64
	TemperatureC   float64
}

// ReportKind identifies which builder produced a report.
type ReportKind string

// Report kinds.
const (
	KindRange   ReportKind = "range"
	KindMonthly ReportKind = "monthly"
	KindYearly  ReportKind = "yearly"
)

// Report is an ordered sequence of text lines: a title followed by
// metric lines (or a no-data line). Console and file output use the
// same lines in the same order.
type Report struct {
	Kind  ReportKind
	Lines []string
}

// Title returns the report's first line, or "" for an empty report.
func (r Report) Title() string {
	if len(r.Lines) == 0 {
		return ""
	}
	return r.Lines[0]
}

// Body returns all lines joined with newlines, without a trailing one.
func (r Report) Body() string {
	return strings.Join(r.Lines, "\n")
}

// Config defines session settings after merging flags and config file.
type Config struct {
	DataPath   string
	OutputPath string
	Year       int
}

// ArchivedReport is one row of the written-report archive.
type ArchivedReport struct {
	ID        int64
	WrittenAt time.Time
	Kind      ReportKind
	Title     string
	Body      string
	Path      string
}
