// Package report builds and persists the aggregate text reports.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/sahko/internal/model"
	"github.com/verte-zerg/sahko/internal/stats"
)

// Validation failures surfaced to the session as re-prompts.
var (
	ErrInvalidRange = errors.New("start date is after end date")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

const noDataLine = "No data available for this period."

// BuildRange builds the daily-range report for [start, end] dates.
func BuildRange(records []model.Record, start, end time.Time) (model.Report, error) {
	if start.After(end) {
		return model.Report{}, ErrInvalidRange
	}
	title := fmt.Sprintf("Report for the period %s–%s", stats.FormatDate(start), stats.FormatDate(end))
	summary := stats.Summarize(records, stats.DateRange(start, end))
	return build(model.KindRange, title, summary), nil
}

// BuildMonth builds the report for one month of the dataset year.
func BuildMonth(records []model.Record, year, month int) (model.Report, error) {
	if month < 1 || month > 12 {
		return model.Report{}, ErrInvalidMonth
	}
	title := fmt.Sprintf("Report for the month: %s", stats.MonthName(month))
	summary := stats.Summarize(records, stats.MonthOf(year, time.Month(month)))
	return build(model.KindMonthly, title, summary), nil
}

// BuildYear builds the full-year report.
func BuildYear(records []model.Record, year int) model.Report {
	title := fmt.Sprintf("Report for the year: %d", year)
	summary := stats.Summarize(records, stats.YearOf(year))
	return build(model.KindYearly, title, summary)
}

func build(kind model.ReportKind, title string, summary stats.Summary) model.Report {
	lines := []string{title}
	if !summary.HasData() {
		lines = append(lines, noDataLine)
		return model.Report{Kind: kind, Lines: lines}
	}
	lines = append(lines,
		fmt.Sprintf("Total consumption: %s kWh", stats.FormatAmount(summary.TotalConsumption)),
		fmt.Sprintf("Total production: %s kWh", stats.FormatAmount(summary.TotalProduction)),
		fmt.Sprintf("Average temperature: %s °C", stats.FormatAmount(summary.AverageTemperature)),
	)
	return model.Report{Kind: kind, Lines: lines}
}
