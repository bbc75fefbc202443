// Package loader reads hourly meter readings from a delimited text file.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/sahko/internal/model"
)

// fieldCount is the fixed column layout: timestamp, consumption (kWh),
// production (kWh), temperature (°C).
const fieldCount = 4

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Result holds the loaded records plus per-line diagnostics.
type Result struct {
	Records []model.Record
	Skipped int
	Errors  []string
}

// Load reads the source file into ordered records. Malformed rows are
// skipped and counted; an unopenable file or a missing/unexpected header
// is fatal.
func Load(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close after read.
			_ = cerr
		}
	}()
	return read(file)
}

func read(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Result{}, fmt.Errorf("data file is empty")
		}
		return Result{}, fmt.Errorf("failed to read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return Result{}, err
	}

	result := Result{}
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		record, err := parseRecord(fields)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Records = append(result.Records, record)
	}
	return result, nil
}

// validateHeader accepts any non-data first row with the expected column
// count. A first row that parses as a timestamp means the header is missing.
func validateHeader(fields []string) error {
	if len(fields) != fieldCount {
		return fmt.Errorf("unexpected header: got %d columns, want %d", len(fields), fieldCount)
	}
	if _, err := parseTimestamp(fields[0]); err == nil {
		return fmt.Errorf("unexpected header: first row looks like a data row")
	}
	return nil
}

func parseRecord(fields []string) (model.Record, error) {
	if len(fields) != fieldCount {
		return model.Record{}, fmt.Errorf("got %d fields, want %d", len(fields), fieldCount)
	}
	ts, err := parseTimestamp(fields[0])
	if err != nil {
		return model.Record{}, err
	}
	consumption, err := parseAmount(fields[1])
	if err != nil {
		return model.Record{}, fmt.Errorf("invalid consumption: %w", err)
	}
	production, err := parseAmount(fields[2])
	if err != nil {
		return model.Record{}, fmt.Errorf("invalid production: %w", err)
	}
	temperature, err := parseAmount(fields[3])
	if err != nil {
		return model.Record{}, fmt.Errorf("invalid temperature: %w", err)
	}
	return model.Record{
		Timestamp:      ts,
		ConsumptionKWh: consumption,
		ProductionKWh:  production,
		TemperatureC:   temperature,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", value)
}

// parseAmount parses a decimal field. The source locale writes decimals
// with a comma, so both separators are accepted.
func parseAmount(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", value)
	}
	return amount, nil
}
