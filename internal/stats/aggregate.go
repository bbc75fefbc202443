package stats

import "github.com/verte-zerg/sahko/internal/model"

// Summary holds totals and the mean temperature for one period.
// A Count of zero means no record matched; AverageTemperature is zero
// then and must not be presented as a computed value.
type Summary struct {
	TotalConsumption   float64
	TotalProduction    float64
	AverageTemperature float64
	Count              int
}

// HasData reports whether at least one record matched the period.
func (s Summary) HasData() bool {
	return s.Count > 0
}

// Summarize aggregates all records matching the period in a single pass.
func Summarize(records []model.Record, period Period) Summary {
	var summary Summary
	var temperatureSum float64
	for _, record := range records {
		if !period.Contains(record.Timestamp) {
			continue
		}
		summary.TotalConsumption += record.ConsumptionKWh
		summary.TotalProduction += record.ProductionKWh
		temperatureSum += record.TemperatureC
		summary.Count++
	}
	if summary.Count > 0 {
		summary.AverageTemperature = temperatureSum / float64(summary.Count)
	}
	return summary
}
