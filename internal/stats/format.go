package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02.01.2006"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatAmount renders a number with exactly two decimals and a comma
// decimal separator, no thousands separator. Rounding follows
// strconv.FormatFloat (round half to even).
func FormatAmount(value float64) string {
	return strings.Replace(strconv.FormatFloat(value, 'f', 2, 64), ".", ",", 1)
}

// FormatDate renders a date as zero-padded dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a zero-padded or unpadded dd.mm.yyyy date into a
// date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{dateLayout, "2.1.2006"} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}

// MonthName returns the English month name for months 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month %d", month)
	}
	return monthNames[month-1]
}
