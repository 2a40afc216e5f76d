package app

import (
	"fmt"
	"time"
)

// NotAvailable показывается вместо среднего, если измерений не было.
const NotAvailable = "N/A"

// FormatResponseTime renders d in seconds with six decimals, e.g. "0.412345".
func FormatResponseTime(d time.Duration) string {
	return fmt.Sprintf("%f", d.Seconds())
}

// FormatAverage renders the session average or NotAvailable.
func FormatAverage(s Summary) string {
	if !s.HasAverage {
		return NotAvailable
	}
	return FormatResponseTime(s.Average)
}
