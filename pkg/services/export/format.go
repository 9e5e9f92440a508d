package export

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a monetary value for display: thousands separators,
// two decimals. Raw exports never use this.
func FormatCurrency(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatPercent renders a percentage-point value for display with one
// decimal and a trailing percent sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
