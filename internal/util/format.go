package util

import "strconv"

// FormatMoney formats a dollar amount for display (e.g., "$1240.50",
// "-$75.00"). Values are always shown with two decimal places.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + strconv.FormatFloat(-amount, 'f', 2, 64)
	}
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatHours formats an hour count for display (e.g., "8h", "2.5h").
// Whole hours drop the fraction.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// FormatPct formats a 0-100 percentage for display with one decimal place
// (e.g., "66.7%").
func FormatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

// FormatRatio formats a ratio such as ROI with two decimal places.
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
