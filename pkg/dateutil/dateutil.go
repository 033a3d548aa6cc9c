package dateutil

import (
	"time"
)

// HoldingMonths returns the number of full calendar months between
// purchaseDate and asOf, computed as a year/month difference rather than a
// day count: (asOf.year-pd.year)*12 + (asOf.month-pd.month).
// An inverted pair (asOf before purchaseDate) yields a negative result,
// which simply fails any long-term threshold test downstream.
func HoldingMonths(purchaseDate, asOf time.Time) int {
	years := asOf.Year() - purchaseDate.Year()
	months := int(asOf.Month()) - int(purchaseDate.Month())
	return years*12 + months
}

// DefaultAsOf returns the upcoming March 31 relative to now, or the current
// year's March 31 if now falls in January-March.
func DefaultAsOf(now time.Time) time.Time {
	year := now.Year()
	if now.Month() > time.March {
		year++
	}
	return time.Date(year, time.March, 31, 0, 0, 0, 0, now.Location())
}

// AddYears adds a number of years to a date.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddMonths adds a number of months to a date.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// BeginningOfYear returns the first instant of the year containing date.
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

// EndOfYear returns the last instant of the year containing date.
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}
