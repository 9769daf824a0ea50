package schedule

import (
	"time"
)

// The calculator is pure date arithmetic: no I/O, no shared state, safe to
// call concurrently. All dates are day-granularity instants in UTC.

// LastDayOfMonth returns the final calendar day of the given month,
// accounting for leap years.
func LastDayOfMonth(year int, month time.Month) time.Time {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// SalaryPayDate returns the date the base salary is paid for the given month:
// the last day of the month, rolled back to the preceding Friday when the
// last day falls on a weekend (Saturday -1, Sunday -2).
func SalaryPayDate(year int, month time.Month) time.Time {
	lastDay := LastDayOfMonth(year, month)
	wd := lastDay.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return lastDay
	}
	back := int(wd-time.Friday+7) % 7
	return lastDay.AddDate(0, 0, -back)
}

// BonusPayDate returns the date the monthly bonus is paid for the given
// month: the 15th, rolled forward to the first Wednesday strictly after the
// 15th when it falls on a weekend (Saturday -> 19th, Sunday -> 18th).
func BonusPayDate(year int, month time.Month) time.Time {
	bonusDay := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	wd := bonusDay.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return bonusDay
	}
	forward := int(time.Wednesday-wd+7) % 7
	return bonusDay.AddDate(0, 0, forward)
}

// Generate produces the full schedule for a year: one row per month, January
// to December, unconditionally for all twelve months regardless of the
// current date. Year validation happens in the service layer before this is
// invoked.
func Generate(year int) Schedule {
	rows := make([]Row, 0, 12)
	for month := time.January; month <= time.December; month++ {
		rows = append(rows, Row{
			Month:      month,
			SalaryDate: SalaryPayDate(year, month),
			BonusDate:  BonusPayDate(year, month),
		})
	}
	return Schedule{Year: year, Rows: rows}
}
