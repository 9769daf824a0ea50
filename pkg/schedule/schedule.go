package schedule

import (
	"time"
)

// DateFormat is the day/month/year form used in CSV output, e.g. "05/01/2024".
const DateFormat = "02/01/2006"

// Row holds the two payment dates for a single month.
type Row struct {
	Month time.Month
	// SalaryDate is the base salary payment date: the last day of the month,
	// moved back to Friday when it falls on a weekend.
	SalaryDate time.Time
	// BonusDate is the bonus payment date: the 15th of the month, moved
	// forward to the next Wednesday when it falls on a weekend. The bonus
	// covers the previous month's work but is dated in the current month.
	BonusDate time.Time
}

// MonthName returns the full English month name, e.g. "January".
func (r Row) MonthName() string {
	return r.Month.String()
}

// Schedule is the complete payment schedule for one year: twelve rows in
// January to December order. It is never mutated after generation.
type Schedule struct {
	Year int
	Rows []Row
}

// Header is the column header row for the tabular form of a schedule.
func Header() []string {
	return []string{"Month", "Salary", "Bonus"}
}
