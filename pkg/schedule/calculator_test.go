package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"February in a leap year", 2024, time.February, 29},
		{"February in a non-leap year", 2023, time.February, 28},
		{"February in a non-leap century", 2100, time.February, 28},
		{"30-day month", 2024, time.June, 30},
		{"31-day month", 2024, time.December, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastDay := LastDayOfMonth(tt.year, tt.month)
			assert.Equal(t, tt.year, lastDay.Year())
			assert.Equal(t, tt.month, lastDay.Month())
			assert.Equal(t, tt.day, lastDay.Day())
		})
	}
}

func TestSalaryPayDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		// June 30, 2024 is a Sunday, so the salary moves back to Friday the 28th
		{"last day on Sunday rolls back two days", 2024, time.June, 28},
		// August 31, 2024 is a Saturday
		{"last day on Saturday rolls back one day", 2024, time.August, 30},
		// September 30, 2024 is a Monday
		{"last day on a weekday stays", 2024, time.September, 30},
		// March 31, 2024 is a Sunday
		{"March 2024", 2024, time.March, 29},
		// November 30, 2024 is a Saturday
		{"November 2024", 2024, time.November, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payDate := SalaryPayDate(tt.year, tt.month)
			assert.Equal(t, tt.day, payDate.Day())
			assert.Equal(t, tt.month, payDate.Month())
			assert.Equal(t, tt.year, payDate.Year())
		})
	}
}

func TestBonusPayDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		// June 15, 2024 is a Saturday, so the bonus moves to Wednesday the 19th
		{"15th on Saturday rolls forward four days", 2024, time.June, 19},
		// September 15, 2024 is a Sunday
		{"15th on Sunday rolls forward three days", 2024, time.September, 18},
		// January 15, 2024 is a Monday
		{"15th on a weekday stays", 2024, time.January, 15},
		// December 15, 2024 is a Sunday
		{"December 2024", 2024, time.December, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payDate := BonusPayDate(tt.year, tt.month)
			assert.Equal(t, tt.day, payDate.Day())
			assert.Equal(t, tt.month, payDate.Month())
			assert.Equal(t, tt.year, payDate.Year())
		})
	}
}

func TestBonusPayDateLandsOnWednesdayAfterWeekend(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			the15th := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
			if wd := the15th.Weekday(); wd != time.Saturday && wd != time.Sunday {
				continue
			}
			payDate := BonusPayDate(year, month)
			assert.Equal(t, time.Wednesday, payDate.Weekday(), "%d-%02d", year, month)
			assert.True(t, payDate.After(the15th), "%d-%02d must be strictly after the 15th", year, month)
		}
	}
}

func TestGenerate(t *testing.T) {
	// when
	generated := Generate(2024)

	// then
	require.Len(t, generated.Rows, 12)
	assert.Equal(t, 2024, generated.Year)

	expectedNames := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, row := range generated.Rows {
		assert.Equal(t, time.Month(i+1), row.Month)
		assert.Equal(t, expectedNames[i], row.MonthName())
	}

	june := generated.Rows[5]
	assert.Equal(t, "28/06/2024", june.SalaryDate.Format(DateFormat))
	assert.Equal(t, "19/06/2024", june.BonusDate.Format(DateFormat))
	september := generated.Rows[8]
	assert.Equal(t, "30/09/2024", september.SalaryDate.Format(DateFormat))
	assert.Equal(t, "18/09/2024", september.BonusDate.Format(DateFormat))
}

func TestGenerateNeverPaysOnWeekends(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		generated := Generate(year)
		require.Len(t, generated.Rows, 12)
		for _, row := range generated.Rows {
			salaryDay := row.SalaryDate.Weekday()
			bonusDay := row.BonusDate.Weekday()
			assert.NotContains(t, []time.Weekday{time.Saturday, time.Sunday}, salaryDay,
				"salary for %s %d", row.MonthName(), year)
			assert.NotContains(t, []time.Weekday{time.Saturday, time.Sunday}, bonusDay,
				"bonus for %s %d", row.MonthName(), year)

			// The salary roll-back never exceeds two days and never leaves the month.
			lastDay := LastDayOfMonth(year, row.Month)
			assert.Equal(t, row.Month, row.SalaryDate.Month())
			assert.LessOrEqual(t, lastDay.Day()-row.SalaryDate.Day(), 2)
			assert.GreaterOrEqual(t, lastDay.Day()-row.SalaryDate.Day(), 0)

			// The bonus lands on the 15th, 18th or 19th.
			assert.Contains(t, []int{15, 18, 19}, row.BonusDate.Day(),
				"bonus for %s %d", row.MonthName(), year)
		}
	}
}
