package projection

import (
	"github.com/shopspring/decimal"
)

// CostProjection is the projected payroll cost for one year, assuming the
// configured monthly base salary and bonus are paid on every row of the
// schedule.
type CostProjection struct {
	Year          int
	MonthlySalary decimal.Decimal
	MonthlyBonus  decimal.Decimal
	AnnualSalary  decimal.Decimal
	AnnualBonus   decimal.Decimal
	AnnualTotal   decimal.Decimal
}
