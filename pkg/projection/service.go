package projection

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vmanchev/payroll-advanced/internal/config"
	"github.com/vmanchev/payroll-advanced/internal/utils"
	"github.com/vmanchev/payroll-advanced/pkg/schedule"
)

type Service interface {
	// Project computes the annual payroll cost for the given year using the
	// configured monthly amounts. The year window is the same one the
	// schedule calculator accepts.
	Project(ctx context.Context, year int) (CostProjection, error)
}

type ServiceImpl struct {
	monthlySalary decimal.Decimal
	monthlyBonus  decimal.Decimal
	clock         utils.Clock
}

func NewService(cfg config.Payroll, clock utils.Clock) (*ServiceImpl, error) {
	monthlySalary, err := decimal.NewFromString(cfg.MonthlySalary)
	if err != nil {
		return nil, fmt.Errorf("invalid monthly salary amount %q: %w", cfg.MonthlySalary, err)
	}
	monthlyBonus, err := decimal.NewFromString(cfg.MonthlyBonus)
	if err != nil {
		return nil, fmt.Errorf("invalid monthly bonus amount %q: %w", cfg.MonthlyBonus, err)
	}
	return &ServiceImpl{
		monthlySalary: monthlySalary,
		monthlyBonus:  monthlyBonus,
		clock:         clock,
	}, nil
}

func (s *ServiceImpl) Project(ctx context.Context, year int) (CostProjection, error) {
	now := s.clock.Now().Year()
	if err := schedule.ValidateYear(now, year); err != nil {
		return CostProjection{}, fmt.Errorf("cannot project costs for %d: %w", year, err)
	}

	months := decimal.NewFromInt(12)
	annualSalary := s.monthlySalary.Mul(months)
	annualBonus := s.monthlyBonus.Mul(months)

	return CostProjection{
		Year:          year,
		MonthlySalary: s.monthlySalary,
		MonthlyBonus:  s.monthlyBonus,
		AnnualSalary:  annualSalary,
		AnnualBonus:   annualBonus,
		AnnualTotal:   annualSalary.Add(annualBonus),
	}, nil
}
