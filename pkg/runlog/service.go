package runlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmanchev/payroll-advanced/internal/utils"
)

const defaultRecentLimit = 20

type Service interface {
	Record(ctx context.Context, year int, rows int) (Run, error)
	GetRecent(ctx context.Context, limit int) ([]Run, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) Record(ctx context.Context, year int, rows int) (Run, error) {
	run := Run{
		ID:          uuid.New(),
		Year:        year,
		Rows:        rows,
		GeneratedAt: s.clock.Now(),
	}
	if err := s.repo.Store(ctx, run); err != nil {
		return Run{}, fmt.Errorf("failed to store run: %w", err)
	}
	return run, nil
}

func (s *ServiceImpl) GetRecent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.GetRecent(ctx, limit)
}
