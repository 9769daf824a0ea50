package runlog

import (
	"context"
)

type StubRepository struct {
	runs []Run
}

func NewStubRepository() *StubRepository {
	return &StubRepository{runs: []Run{}}
}

func (s *StubRepository) Store(ctx context.Context, run Run) error {
	s.runs = append(s.runs, run)
	return nil
}

func (s *StubRepository) GetRecent(ctx context.Context, limit int) ([]Run, error) {
	recent := make([]Run, 0, limit)
	for i := len(s.runs) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, s.runs[i])
	}
	return recent, nil
}
