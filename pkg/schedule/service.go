package schedule

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/vmanchev/payroll-advanced/internal/event_bus"
	"github.com/vmanchev/payroll-advanced/internal/utils"
)

type Service interface {
	// Generate validates the year against the current clock and produces the
	// full twelve-month schedule.
	Generate(ctx context.Context, year int) (Schedule, error)
}

type ServiceImpl struct {
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{clock: clock, bus: bus}
}

func (s *ServiceImpl) Generate(ctx context.Context, year int) (Schedule, error) {
	now := s.clock.Now().Year()
	if err := ValidateYear(now, year); err != nil {
		return Schedule{}, fmt.Errorf("cannot generate schedule for %d: %w", year, err)
	}

	generated := Generate(year)

	if s.bus != nil {
		event := event_bus.NewEvent(ctx, event_bus.ScheduleGeneratedType, event_bus.ScheduleGenerated{
			Year: year,
			Rows: len(generated.Rows),
		})
		if err := s.bus.Publish(event); err != nil {
			// The schedule itself is fine, only the notification failed.
			log.Warnf("failed to publish schedule generated event: %v", err)
		}
	}

	return generated, nil
}
