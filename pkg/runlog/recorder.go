package runlog

import (
	"fmt"

	"github.com/vmanchev/payroll-advanced/internal/event_bus"
)

// RegisterRecorder subscribes the run log to schedule generation events so
// every generation leaves an audit record. Returns the unsubscribe function.
func RegisterRecorder(bus *event_bus.EventBus, service Service) (unsubscribe func()) {
	return event_bus.SubscribeTyped[event_bus.ScheduleGenerated](bus, event_bus.ScheduleGeneratedType,
		func(e event_bus.EventT[event_bus.ScheduleGenerated]) error {
			_, err := service.Record(e.Context(), e.Data.Year, e.Data.Rows)
			if err != nil {
				return fmt.Errorf("failed to record schedule run: %w", err)
			}
			return nil
		})
}
