package event_bus

// ScheduleGeneratedType is published after every successful schedule
// generation.
const ScheduleGeneratedType EventType = "schedule.generated"

type ScheduleGenerated struct {
	Year int
	// Rows is the number of rows in the generated schedule (always 12 for a
	// full year).
	Rows int
}
