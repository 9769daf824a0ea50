package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmanchev/payroll-advanced/internal/event_bus"
	"github.com/vmanchev/payroll-advanced/internal/utils"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}

func TestServiceImpl_Generate(t *testing.T) {
	service := NewService(clock, event_bus.NewEventBus())

	// when
	generated, err := service.Generate(context.Background(), 2024)

	// then
	require.NoError(t, err)
	assert.Equal(t, 2024, generated.Year)
	assert.Len(t, generated.Rows, 12)
}

func TestServiceImpl_GenerateValidatesYearWindow(t *testing.T) {
	service := NewService(clock, event_bus.NewEventBus())

	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"twenty years back is rejected", 2004, true},
		{"twenty years ahead is rejected", 2044, true},
		{"nineteen years back is accepted", 2005, false},
		{"nineteen years ahead is accepted", 2043, false},
		{"far past is rejected", 1999, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Generate(context.Background(), tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidYear)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceImpl_GeneratePublishesEvent(t *testing.T) {
	// given
	bus := event_bus.NewEventBus()
	service := NewService(clock, bus)

	var received []event_bus.ScheduleGenerated
	unsubscribe := event_bus.SubscribeTyped[event_bus.ScheduleGenerated](bus, event_bus.ScheduleGeneratedType,
		func(e event_bus.EventT[event_bus.ScheduleGenerated]) error {
			received = append(received, e.Data)
			return nil
		})
	defer unsubscribe()

	// when
	_, err := service.Generate(context.Background(), 2025)

	// then
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, 2025, received[0].Year)
	assert.Equal(t, 12, received[0].Rows)
}

func TestServiceImpl_GenerateDoesNotPublishOnInvalidYear(t *testing.T) {
	// given
	bus := event_bus.NewEventBus()
	service := NewService(clock, bus)

	published := 0
	unsubscribe := bus.Subscribe(event_bus.ScheduleGeneratedType, func(e event_bus.Event) error {
		published++
		return nil
	})
	defer unsubscribe()

	// when
	_, err := service.Generate(context.Background(), 1990)

	// then
	assert.ErrorIs(t, err, ErrInvalidYear)
	assert.Equal(t, 0, published)
}
