package app

import (
	"context"
	"fmt"

	"github.com/vmanchev/payroll-advanced/internal/config"
	"github.com/vmanchev/payroll-advanced/internal/event_bus"
	"github.com/vmanchev/payroll-advanced/internal/utils"
	"github.com/vmanchev/payroll-advanced/pkg/export"
	"github.com/vmanchev/payroll-advanced/pkg/schedule"
)

// ExportSchedule is the one-shot CLI path: validate the year, check the
// destination, generate the schedule, and write it out. Validation happens
// before generation so a failing run never writes a partial file. No database
// is involved, so no run is recorded.
func ExportSchedule(configPath string, year int, path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.Output.Path
	}

	clock := utils.SystemClock{}
	if year == 0 {
		year = clock.Now().Year()
	}
	if err := schedule.ValidateYear(clock.Now().Year(), year); err != nil {
		return fmt.Errorf("cannot generate schedule for %d: %w", year, err)
	}

	renderer := schedule.NewCsvScheduleRenderer()
	exporter := export.NewExporter(renderer)
	if err := exporter.CheckWritable(path); err != nil {
		return err
	}

	service := schedule.NewService(clock, event_bus.NewEventBus())
	generated, err := service.Generate(context.Background(), year)
	if err != nil {
		return err
	}

	return exporter.Export(generated, path)
}
