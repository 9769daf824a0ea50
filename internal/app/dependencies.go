package app

import (
	"database/sql"

	"github.com/vmanchev/payroll-advanced/internal/config"
	"github.com/vmanchev/payroll-advanced/internal/event_bus"
	"github.com/vmanchev/payroll-advanced/internal/utils"
	"github.com/vmanchev/payroll-advanced/pkg/export"
	"github.com/vmanchev/payroll-advanced/pkg/projection"
	"github.com/vmanchev/payroll-advanced/pkg/runlog"
	"github.com/vmanchev/payroll-advanced/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	ScheduleService     schedule.Service
	CsvScheduleRenderer *schedule.CsvScheduleRendererImpl
	ScheduleHandler     *schedule.Handler

	Exporter *export.Exporter

	RunRepo    runlog.Repository
	RunService runlog.Service
	RunHandler *runlog.Handler

	ProjectionService projection.Service
	ProjectionHandler *projection.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and
// handlers. db may be nil in one-shot mode, in which case the run log is not
// wired and generations are not recorded.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}
	deps.Bus = event_bus.NewEventBus()

	deps.CsvScheduleRenderer = schedule.NewCsvScheduleRenderer()
	deps.ScheduleService = schedule.NewService(deps.Clock, deps.Bus)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService, deps.CsvScheduleRenderer, deps.Clock)

	deps.Exporter = export.NewExporter(deps.CsvScheduleRenderer)

	if db != nil {
		deps.RunRepo = runlog.NewRepository(db)
		deps.RunService = runlog.NewService(deps.RunRepo, deps.Clock)
		deps.RunHandler = runlog.NewHandler(deps.RunService)
		runlog.RegisterRecorder(deps.Bus, deps.RunService)
	}

	projectionService, err := projection.NewService(cfg.Payroll, deps.Clock)
	if err != nil {
		return nil, err
	}
	deps.ProjectionService = projectionService
	deps.ProjectionHandler = projection.NewHandler(projectionService, deps.Clock)

	return deps, nil
}
