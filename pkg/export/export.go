package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/vmanchev/payroll-advanced/pkg/schedule"
)

// ErrUnwritableDestination is returned when the destination path cannot be
// written to (missing or read-only containing directory).
var ErrUnwritableDestination = errors.New("destination is not writable")

// ErrEmptySchedule is returned on an attempt to persist a schedule with no
// rows, which means export was called before generation.
var ErrEmptySchedule = errors.New("schedule has no rows")

// Exporter persists a rendered schedule to a file, truncating any existing
// content at the destination.
type Exporter struct {
	renderer schedule.ScheduleRenderer
}

func NewExporter(renderer schedule.ScheduleRenderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// CheckWritable verifies the destination before any schedule is generated, so
// a failing run never leaves a partial file behind. The probe file is the
// only reliable writability check across platforms.
func (e *Exporter) CheckWritable(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrUnwritableDestination)
	}
	probe, err := os.CreateTemp(dir, ".payroll-probe-*")
	if err != nil {
		return fmt.Errorf("%s: %w", dir, ErrUnwritableDestination)
	}
	probe.Close()
	if err := os.Remove(probe.Name()); err != nil {
		log.Warnf("failed to remove probe file %s: %v", probe.Name(), err)
	}
	return nil
}

// Export renders the schedule and writes it to path, overwriting any
// existing file.
func (e *Exporter) Export(generated schedule.Schedule, path string) error {
	if len(generated.Rows) == 0 {
		return ErrEmptySchedule
	}

	rendered, err := e.renderer.Render(generated)
	if err != nil {
		return fmt.Errorf("failed to render schedule: %w", err)
	}

	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		log.Errorf("failed to write schedule to %s: %v", path, err)
		return fmt.Errorf("failed to write %s: %w", path, ErrUnwritableDestination)
	}

	log.Infof("Wrote payment schedule for %d to %s", generated.Year, path)
	return nil
}
