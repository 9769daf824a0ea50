package runlog

import (
	"time"

	"github.com/google/uuid"
)

// Run is one recorded schedule generation. The run log is an audit trail of
// generations only; schedule content is never persisted.
type Run struct {
	ID          uuid.UUID
	Year        int
	Rows        int
	GeneratedAt time.Time
}
