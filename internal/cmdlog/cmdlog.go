package cmdlog

import (
	"time"

	"github.com/google/uuid"

	"amareke/internal/logging"
	"amareke/internal/metrics"
)

// Run executes f as command cmd, counting and logging the outcome under a fresh run id.
func Run(cmd string, f func() error) error {
	runID := uuid.NewString()
	start := time.Now()
	metrics.IncCommandRun(cmd)
	err := f()
	fields := map[string]any{"run_id": runID, "duration_ms": time.Since(start).Milliseconds()}
	if err != nil {
		metrics.IncCommandError(cmd)
		fields["error"] = err.Error()
		logging.Error(cmd+"_error", fields)
	} else {
		logging.Info(cmd+"_ok", fields)
	}
	return err
}
