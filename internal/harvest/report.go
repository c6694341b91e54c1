package harvest

import (
	"log"
	"os"
)

// Reporter receives the progress and warning events of a collection run.
// The command handlers pass a stderr-backed reporter; tests pass a
// recording one so nothing has to capture process-wide streams.
type Reporter interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// stderrReporter writes events to Stderr (without an annoying timestamp).
type stderrReporter struct {
	logger *log.Logger
}

// NewStderrReporter returns a Reporter writing to os.Stderr.
func NewStderrReporter() Reporter {
	return &stderrReporter{logger: log.New(os.Stderr, "", 0)}
}

func (r *stderrReporter) Infof(format string, args ...interface{}) {
	r.logger.Printf(format, args...)
}

func (r *stderrReporter) Warnf(format string, args ...interface{}) {
	r.logger.Printf("WARNING: "+format, args...)
}
