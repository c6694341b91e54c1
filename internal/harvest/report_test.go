package harvest

import "fmt"

// recordReporter collects run events so tests can assert on them
// without capturing process-wide streams.
type recordReporter struct {
	infos    []string
	warnings []string
}

func (r *recordReporter) Infof(format string, args ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordReporter) Warnf(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
