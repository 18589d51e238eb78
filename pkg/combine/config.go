// File: pkg/combine/config.go
package combine

import "time"

// Arguments holds the configuration options for one combine run.
type Arguments struct {
	Root           string         // Absolute path of the repository working tree.
	Output         string         // Destination file path, excluded if it lives in the tree; empty for non-file writers.
	Preamble       string         // Text written verbatim before the first frame.
	IgnorePatterns []string       // Additional ignore globs provided via command-line arguments.
	IgnoreRules    *IgnoreRuleSet // Precompiled rules; when set, IgnorePatterns is not compiled again.
	StartTime      time.Time      // Files modified at or after this instant are skipped; zero means time.Now().
}

// startTime returns the configured start time, capturing now when unset.
func (a Arguments) startTime() time.Time {
	if a.StartTime.IsZero() {
		return time.Now()
	}
	return a.StartTime
}
