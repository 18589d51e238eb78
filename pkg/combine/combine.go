package combine

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Run writes the preamble, one frame per included file under args.Root and
// the end marker to out. On error the output is left without an end marker.
func Run(args Arguments, oracle IgnoreOracle, out io.Writer, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting combination process", zap.String("root", args.Root))

	filter, err := newRunFilter(args, oracle, logger)
	if err != nil {
		return Summary{}, err
	}

	w := NewWriter(out)
	if err := w.WritePreamble(args.Preamble); err != nil {
		return Summary{}, err
	}

	summary, err := scan(args.Root, filter, logger, func(c *FileCandidate) error {
		fc, err := ProcessSingleFile(c, logger)
		if err != nil {
			return err
		}
		return w.WriteFrame(fc.Path, fc.Content)
	})
	if err != nil {
		return summary, err
	}

	if err := w.WriteEnd(); err != nil {
		return summary, err
	}
	if err := w.Flush(); err != nil {
		return summary, err
	}

	logger.Info("Combination process completed",
		zap.Int("scanned", summary.Scanned),
		zap.Int("included", summary.Included),
		zap.Any("excluded", summary.Excluded),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}

// Collect applies the same selection as Run without reading or writing
// content, returning the relative paths that would be framed.
func Collect(args Arguments, oracle IgnoreOracle, logger *zap.Logger) ([]string, Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	filter, err := newRunFilter(args, oracle, logger)
	if err != nil {
		return nil, Summary{}, err
	}

	var paths []string
	summary, err := scan(args.Root, filter, logger, func(c *FileCandidate) error {
		paths = append(paths, c.RelPath)
		return nil
	})
	if err != nil {
		return nil, summary, err
	}
	return paths, summary, nil
}

func newRunFilter(args Arguments, oracle IgnoreOracle, logger *zap.Logger) (*Filter, error) {
	rules := args.IgnoreRules
	if rules == nil {
		var err error
		rules, err = NewIgnoreRuleSet(args.IgnorePatterns, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
		}
	}
	return NewFilter(FilterConfig{
		Output:    args.Output,
		StartTime: args.startTime(),
		Oracle:    oracle,
		Ignore:    rules,
	}, logger)
}

// scan traverses root and hands every included candidate to include.
func scan(root string, filter *Filter, logger *zap.Logger, include func(*FileCandidate) error) (Summary, error) {
	summary := newSummary()
	err := Traverse(root, logger, func(c *FileCandidate) error {
		decision, err := filter.Decide(c)
		if err != nil {
			return err
		}
		summary.record(decision)
		if !decision.Included {
			return nil
		}
		return include(c)
	})
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return summary, fmt.Errorf("failed to collect files: %w", err)
	}
	return summary, nil
}
