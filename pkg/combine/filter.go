// File: pkg/combine/filter.go
package combine

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Gate names, in evaluation order.
const (
	GateOutput    = "output"
	GateModified  = "modified"
	GateGitignore = "gitignore"
	GateGlob      = "glob"
	GateBinary    = "binary"
)

// IgnoreOracle answers whether the repository's own ignore rules exclude a
// slash-separated path relative to the repository root.
type IgnoreOracle interface {
	ShouldIgnore(relPath string) (bool, error)
}

// Gate is one exclusion predicate. Exclude returns true to drop the file.
type Gate struct {
	Name    string
	Exclude func(c *FileCandidate) (bool, error)
}

// FilterConfig holds what the gates need to decide.
type FilterConfig struct {
	Output    string // Output destination; skipped if it lives inside the tree
	StartTime time.Time
	Oracle    IgnoreOracle
	Ignore    IgnoreParser
	IsBinary  func(path string) (bool, error) // defaults to IsBinaryFile
}

// Filter runs candidates through an ordered list of gates, stopping at the
// first exclusion.
type Filter struct {
	gates  []Gate
	logger *zap.Logger
}

// NewFilter builds the standard gate chain.
func NewFilter(cfg FilterConfig, logger *zap.Logger) (*Filter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Oracle == nil {
		return nil, fmt.Errorf("filter requires a repository ignore oracle")
	}
	if cfg.Ignore == nil {
		return nil, fmt.Errorf("filter requires an ignore rule set")
	}
	isBinary := cfg.IsBinary
	if isBinary == nil {
		isBinary = IsBinaryFile
	}

	var output string
	if cfg.Output != "" {
		abs, err := filepath.Abs(cfg.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output path %s: %w", cfg.Output, err)
		}
		output = abs
	}
	start := cfg.StartTime

	gates := []Gate{
		{Name: GateOutput, Exclude: func(c *FileCandidate) (bool, error) {
			return output != "" && filepath.Clean(c.Path) == output, nil
		}},
		{Name: GateModified, Exclude: func(c *FileCandidate) (bool, error) {
			return !c.ModTime.Before(start), nil
		}},
		{Name: GateGitignore, Exclude: func(c *FileCandidate) (bool, error) {
			return cfg.Oracle.ShouldIgnore(c.RelPath)
		}},
		{Name: GateGlob, Exclude: func(c *FileCandidate) (bool, error) {
			return cfg.Ignore.MatchesPath(c.RelPath), nil
		}},
		{Name: GateBinary, Exclude: func(c *FileCandidate) (bool, error) {
			return isBinary(c.Path)
		}},
	}

	return &Filter{gates: gates, logger: logger}, nil
}

// Gates returns the gate chain in evaluation order.
func (f *Filter) Gates() []Gate {
	return f.gates
}

// Decide evaluates the gates in order. A gate error aborts the decision and
// is returned wrapped with the candidate's relative path.
func (f *Filter) Decide(c *FileCandidate) (Decision, error) {
	for _, gate := range f.gates {
		excluded, err := gate.Exclude(c)
		if err != nil {
			return Decision{}, fmt.Errorf("%s check failed for %s: %w", gate.Name, c.RelPath, err)
		}
		if excluded {
			f.logger.Debug("Skipping file", zap.String("path", c.RelPath), zap.String("gate", gate.Name))
			return Decision{Gate: gate.Name}, nil
		}
	}
	f.logger.Debug("Including file", zap.String("path", c.RelPath))
	return Decision{Included: true}, nil
}
