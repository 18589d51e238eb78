// File: pkg/combine/ignore.go
package combine

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// IgnoreParser defines the interface for matching paths against ignore patterns.
type IgnoreParser interface {
	MatchesPath(path string) bool
	MatchesPathWithPattern(path string) (bool, *IgnorePattern)
}

// IgnorePattern is one compiled glob together with the text it came from.
type IgnorePattern struct {
	Glob   glob.Glob // Compiled pattern.
	Line   string    // Original pattern text.
	LineNo int       // Position in the rule set (1-based).
	Source string    // "user" or "builtin".
}

// PatternError reports a glob that failed to compile.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q: %v", e.Pattern, e.Cause)
}

func (e *PatternError) Unwrap() error { return e.Cause }

// IgnoreRuleSet is an immutable, ordered set of compiled ignore globs.
type IgnoreRuleSet struct {
	patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewIgnoreRuleSet compiles the user patterns followed by DefaultIgnorePatterns.
// Globs are compiled without separators so '*' also spans '/'.
func NewIgnoreRuleSet(userPatterns []string, logger *zap.Logger) (*IgnoreRuleSet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rs := &IgnoreRuleSet{logger: logger}

	if err := rs.compile("user", userPatterns); err != nil {
		return nil, err
	}
	if err := rs.compile("builtin", DefaultIgnorePatterns); err != nil {
		return nil, err
	}

	logger.Debug("Compiled ignore patterns",
		zap.Int("userPatterns", len(userPatterns)),
		zap.Int("totalPatterns", len(rs.patterns)))
	return rs, nil
}

func (rs *IgnoreRuleSet) compile(source string, lines []string) error {
	for _, line := range lines {
		g, err := glob.Compile(line)
		if err != nil {
			return &PatternError{Pattern: line, Cause: err}
		}
		rs.patterns = append(rs.patterns, &IgnorePattern{
			Glob:   g,
			Line:   line,
			LineNo: len(rs.patterns) + 1,
			Source: source,
		})
	}
	return nil
}

// Len returns the number of compiled patterns.
func (rs *IgnoreRuleSet) Len() int {
	return len(rs.patterns)
}

// MatchesPath checks if the given path matches any of the ignore patterns.
func (rs *IgnoreRuleSet) MatchesPath(path string) bool {
	matched, _ := rs.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern returns the first pattern matching path, if any.
func (rs *IgnoreRuleSet) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	normalized := filepath.ToSlash(path)
	for _, pattern := range rs.patterns {
		if pattern.Glob.Match(normalized) {
			rs.logger.Debug("Path matches ignore pattern",
				zap.String("path", normalized),
				zap.String("pattern", pattern.Line),
				zap.String("source", pattern.Source))
			return true, pattern
		}
	}
	return false, nil
}
