package gitrepo

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitDirName = ".git"

// GitignoreReadError is returned when ignore rules cannot be loaded.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read ignore rules for %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// PathEncodingError is returned for paths the ignore engine cannot evaluate.
type PathEncodingError struct {
	Path string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path %q is not valid UTF-8", e.Path)
}

// IgnoreOracle answers whether the repository ignores a path, using
// go-git's gitignore matcher.
type IgnoreOracle struct {
	matcher gitignore.Matcher
}

// NewIgnoreOracle builds an oracle from patterns ordered lowest precedence
// first.
func NewIgnoreOracle(patterns []gitignore.Pattern) *IgnoreOracle {
	return &IgnoreOracle{matcher: gitignore.NewMatcher(patterns)}
}

// IgnoreOracle loads system and global excludes, then .git/info/exclude and
// every .gitignore in the working tree.
func (r *Repository) IgnoreOracle() (*IgnoreOracle, error) {
	rootFS := osfs.New("/")

	system, err := gitignore.LoadSystemPatterns(rootFS)
	if err != nil {
		return nil, &GitignoreReadError{Path: "system gitconfig", Cause: err}
	}
	global, err := gitignore.LoadGlobalPatterns(rootFS)
	if err != nil {
		return nil, &GitignoreReadError{Path: "global gitconfig", Cause: err}
	}
	local, err := gitignore.ReadPatterns(r.fs, nil)
	if err != nil {
		return nil, &GitignoreReadError{Path: r.root, Cause: err}
	}

	patterns := make([]gitignore.Pattern, 0, len(system)+len(global)+len(local))
	patterns = append(patterns, system...)
	patterns = append(patterns, global...)
	patterns = append(patterns, local...)
	return NewIgnoreOracle(patterns), nil
}

// ShouldIgnore reports whether relativePath is ignored. Paths inside the
// .git directory are always ignored, as is anything below an ignored
// directory regardless of later negations.
func (o *IgnoreOracle) ShouldIgnore(relativePath string) (bool, error) {
	if !utf8.ValidString(relativePath) {
		return false, &PathEncodingError{Path: relativePath}
	}

	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false, nil
	}
	if segments[0] == gitDirName {
		return true, nil
	}
	for i := 1; i < len(segments); i++ {
		if o.matcher.Match(segments[:i], true) {
			return true, nil
		}
	}
	return o.matcher.Match(segments, false), nil
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
