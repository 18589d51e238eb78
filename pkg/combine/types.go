package combine

import (
	"os"
	"time"
)

// FileCandidate is a regular file found by traversal.
type FileCandidate struct {
	Path    string    // Absolute path on disk
	RelPath string    // Slash-separated path relative to the repository root
	ModTime time.Time // Last modification time

	content []byte
	loaded  bool
}

// Content reads the file on first use and caches the bytes.
func (c *FileCandidate) Content() ([]byte, error) {
	if c.loaded {
		return c.content, nil
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}
	c.content = data
	c.loaded = true
	return data, nil
}

// Decision is the outcome of running a candidate through the filter.
type Decision struct {
	Included bool
	Gate     string // Name of the gate that excluded the file; empty when included
}

// Summary counts what a run did with the files it saw.
type Summary struct {
	Scanned  int
	Included int
	Excluded map[string]int // keyed by gate name
}

func newSummary() Summary {
	return Summary{Excluded: make(map[string]int)}
}

func (s *Summary) record(d Decision) {
	s.Scanned++
	if d.Included {
		s.Included++
		return
	}
	s.Excluded[d.Gate]++
}
