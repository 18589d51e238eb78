// File: pkg/combine/writer.go
package combine

import (
	"bufio"
	"fmt"
	"io"
)

// Output markers. Consumers locate frames by literal substring match.
const (
	MarkerDelim = "@@@@"
	EndMarker   = MarkerDelim + "END" + MarkerDelim
)

// DefaultPreamble describes the output format to the reader.
const DefaultPreamble = "Below is a repository containing files. Each file begins with @@@@<file-path>@@@@ followed by its content. The repository ends with @@@@END@@@@. After this marker, instructions related to the repository are provided."

// Writer serializes the preamble, one frame per file and the end marker.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps out in a buffered writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(out)}
}

// WritePreamble writes text verbatim followed by a newline.
func (w *Writer) WritePreamble(text string) error {
	if _, err := w.w.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("failed to write preamble: %w", err)
	}
	return nil
}

// WriteFrame writes the begin marker for relPath, the content and a
// separating newline.
func (w *Writer) WriteFrame(relPath, content string) error {
	if _, err := fmt.Fprintf(w.w, "%s%s%s\n%s\n", MarkerDelim, relPath, MarkerDelim, content); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", relPath, err)
	}
	return nil
}

// WriteEnd writes the terminal marker line.
func (w *Writer) WriteEnd() error {
	if _, err := w.w.WriteString(EndMarker + "\n"); err != nil {
		return fmt.Errorf("failed to write end marker: %w", err)
	}
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
