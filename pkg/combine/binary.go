// File: pkg/combine/binary.go
package combine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// SniffSize is the number of leading bytes inspected when classifying a file.
const SniffSize = 1024

// IsBinary reads at most SniffSize bytes from r and reports whether the prefix
// contains a null byte. Short and empty streams are text.
func IsBinary(r io.Reader) (bool, error) {
	buffer := make([]byte, SniffSize)
	n, err := io.ReadFull(r, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return bytes.IndexByte(buffer[:n], 0) >= 0, nil
}

// IsBinaryFile opens filePath and classifies its prefix with IsBinary.
// Open and read failures are returned, never reported as binary.
func IsBinaryFile(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	binary, err := IsBinary(file)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return binary, nil
}
