package combine

import (
	"fmt"

	"go.uber.org/zap"
)

// FileContent is an included file ready to be framed.
type FileContent struct {
	Path    string // Relative file path
	Content string // Normalized content
}

// ProcessSingleFile reads an included candidate and normalizes its content.
func ProcessSingleFile(c *FileCandidate, logger *zap.Logger) (FileContent, error) {
	data, err := c.Content()
	if err != nil {
		return FileContent{}, fmt.Errorf("error reading file %s: %w", c.Path, err)
	}

	ext := Extension(c.RelPath)
	normalized := Normalize(ext, string(data))

	logger.Debug("Normalized file content",
		zap.String("path", c.RelPath),
		zap.String("class", ClassFor(ext).String()),
		zap.Int("sizeBytes", len(data)),
		zap.Int("normalizedBytes", len(normalized)))

	return FileContent{Path: c.RelPath, Content: normalized}, nil
}
