// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Traverse walks root in lexical order and calls fn for every regular file.
// Directories, symlinks and special files are skipped. A directory that
// cannot be read aborts the walk, as does any error returned by fn.
func Traverse(root string, logger *zap.Logger, fn func(*FileCandidate) error) error {
	logger.Debug("Starting file traversal", zap.String("root", root))

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		return fn(&FileCandidate{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			ModTime: info.ModTime(),
		})
	})
}
