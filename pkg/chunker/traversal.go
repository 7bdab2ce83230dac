// File: pkg/chunker/traversal.go
package chunker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CollectedFiles is the outcome of a directory walk.
type CollectedFiles struct {
	Files   []string // Absolute paths of selected files, in traversal order.
	Skipped error    // Combined errors for directories that could not be read.
}

// CollectFiles walks baseDir depth-first in lexical order and returns the
// absolute paths accepted by m. Excluded folders are pruned before descent,
// so nothing beneath them is listed or matched. Unreadable directories are
// logged and recorded in Skipped; only a failure to access baseDir itself
// is returned as an error.
func CollectFiles(baseDir string, cfg Config, m PathMatcher, logger *zap.Logger) (CollectedFiles, error) {
	var collected CollectedFiles
	if logger == nil {
		logger = zap.NewNop()
	}

	absBase, err := ResolveBaseDir(baseDir)
	if err != nil {
		return collected, err
	}
	logger.Debug("Starting file collection", zap.String("baseDir", absBase))

	err = filepath.WalkDir(absBase, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil && path == absBase {
				return fmt.Errorf("failed to access base directory %s: %w", absBase, err)
			}
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			collected.Skipped = multierr.Append(collected.Skipped, fmt.Errorf("read %s: %w", path, err))
			return nil
		}

		if path == absBase {
			return nil
		}

		if d.IsDir() {
			if cfg.IsExcludedFolder(d.Name()) {
				logger.Debug("Pruning excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				logger.Debug("Not following symlinked directory", zap.String("path", path))
				return nil
			}
		}

		relPath, relErr := filepath.Rel(absBase, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			collected.Skipped = multierr.Append(collected.Skipped, fmt.Errorf("relative path for %s: %w", path, relErr))
			return nil
		}

		if m.Match(relPath) {
			collected.Files = append(collected.Files, path)
			logger.Debug("Selected file", zap.String("path", relPath))
		}
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return collected, err
	}

	logger.Debug("Completed file collection",
		zap.Int("selectedFiles", len(collected.Files)),
		zap.Int("skippedPaths", len(multierr.Errors(collected.Skipped))))
	return collected, nil
}

// ResolveBaseDir returns the absolute, symlink-free form of baseDir.
// WalkDir does not descend into a root that is itself a symlink.
func ResolveBaseDir(baseDir string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory %s: %w", baseDir, err)
	}
	resolved, err := filepath.EvalSymlinks(absBase)
	if err != nil {
		return "", fmt.Errorf("failed to access base directory %s: %w", absBase, err)
	}
	return resolved, nil
}
