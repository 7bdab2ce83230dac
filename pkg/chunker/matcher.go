// File: pkg/chunker/matcher.go
package chunker

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// PathMatcher decides whether a path relative to the base directory is selected.
type PathMatcher interface {
	Match(relPath string) bool
}

// Matcher applies the static include and exclude rules of a Config.
type Matcher struct {
	cfg    Config
	logger *zap.Logger
}

// NewMatcher creates a Matcher for the given rules.
func NewMatcher(cfg Config, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{cfg: cfg, logger: logger}
}

// Match reports whether relPath should be exported. Any excluded segment
// rejects the path, even though the walker already prunes those folders.
func (m *Matcher) Match(relPath string) bool {
	parts := strings.Split(relPath, string(os.PathSeparator))

	for _, part := range parts {
		if m.cfg.IsExcludedFolder(part) {
			m.logger.Debug("Path contains excluded folder", zap.String("path", relPath), zap.String("folder", part))
			return false
		}
	}

	if m.cfg.IsIncludedFile(filepath.Base(relPath)) {
		return true
	}

	return m.cfg.IsIncludedFolder(parts[0])
}
