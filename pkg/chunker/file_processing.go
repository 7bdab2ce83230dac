// File: pkg/chunker/file_processing.go
package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Entry is the header-plus-content block for one source file.
type Entry struct {
	Path  string // Path relative to the base directory.
	Text  string // Full entry text as written into a chunk.
	Chars int    // Length of Text in characters.
}

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FormatEntry builds the entry text for a file. Entries carry their own
// leading blank lines, so chunks are plain concatenations of entries.
func FormatEntry(relPath, content string) string {
	return fmt.Sprintf("\n\n===== FILE: %s =====\n\n%s\n", relPath, content)
}

// ReadEntry reads filePath as text and formats it as an Entry labelled with
// its path relative to baseDir. Bytes that are not valid UTF-8 are replaced
// with U+FFFD and line endings are normalized to "\n". A read failure is
// returned so the caller can skip the file; no partial entry is produced.
func ReadEntry(filePath, baseDir string, logger *zap.Logger) (Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	relativePath, relErr := filepath.Rel(baseDir, filePath)
	if relErr != nil {
		logger.Warn("Unable to determine relative path, using absolute path",
			zap.String("filePath", filePath),
			zap.String("baseDir", baseDir),
			zap.Error(relErr))
		relativePath = filePath
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return Entry{}, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	text := FormatEntry(relativePath, decodeText(fileBytes))
	logger.Debug("Read file entry",
		zap.String("filePath", relativePath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return Entry{
		Path:  relativePath,
		Text:  text,
		Chars: utf8.RuneCountInString(text),
	}, nil
}

// decodeText converts raw file bytes into normalized text. The UTF-8
// decoder substitutes U+FFFD for ill-formed input and never fails on it.
func decodeText(b []byte) string {
	decoded, _, _ := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	return newlineNormalizer.Replace(string(decoded))
}
