// File: pkg/chunker/writer.go
package chunker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrInvalidMaxChars is returned when the chunk threshold is not positive.
var ErrInvalidMaxChars = errors.New("max chars must be positive")

// WriteResult describes the chunk files produced by WriteChunks.
type WriteResult struct {
	Chunks  []string // Paths of written chunk files, in index order.
	Entries int      // Number of file entries written.
	Skipped error    // Combined errors for files that could not be read.
}

// ChunkFileName returns the file name for the chunk with the given 1-based index.
func ChunkFileName(index int) string {
	return fmt.Sprintf("chunk_%d.txt", index)
}

// WriteChunks reads each file in order and packs the entries greedily into
// numbered chunk files inside outputDir. The buffer is flushed before an
// entry that would push it past maxChars; an entry is never split, so a
// single entry larger than maxChars becomes a chunk of its own. Unreadable
// files are skipped and recorded in Skipped. Errors creating outputDir or
// writing a chunk abort the run.
func WriteChunks(files []string, baseDir, outputDir string, maxChars int, logger *zap.Logger) (WriteResult, error) {
	var result WriteResult
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxChars <= 0 {
		return result, fmt.Errorf("%w: %d", ErrInvalidMaxChars, maxChars)
	}

	if err := ensureDirectory(outputDir, logger); err != nil {
		return result, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		buffer      strings.Builder
		bufferChars int
		chunkIndex  = 1
	)

	flush := func() error {
		path := filepath.Join(outputDir, ChunkFileName(chunkIndex))
		if err := writeToFile(path, []byte(buffer.String()), 0644, logger); err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", chunkIndex, err)
		}
		logger.Debug("Wrote chunk",
			zap.Int("chunk", chunkIndex),
			zap.String("path", path),
			zap.Int("chars", bufferChars))
		result.Chunks = append(result.Chunks, path)
		buffer.Reset()
		bufferChars = 0
		chunkIndex++
		return nil
	}

	for _, file := range files {
		entry, err := ReadEntry(file, baseDir, logger)
		if err != nil {
			logger.Warn("Skipping unreadable file", zap.String("path", file), zap.Error(err))
			result.Skipped = multierr.Append(result.Skipped, err)
			continue
		}

		if buffer.Len() > 0 && bufferChars+entry.Chars > maxChars {
			if err := flush(); err != nil {
				return result, err
			}
		}

		if entry.Chars > maxChars {
			logger.Warn("Entry exceeds chunk size and is written whole",
				zap.String("path", entry.Path),
				zap.Int("chars", entry.Chars),
				zap.Int("maxChars", maxChars))
		}

		buffer.WriteString(entry.Text)
		bufferChars += entry.Chars
		result.Entries++
	}

	if strings.TrimSpace(buffer.String()) != "" {
		if err := flush(); err != nil {
			return result, err
		}
	}

	return result, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file, replacing any previous content.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
