// Package chunker selects a whitelisted subset of a project tree and packs
// the file contents into size-bounded text chunks.
package chunker

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Summary reports the outcome of a Run.
type Summary struct {
	BaseDir   string        // Absolute base directory that was scanned.
	OutputDir string        // Absolute directory the chunks were written to.
	Selected  int           // Files accepted by the matcher.
	Entries   int           // Files actually written into chunks.
	Chunks    []string      // Chunk file paths in index order.
	Skipped   error         // Every directory or file that was skipped, combined.
	Elapsed   time.Duration // Wall time of the run.
}

// SkippedCount returns how many paths were skipped during the run.
func (s Summary) SkippedCount() int {
	return len(multierr.Errors(s.Skipped))
}

// Run walks cfg.BaseDir, selects files with the configured rules and writes
// them into chunk files under cfg.OutputDir.
func Run(cfg Config, logger *zap.Logger) (Summary, error) {
	var summary Summary
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	baseDir, err := ResolveBaseDir(cfg.BaseDir)
	if err != nil {
		return summary, err
	}
	summary.BaseDir = baseDir
	summary.OutputDir = resolveOutputDir(baseDir, cfg.OutputDir)
	logger.Debug("Starting export",
		zap.String("baseDir", summary.BaseDir),
		zap.String("outputDir", summary.OutputDir),
		zap.Int("maxChars", cfg.MaxChars))

	collected, err := CollectFiles(baseDir, cfg, NewMatcher(cfg, logger), logger)
	if err != nil {
		return summary, fmt.Errorf("failed to collect files: %w", err)
	}
	summary.Selected = len(collected.Files)
	summary.Skipped = collected.Skipped

	written, err := WriteChunks(collected.Files, baseDir, summary.OutputDir, cfg.MaxChars, logger)
	summary.Chunks = written.Chunks
	summary.Entries = written.Entries
	summary.Skipped = multierr.Append(summary.Skipped, written.Skipped)
	if err != nil {
		return summary, fmt.Errorf("failed to write chunks: %w", err)
	}

	summary.Elapsed = time.Since(startTime)
	logger.Info("Export completed",
		zap.Int("selectedFiles", summary.Selected),
		zap.Int("chunks", len(summary.Chunks)),
		zap.Int("skipped", summary.SkippedCount()),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func resolveOutputDir(baseDir, outputDir string) string {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if filepath.IsAbs(outputDir) {
		return filepath.Clean(outputDir)
	}
	return filepath.Join(baseDir, outputDir)
}
