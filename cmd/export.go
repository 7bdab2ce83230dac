package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"chunkexport/pkg/chunker"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// executablePath is replaced in tests.
var executablePath = os.Executable

// runExport exports the tree rooted at the binary's directory with the default rules.
func runExport(out io.Writer, logger *zap.Logger) error {
	baseDir, err := executableDir()
	if err != nil {
		return err
	}

	summary, err := chunker.Run(chunker.DefaultConfig(baseDir), logger)
	if err != nil {
		logger.Error("Export failed", zap.String("baseDir", baseDir), zap.Error(err))
		return err
	}

	printCompletion(out, summary)
	return nil
}

// executableDir returns the directory holding the running binary, with symlinks resolved.
func executableDir() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func printCompletion(out io.Writer, s chunker.Summary) {
	success := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgYellow)
	if isTerminal(out) {
		success.EnableColor()
		warn.EnableColor()
	} else {
		success.DisableColor()
		warn.DisableColor()
	}

	if len(s.Chunks) == 0 {
		warn.Fprintf(out, "Done! No matching files under %s, no chunks written.\n", s.BaseDir)
	} else {
		success.Fprintf(out, "Done! Wrote %d chunk(s) from %d file(s) to %s\n", len(s.Chunks), s.Entries, s.OutputDir)
	}

	if n := s.SkippedCount(); n > 0 {
		warn.Fprintf(out, "Skipped %d unreadable path(s), see the log for details.\n", n)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
