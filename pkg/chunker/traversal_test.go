package chunker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// recordingMatcher wraps a PathMatcher and remembers every path it was asked about.
type recordingMatcher struct {
	inner PathMatcher
	seen  []string
}

func (r *recordingMatcher) Match(relPath string) bool {
	r.seen = append(r.seen, relPath)
	return r.inner.Match(relPath)
}

func TestCollectFilesSelectsAndPrunes(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"src/b.ts":               "b",
		"src/a.ts":               "a",
		"src/.next/gen.js":       "generated",
		"package.json":           "{}",
		"node_modules/x.js":      "x",
		"docs/readme.md":         "docs",
		"prisma/schema.prisma":   "model",
		"apps/web/tsconfig.json": "{}",
	})
	cfg := DefaultConfig(root)

	collected, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NoError(t, collected.Skipped)

	want := []string{
		filepath.Join(root, rel("apps/web/tsconfig.json")),
		filepath.Join(root, "package.json"),
		filepath.Join(root, rel("prisma/schema.prisma")),
		filepath.Join(root, rel("src/a.ts")),
		filepath.Join(root, rel("src/b.ts")),
	}
	assert.Equal(t, want, collected.Files)
}

func TestCollectFilesNeverVisitsPrunedFolders(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"src/index.ts":                      "i",
		"src/public/logo.svg":               "<svg/>",
		"node_modules/pkg/package.json":     "{}",
		"deep/nested/.vscode/settings.json": "{}",
		"deep/nested/keep.txt":              "k",
	})
	cfg := DefaultConfig(root)
	rec := &recordingMatcher{inner: NewMatcher(cfg, nil)}

	collected, err := CollectFiles(root, cfg, rec, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, rel("src/index.ts"))}, collected.Files)
	assert.ElementsMatch(t, []string{rel("deep/nested/keep.txt"), rel("src/index.ts")}, rec.seen)
	for _, p := range rec.seen {
		for _, excluded := range []string{"node_modules", "public", ".vscode"} {
			assert.NotContains(t, strings.Split(p, string(os.PathSeparator)), excluded)
		}
	}
}

func TestCollectFilesIsDeterministic(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"src/z.ts":     "z",
		"src/m/n.ts":   "n",
		"src/a.ts":     "a",
		"package.json": "{}",
	})
	cfg := DefaultConfig(root)

	first, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)
	second, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
	assert.Len(t, first.Files, 4)
}

func TestCollectFilesEmptyDirectory(t *testing.T) {
	root := tempDir(t)
	cfg := DefaultConfig(root)

	collected, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)
	assert.Empty(t, collected.Files)
}

func TestCollectFilesMissingBaseDir(t *testing.T) {
	root := filepath.Join(tempDir(t), "missing")
	cfg := DefaultConfig(root)

	_, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	assert.Error(t, err)
}

func TestCollectFilesDoesNotFollowSymlinkedDirectories(t *testing.T) {
	root := tempDir(t)
	other := tempDir(t)
	writeTree(t, root, map[string]string{"src/a.ts": "a"})
	writeTree(t, other, map[string]string{"outside.ts": "o"})

	if err := os.Symlink(other, filepath.Join(root, "src", "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "src", "a.ts"), filepath.Join(root, "src", "b.ts")))

	cfg := DefaultConfig(root)
	collected, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, rel("src/a.ts")),
		filepath.Join(root, rel("src/b.ts")),
	}, collected.Files)
}

func TestCollectFilesSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := tempDir(t)
	writeTree(t, root, map[string]string{
		"src/a.ts":        "a",
		"src/locked/b.ts": "b",
		"src/later/c.ts":  "c",
	})
	locked := filepath.Join(root, "src", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	cfg := DefaultConfig(root)
	collected, err := CollectFiles(root, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, rel("src/a.ts")),
		filepath.Join(root, rel("src/later/c.ts")),
	}, collected.Files)
	assert.Error(t, collected.Skipped)
	assert.Contains(t, collected.Skipped.Error(), locked)
}

func TestCollectFilesFollowsSymlinkedBaseDir(t *testing.T) {
	root := tempDir(t)
	writeTree(t, root, map[string]string{"src/a.ts": "a"})
	link := filepath.Join(tempDir(t), "project")
	if err := os.Symlink(root, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	cfg := DefaultConfig(link)
	collected, err := CollectFiles(link, cfg, NewMatcher(cfg, nil), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, rel("src/a.ts"))}, collected.Files)
}
