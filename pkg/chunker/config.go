// File: pkg/chunker/config.go
package chunker

// Default values for the export.
const (
	DefaultMaxChars  = 40000    // Maximum characters per chunk before a flush.
	DefaultOutputDir = "chunks" // Output directory, relative to the base directory.
)

// Config holds the compiled-in rules for one export run.
type Config struct {
	BaseDir   string // Root of the tree being scanned.
	OutputDir string // Destination directory for chunk files; relative paths resolve against BaseDir.
	MaxChars  int    // Character threshold that triggers a flush.

	includeFolders map[string]struct{} // Top-level folders included wholesale.
	includeFiles   map[string]struct{} // File base names included anywhere in the tree.
	excludeFolders map[string]struct{} // Folder names pruned at any depth.
}

// DefaultConfig returns the rules used by the CLI.
func DefaultConfig(baseDir string) Config {
	return NewConfig(baseDir,
		[]string{"src", "prisma"},
		[]string{"package.json", "next.config.js", "next.config.ts", "tailwind.config.js", "tsconfig.json"},
		[]string{"node_modules", ".next", ".vscode", "public"},
	)
}

// NewConfig builds a Config from explicit rule lists. The lists are copied,
// so later changes by the caller do not leak into the rules.
func NewConfig(baseDir string, includeFolders, includeFiles, excludeFolders []string) Config {
	return Config{
		BaseDir:        baseDir,
		OutputDir:      DefaultOutputDir,
		MaxChars:       DefaultMaxChars,
		includeFolders: toSet(includeFolders),
		includeFiles:   toSet(includeFiles),
		excludeFolders: toSet(excludeFolders),
	}
}

// IsExcludedFolder reports whether a folder name is pruned everywhere.
func (c Config) IsExcludedFolder(name string) bool {
	_, ok := c.excludeFolders[name]
	return ok
}

// IsIncludedFolder reports whether a top-level folder is included wholesale.
func (c Config) IsIncludedFolder(name string) bool {
	_, ok := c.includeFolders[name]
	return ok
}

// IsIncludedFile reports whether a base name is included wherever it appears.
func (c Config) IsIncludedFile(name string) bool {
	_, ok := c.includeFiles[name]
	return ok
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
