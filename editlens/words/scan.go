package words

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Directories that never contain interesting vocabulary: VCS metadata,
// editor state and build output.
var skipDirs = map[string]bool{
	".git":         true,
	".idea":        true,
	".vscode":      true,
	"node_modules": true,
	"target":       true,
	"build":        true,
	"dist":         true,
	".gradle":      true,
	".mvn":         true,
}

var sourceExts = map[string]bool{
	".java": true, ".py": true, ".c": true, ".cpp": true, ".cs": true,
	".go": true, ".rs": true, ".php": true, ".rb": true,
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".vue": true,
	".html": true, ".htm": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	".xml": true, ".json": true, ".yaml": true, ".yml": true, ".properties": true, ".toml": true, ".ini": true,
	".md": true, ".txt": true, ".rst": true,
}

// Scan walks dir and accumulates word frequencies over every source and
// documentation file it recognizes. Files that cannot be read are logged
// and skipped.
func Scan(dir string) (*Stats, error) {
	stats := NewStats()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !sourceExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}
		stats.AddFile(string(b))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %v", dir, err)
	}
	return stats, nil
}
