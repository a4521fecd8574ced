package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/pkg/render"
)

// FindTemplate returns the path of the immediate child directory of repoDir
// that serves as the template root. The first child whose name carries
// template markers wins; when no child is templated the sole child directory
// is returned as the candidate so the caller's name validation can reject it
// with a precise error.
func FindTemplate(repoDir string) (string, error) {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return "", &FileSystemError{Path: repoDir, Err: err}
	}

	var fallback string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if render.IsTemplated(name) {
			return filepath.Join(repoDir, name), nil
		}
		if fallback == "" {
			fallback = name
		}
	}

	if fallback == "" {
		return "", fmt.Errorf("generate: no template directory found under %s", repoDir)
	}
	return filepath.Join(repoDir, fallback), nil
}

// EnsureDirIsTemplated validates that dirname carries template markers,
// returning a *NonTemplatedDirError otherwise.
func EnsureDirIsTemplated(dirname string) error {
	if render.IsTemplated(dirname) {
		return nil
	}
	return &NonTemplatedDirError{Dir: dirname}
}
