package generate

import (
	"path/filepath"

	"github.com/goliatone/go-scaffold/internal/fsutil"
	"github.com/goliatone/go-scaffold/internal/logging"
	"github.com/goliatone/go-scaffold/pkg/render"
)

// RenderAndCreateDir renders a templated directory name against data, creates
// the directory (and missing ancestors) under outputDir, and returns its
// path. Creation is idempotent: an existing directory at the rendered path is
// not an error.
func RenderAndCreateDir(dirName string, data map[string]any, outputDir string, engine render.Engine) (string, error) {
	log := logging.GetLogger("generate")

	rendered, err := engine.RenderString(dirName, data)
	if err != nil {
		return "", err
	}

	dirToCreate := filepath.Clean(filepath.Join(outputDir, rendered))
	log.Debug().Str("dir", dirToCreate).Msg("creating directory")

	if err := fsutil.EnsureDir(dirToCreate); err != nil {
		return "", &FileSystemError{Path: dirToCreate, Err: err}
	}
	return dirToCreate, nil
}
