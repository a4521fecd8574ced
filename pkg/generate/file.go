package generate

import (
	"os"
	"path/filepath"

	"github.com/goliatone/go-scaffold/internal/fsutil"
	"github.com/goliatone/go-scaffold/internal/logging"
	"github.com/goliatone/go-scaffold/pkg/render"
)

// GenerateFile materializes one template file into the project directory.
// infile is the file's path relative to the template root, which must be the
// current working directory when this is called.
//
// The file's relative path (name included) is rendered against data to pick
// the output path under projectDir. Content handling depends on what the
// file holds, never on its name: binary content is copied byte for byte,
// text content is rendered through the engine. Either way the template
// file's permission bits are applied to the output.
func GenerateFile(projectDir, infile string, data map[string]any, engine render.Engine) (string, error) {
	log := logging.GetLogger("generate")
	log.Debug().Str("infile", infile).Msg("generating file")

	outRel, err := engine.RenderString(filepath.ToSlash(infile), data)
	if err != nil {
		return "", err
	}
	outfile := filepath.Join(projectDir, filepath.FromSlash(outRel))

	binary, err := fsutil.IsBinary(infile)
	if err != nil {
		return "", &FileSystemError{Path: infile, Err: err}
	}

	if binary {
		log.Debug().Str("infile", infile).Str("outfile", outfile).Msg("copying binary without rendering")
		if err := fsutil.CopyFile(infile, outfile); err != nil {
			return "", &FileSystemError{Path: outfile, Err: err}
		}
	} else {
		// Template names always use forward slashes; the engine's loader
		// resolves them against the template root.
		rendered, err := engine.RenderFile(filepath.ToSlash(infile), data)
		if err != nil {
			return "", err
		}
		log.Debug().Str("outfile", outfile).Msg("writing rendered file")
		if err := os.WriteFile(outfile, []byte(rendered), 0o644); err != nil {
			return "", &FileSystemError{Path: outfile, Err: err}
		}
	}

	if err := fsutil.CopyMode(infile, outfile); err != nil {
		return "", &FileSystemError{Path: outfile, Err: err}
	}
	return outfile, nil
}
