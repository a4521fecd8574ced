// Package generate walks a template repository and materializes a concrete
// project tree from it. The pipeline is strictly sequential: locate the
// template root, render and create the project directory, run the pre-gen
// hook, walk the tree creating directories before the files they contain,
// then run the post-gen hook. Any failure aborts the remaining steps;
// already-written output is left in place for the caller to clean up.
package generate

import (
	"io/fs"
	"path/filepath"

	"github.com/goliatone/go-scaffold/internal/fsutil"
	"github.com/goliatone/go-scaffold/internal/logging"
	"github.com/goliatone/go-scaffold/pkg/hooks"
	"github.com/goliatone/go-scaffold/pkg/render"
	renderpongo2 "github.com/goliatone/go-scaffold/pkg/render/pongo2"
	"github.com/goliatone/go-scaffold/pkg/vars"
)

// EngineFactory builds a render engine rooted at baseDir. The generator
// instantiates one engine per run once the template root is known.
type EngineFactory func(baseDir string) (render.Engine, error)

// Option customises a Generator.
type Option func(*Generator)

// WithEngineFactory swaps the render engine implementation. The default
// builds a pongo2-backed engine.
func WithEngineFactory(factory EngineFactory) Option {
	return func(g *Generator) {
		if factory != nil {
			g.engineFactory = factory
		}
	}
}

// WithHookRunner swaps the hook execution function, mainly for tests. The
// default is hooks.Run.
func WithHookRunner(run func(hookName, projectDir string) error) Option {
	return func(g *Generator) {
		if run != nil {
			g.runHook = run
		}
	}
}

// Generator drives the template-to-project pipeline.
type Generator struct {
	engineFactory EngineFactory
	runHook       func(hookName, projectDir string) error
}

// New constructs a Generator, applying defaults for anything the options do
// not override.
func New(options ...Option) *Generator {
	g := &Generator{
		engineFactory: func(baseDir string) (render.Engine, error) {
			return renderpongo2.New(renderpongo2.WithBaseDir(baseDir))
		},
		runHook: hooks.Run,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Generate renders the template repository at repoDir into outputDir and
// returns the absolute path of the generated project directory. ctx may be
// nil for templates that reference no variables; outputDir defaults to the
// current directory when empty.
func (g *Generator) Generate(repoDir string, ctx *vars.Context, outputDir string) (string, error) {
	log := logging.GetLogger("generate")

	if outputDir == "" {
		outputDir = "."
	}

	templateDir, err := FindTemplate(repoDir)
	if err != nil {
		return "", err
	}
	log.Debug().Str("template_dir", templateDir).Msg("generating project")

	unrendered := filepath.Base(templateDir)
	if err := EnsureDirIsTemplated(unrendered); err != nil {
		return "", err
	}

	data := ctx.Map()

	nameEngine, err := g.engineFactory(".")
	if err != nil {
		return "", err
	}
	projectDir, err := RenderAndCreateDir(unrendered, data, outputDir, nameEngine)
	if err != nil {
		return "", err
	}

	// All subsequent joins use the absolute form so the scoped directory
	// changes below cannot introduce relative-path ambiguity.
	projectDir, err = filepath.Abs(projectDir)
	if err != nil {
		return "", &FileSystemError{Path: projectDir, Err: err}
	}
	log.Debug().Str("project_dir", projectDir).Msg("project directory created")

	// The pre-gen hook runs before any file is written, so a failing setup
	// check leaves nothing behind but the empty project root.
	if err := fsutil.WorkIn(repoDir, func() error {
		return g.runHook(hooks.PreGenProject, projectDir)
	}); err != nil {
		return "", err
	}

	if err := fsutil.WorkIn(templateDir, func() error {
		return g.walk(projectDir, data)
	}); err != nil {
		return "", err
	}

	if err := fsutil.WorkIn(repoDir, func() error {
		return g.runHook(hooks.PostGenProject, projectDir)
	}); err != nil {
		return "", err
	}

	return projectDir, nil
}

// walk traverses the template tree rooted at the current working directory.
// Traversal is depth-first in lexicographic order, which guarantees every
// directory is rendered and created before the files inside it.
func (g *Generator) walk(projectDir string, data map[string]any) error {
	engine, err := g.engineFactory(".")
	if err != nil {
		return err
	}

	return filepath.WalkDir(".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &FileSystemError{Path: path, Err: walkErr}
		}
		if path == "." {
			return nil
		}
		if entry.IsDir() {
			_, err := RenderAndCreateDir(filepath.ToSlash(path), data, projectDir, engine)
			return err
		}
		_, err := GenerateFile(projectDir, path, data, engine)
		return err
	})
}

// Generate runs a default Generator. See Generator.Generate.
func Generate(repoDir string, ctx *vars.Context, outputDir string) (string, error) {
	return New().Generate(repoDir, ctx, outputDir)
}
