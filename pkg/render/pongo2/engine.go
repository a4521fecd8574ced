// Package pongo2 adapts the flosch/pongo2 template engine to the
// render.Engine contract. pongo2 implements the Django/Jinja expression
// syntax, which is the dialect template authors write in names and file
// contents alike. Parse and execution failures are converted into
// *render.Error values carrying the source location pongo2 reports.
package pongo2

import (
	"errors"
	"fmt"
	"sync"

	p2 "github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-scaffold/pkg/render"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir string
	globals map[string]any
}

// WithBaseDir points file-based rendering at a template root on disk.
// Engines built without a base dir only support RenderString.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = dir
	}
}

// WithGlobals seeds values available to every render in addition to the
// per-call data.
func WithGlobals(globals map[string]any) Option {
	return func(cfg *config) {
		if len(globals) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			cfg.globals[key] = value
		}
	}
}

// Engine satisfies render.Engine using a pongo2 template set.
type Engine struct {
	mu  sync.Mutex
	set *p2.TemplateSet
}

var _ render.Engine = (*Engine)(nil)

// New constructs an Engine from the provided options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []p2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := p2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo2: create loader for %s: %w", cfg.baseDir, err)
		}
		loaders = append(loaders, loader)
	} else {
		loaders = append(loaders, p2.MustNewLocalFileSystemLoader(""))
	}

	set := p2.NewSet("scaffold", loaders...)
	if len(cfg.globals) > 0 {
		set.Globals = p2.Context(cfg.globals)
	}
	return &Engine{set: set}, nil
}

// RenderString parses and renders an inline template expression.
func (e *Engine) RenderString(tpl string, data map[string]any) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	parsed, err := e.set.FromString(tpl)
	if err != nil {
		return "", asRenderError("", err)
	}
	out, err := parsed.Execute(p2.Context(data))
	if err != nil {
		return "", asRenderError("", err)
	}
	return out, nil
}

// RenderFile loads name from the engine's base dir and renders it. The
// returned error carries the template name plus the line and column of the
// offending expression when the failure is a template error.
func (e *Engine) RenderFile(name string, data map[string]any) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	parsed, err := e.set.FromFile(name)
	if err != nil {
		return "", asRenderError(name, err)
	}
	out, err := parsed.Execute(p2.Context(data))
	if err != nil {
		return "", asRenderError(name, err)
	}
	return out, nil
}

// asRenderError unwraps pongo2's rich error type into a render.Error,
// preferring the filename pongo2 recorded over the caller-supplied name.
func asRenderError(name string, err error) error {
	var p2err *p2.Error
	if errors.As(err, &p2err) {
		template := p2err.Filename
		if template == "" || template == "<string>" {
			template = name
		}
		cause := p2err.OrigError
		if cause == nil {
			cause = err
		}
		return &render.Error{
			Template: template,
			Line:     p2err.Line,
			Column:   p2err.Column,
			Err:      cause,
		}
	}
	return &render.Error{Template: name, Err: err}
}
