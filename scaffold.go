// Package scaffold generates project directory trees from template
// repositories. A repository holds a single templated directory (its name
// carries {{variable}} markers) plus optional pre/post generation hooks; the
// engine renders directory names, file names, and text file contents against
// an ordered variable context, copies binary files verbatim, and preserves
// permissions.
//
// The root package re-exports the main entry points; the heavy lifting lives
// under pkg/generate, pkg/vars, pkg/render, and pkg/hooks.
package scaffold

import (
	"github.com/goliatone/go-scaffold/pkg/generate"
	"github.com/goliatone/go-scaffold/pkg/vars"
)

// Context is the ordered variable mapping consumed by every render call.
type Context = vars.Context

// Generate renders the template repository at repoDir into outputDir and
// returns the absolute path of the generated project directory. See
// generate.Generator for the configurable form.
func Generate(repoDir string, ctx *Context, outputDir string) (string, error) {
	return generate.Generate(repoDir, ctx, outputDir)
}

// ResolveContext loads the variable context from contextFile (or the
// conventional defaults when empty) and applies overlay as a shallow per-key
// overwrite. Usable on its own to preview a context before generating.
func ResolveContext(contextFile string, overlay *Context) (*Context, error) {
	return vars.Resolve(contextFile, overlay)
}
