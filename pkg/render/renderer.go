// Package render defines the narrow contract the generation pipeline uses to
// evaluate template expressions. The engine is deliberately opaque: callers
// hand over a template string (or a file name relative to the engine's root)
// plus a variable mapping and get text back. Implementations live in
// subpackages so the engine is swappable without touching the generator.
package render

import "strings"

// Engine evaluates template expressions against a variable mapping.
type Engine interface {
	// RenderString renders an inline template expression, such as a file or
	// directory name.
	RenderString(tpl string, data map[string]any) (string, error)

	// RenderFile loads the named template from the engine's configured root
	// and renders it. Names use forward slashes regardless of platform.
	RenderFile(name string, data map[string]any) (string, error)
}

// Marker delimiters shared by name templating and content templating. A
// string containing both the open and close marker is considered templated.
const (
	MarkerOpen  = "{{"
	MarkerClose = "}}"
)

// IsTemplated reports whether s contains a template expression marker pair.
func IsTemplated(s string) bool {
	return strings.Contains(s, MarkerOpen) && strings.Contains(s, MarkerClose)
}
