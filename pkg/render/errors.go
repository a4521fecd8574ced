package render

import "fmt"

// Error reports a template that failed to parse or evaluate. Template and
// the position fields are populated when the underlying engine can attribute
// the failure to a location, which it always can for file-based renders.
type Error struct {
	// Template is the file name for file-based renders, empty for inline
	// expressions.
	Template string
	Line     int
	Column   int
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Template != "" && e.Line > 0:
		return fmt.Sprintf("render: template %s:%d:%d: %v", e.Template, e.Line, e.Column, e.Err)
	case e.Template != "":
		return fmt.Sprintf("render: template %s: %v", e.Template, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("render: line %d:%d: %v", e.Line, e.Column, e.Err)
	default:
		return fmt.Sprintf("render: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
