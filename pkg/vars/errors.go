package vars

import "fmt"

// LoadError reports a context source that is missing, unreadable, or does not
// parse under either supported encoding.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("vars: load context %s", e.Path)
	}
	return fmt.Sprintf("vars: load context %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
