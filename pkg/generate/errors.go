package generate

import "fmt"

// NonTemplatedDirError reports a template root candidate whose directory name
// carries no template markers. The check runs on the name string alone,
// before any output directory is created.
type NonTemplatedDirError struct {
	Dir string
}

func (e *NonTemplatedDirError) Error() string {
	return fmt.Sprintf("generate: input directory %q is not templated", e.Dir)
}

// FileSystemError wraps an underlying create, copy, or write failure with the
// path the operation was acting on.
type FileSystemError struct {
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("generate: filesystem operation on %s: %v", e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
