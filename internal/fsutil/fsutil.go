// Package fsutil collects the small filesystem primitives the generation
// pipeline relies on: idempotent directory creation, scoped working-directory
// changes, permission propagation, and binary content sniffing.
package fsutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// sniffLen bounds how much of a file is inspected when classifying content.
const sniffLen = 8 * 1024

// EnsureDir creates dir and any missing ancestors. An existing directory at
// that path is not an error.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("fsutil: directory path is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fsutil: create directory %s: %w", dir, err)
	}
	return nil
}

// WorkIn runs fn with the process working directory set to dir, restoring the
// previous working directory on every exit path. The restore error is only
// surfaced when fn itself succeeded.
func WorkIn(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("fsutil: resolve working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("fsutil: enter directory %s: %w", dir, err)
	}
	defer func() {
		if restoreErr := os.Chdir(prev); restoreErr != nil && err == nil {
			err = fmt.Errorf("fsutil: restore working directory %s: %w", prev, restoreErr)
		}
	}()
	return fn()
}

// CopyMode applies the permission bits of src onto dst.
func CopyMode(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("fsutil: stat %s: %w", src, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("fsutil: chmod %s: %w", dst, err)
	}
	return nil
}

// CopyFile copies src to dst byte for byte, creating or truncating dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fsutil: open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("fsutil: create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("fsutil: copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("fsutil: close %s: %w", dst, err)
	}
	return nil
}

// IsBinary reports whether the file at path holds binary content. The
// decision looks at the leading bytes only, never at the file name: a NUL
// byte or a dominant share of non-text bytes classifies the file as binary.
func IsBinary(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("fsutil: open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("fsutil: read %s: %w", path, err)
	}
	return SniffBinary(buf[:n]), nil
}

// SniffBinary classifies a content sample. Empty content is text.
func SniffBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return true
	}

	// Valid UTF-8 with a low share of control characters reads as text.
	nonText := 0
	for i := 0; i < len(sample); {
		r, size := utf8.DecodeRune(sample[i:])
		if r == utf8.RuneError && size == 1 {
			nonText++
			i++
			continue
		}
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' && r != '\f' {
			nonText++
		}
		i += size
	}
	return nonText*100 > len(sample)*30
}
