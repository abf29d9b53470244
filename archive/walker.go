// Package archive reads stylesheet template bundles packed with zip.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is called for every file in bundle which name ends with requested
// suffix. Returning an error stops the walk.
type WalkFunc func(bundle string, file *zip.File) error

// Walk visits files of the bundle in archive order. Bundles with absolute
// entry names or ".." components are rejected as a whole.
func Walk(bundle, suffix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(bundle)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, suffix) {
			continue
		}
		if err := walkFn(bundle, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns content of the bundle entry.
func ReadFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
