// Package icon builds SVG icon documents and writes them to disk.
package icon

import (
	"errors"
	"fmt"
	"os"

	"github.com/robertgumeny/icongen/internal/log"
)

// DefaultSize is the width, height and viewBox extent used when an IconSpec
// leaves Size unset.
const DefaultSize = 24

// ErrInvalidSize is returned by Emit when size is not a positive integer.
var ErrInvalidSize = errors.New("icon size must be positive")

const documentFormat = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
%s
</svg>`

// IconSpec describes one icon of a run. Name is the output file stem and
// must be unique within a run; a duplicate silently overwrites the earlier file.
type IconSpec struct {
	Name   string
	Markup string
	Size   int
}

// size returns s.Size, or DefaultSize when it is zero.
func (s IconSpec) size() int {
	if s.Size == 0 {
		return DefaultSize
	}
	return s.Size
}

// Document returns the complete SVG document for s.
func (s IconSpec) Document() string {
	return Document(s.Markup, s.size())
}

// Emit writes s to path. See Emit.
func (s IconSpec) Emit(path string) error {
	return Emit(path, s.Markup, s.size())
}

// Document composes an SVG document: XML declaration, an <svg> root whose
// width, height and viewBox all use size, the markup verbatim, and the
// closing tag. There is no trailing newline.
func Document(markup string, size int) string {
	return fmt.Sprintf(documentFormat, size, size, size, size, markup)
}

// Emit writes the document for markup to path as UTF-8, truncating any
// existing file, and logs the created path. Filesystem errors are returned
// as-is (wrapped); nothing is retried or cleaned up.
func Emit(path, markup string, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := os.WriteFile(path, []byte(Document(markup, size)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Success(fmt.Sprintf("created icon: %s", path))
	return nil
}
