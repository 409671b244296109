// Package templates holds the shape-markup fragments used to build icons.
// All fragments are compiled into the binary at build time via //go:embed.
//
// Each file under shapes/ is named after the icon it draws (shapes/play.svg
// for the play icon) and contains only the elements that go inside the
// <svg> root. Fragments are trusted and inserted verbatim.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Shapes holds the embedded shape fragments.
//
//go:embed shapes
var Shapes embed.FS

const shapeDir = "shapes"

// Shape returns the markup fragment for the named icon with the file's
// trailing line terminator removed. An unknown name returns an error that
// wraps fs.ErrNotExist.
func Shape(name string) (string, error) {
	data, err := Shapes.ReadFile(path.Join(shapeDir, name+".svg"))
	if err != nil {
		return "", fmt.Errorf("read shape %s: %w", name, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Names lists the icon names that have an embedded fragment, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(Shapes, shapeDir)
	if err != nil {
		return nil, fmt.Errorf("list shapes: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".svg" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names, nil
}
