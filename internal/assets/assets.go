// Package assets bundles the default HWPX template parts.
//
// The template is stored as individual archive entries rather than a .hwpx
// blob so the parts stay reviewable in source control. Entry order matters:
// the packager writes entries in the order returned here, and the mimetype
// entry must come first in any archive built from them.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed template
var templateFS embed.FS

// File is one entry of the bundled template.
type File struct {
	Name string // archive path, e.g. "Contents/header.xml"
	Data []byte
}

// leadingOrder pins the entries whose archive position is meaningful.
// Remaining entries follow in sorted path order.
var leadingOrder = []string{
	"mimetype",
	"version.xml",
	"settings.xml",
	"META-INF/container.xml",
	"META-INF/manifest.xml",
	"Contents/header.xml",
	"Contents/section0.xml",
}

// TemplateFiles returns the bundled template entries, mimetype first.
func TemplateFiles() ([]File, error) {
	byName := map[string][]byte{}
	err := fs.WalkDir(templateFS, "template", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		byName[strings.TrimPrefix(path, "template/")] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading bundled template: %w", err)
	}

	var files []File
	for _, name := range leadingOrder {
		data, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("bundled template missing %s", name)
		}
		files = append(files, File{Name: name, Data: data})
		delete(byName, name)
	}

	rest := make([]string, 0, len(byName))
	for name := range byName {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		files = append(files, File{Name: name, Data: byName[name]})
	}
	return files, nil
}
