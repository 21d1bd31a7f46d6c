package hwpxgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-hwpxgen/internal/assets"
)

// Mimetype is the fixed content-type marker the consuming application
// expects as the first, uncompressed archive entry.
const Mimetype = "application/hwp+zip"

// Archive paths with special handling during packaging.
const (
	mimetypePath   = "mimetype"
	headerPath     = "Contents/header.xml"
	packagePath    = "Contents/content.hpf"
	coverPath      = "Contents/section0.xml"
	rdfPath        = "META-INF/container.rdf"
	previewTxtPath = "Preview/PrvText.txt"
)

// requiredEntries must exist in every usable template archive.
var requiredEntries = []string{mimetypePath, headerPath}

// TemplateEntry is one file of a template archive.
type TemplateEntry struct {
	Name string
	Data []byte
}

// Template is a loaded HWPX template: an ordered set of archive entries the
// packager copies verbatim or replaces. Loaded once per generation run and
// read-only afterward.
type Template struct {
	path    string
	entries []TemplateEntry
	index   map[string]int
}

// LoadTemplate reads a template archive from disk.
// Returns ErrTemplateCorrupt if the archive is unreadable as a ZIP or is
// missing required entries.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateCorrupt, path, err)
	}

	tpl := &Template{path: path, index: map[string]int{}}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: opening %s: %v", ErrTemplateCorrupt, path, f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: reading %s: %v", ErrTemplateCorrupt, path, f.Name, err)
		}
		tpl.add(f.Name, content)
	}

	if err := tpl.checkRequired(); err != nil {
		return nil, err
	}
	return tpl, nil
}

// EmbeddedTemplate returns the bundled default template.
func EmbeddedTemplate() (*Template, error) {
	files, err := assets.TemplateFiles()
	if err != nil {
		return nil, err
	}

	tpl := &Template{path: "(embedded)", index: map[string]int{}}
	for _, f := range files {
		tpl.add(f.Name, f.Data)
	}
	if err := tpl.checkRequired(); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (t *Template) add(name string, data []byte) {
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, TemplateEntry{Name: name, Data: data})
}

func (t *Template) checkRequired() error {
	for _, name := range requiredEntries {
		if _, ok := t.index[name]; !ok {
			return fmt.Errorf("%w: %s: missing %s", ErrTemplateCorrupt, t.path, name)
		}
	}
	if got := string(t.entries[t.index[mimetypePath]].Data); got != Mimetype {
		return fmt.Errorf("%w: %s: mimetype is %q, want %q", ErrTemplateCorrupt, t.path, got, Mimetype)
	}
	return nil
}

// Path returns where the template was loaded from.
func (t *Template) Path() string { return t.path }

// File returns the named entry's content.
func (t *Template) File(name string) ([]byte, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.entries[i].Data, true
}

// Entries returns the template entries in archive order.
func (t *Template) Entries() []TemplateEntry { return t.entries }
