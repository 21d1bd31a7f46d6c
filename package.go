package hwpxgen

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"
)

// entryKind classifies archive entries while packaging.
type entryKind int

const (
	entryFixed    entryKind = iota // the mimetype marker
	entryVerbatim                  // copied byte-for-byte from the template
	entryGenerated
)

// packageManifest tracks what went into the archive during assembly. It
// exists to keep the entry set consistent (no duplicates, marker first)
// and is discarded once the archive is finalized.
type packageManifest struct {
	kinds map[string]entryKind
	order []string
}

func newPackageManifest() *packageManifest {
	return &packageManifest{kinds: map[string]entryKind{}}
}

func (m *packageManifest) add(name string, kind entryKind) error {
	if _, dup := m.kinds[name]; dup {
		return fmt.Errorf("duplicate archive entry %s", name)
	}
	if len(m.order) == 0 && kind != entryFixed {
		return fmt.Errorf("first archive entry must be the mimetype marker, got %s", name)
	}
	m.kinds[name] = kind
	m.order = append(m.order, name)
	return nil
}

// generatedSection is one emitted section document ready for packaging.
type generatedSection struct {
	name string // file name under Contents/, e.g. "section1.xml"
	data []byte
}

// assemble writes the output archive: template entries copied verbatim,
// generated documents at their designated paths, and the fixed mimetype
// marker first, stored uncompressed. All other entries are deflated.
func assemble(w io.Writer, tpl *Template, doc *Document, sections []generatedSection, now time.Time) error {
	manifest := newPackageManifest()
	zw := zip.NewWriter(w)

	writeEntry := func(name string, kind entryKind, data []byte) error {
		if err := manifest.add(name, kind); err != nil {
			return err
		}
		method := zip.Deflate
		if kind == entryFixed {
			method = zip.Store
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", name, err)
		}
		return nil
	}

	// The consumer requires the marker as the very first entry in the
	// archive byte stream; zip.Writer emits entries in call order.
	if err := writeEntry(mimetypePath, entryFixed, []byte(Mimetype)); err != nil {
		return err
	}

	// Top-level and META-INF template parts, in template order.
	for _, e := range tpl.Entries() {
		if isVerbatimFixedPart(e.Name) {
			if err := writeEntry(e.Name, entryVerbatim, e.Data); err != nil {
				return err
			}
		}
	}

	sectionNames := make([]string, 0, len(sections)+1)
	if doc.IncludeCover {
		cover, ok := tpl.File(coverPath)
		if !ok {
			return fmt.Errorf("%w: %s: missing %s (required by include_cover)",
				ErrTemplateCorrupt, tpl.Path(), coverPath)
		}
		if err := writeEntry(coverPath, entryVerbatim, cover); err != nil {
			return err
		}
		sectionNames = append(sectionNames, "section0.xml")
	}
	for _, sec := range sections {
		if err := writeEntry("Contents/"+sec.name, entryGenerated, sec.data); err != nil {
			return err
		}
		sectionNames = append(sectionNames, sec.name)
	}

	header, _ := tpl.File(headerPath) // presence checked at template load
	if err := writeEntry(headerPath, entryGenerated, rewriteSecCnt(header, len(sectionNames))); err != nil {
		return err
	}

	binEntries := binDataEntries(tpl)
	hpf := contentHPF(doc, sectionNames, binEntries, now)
	if err := writeEntry(packagePath, entryGenerated, []byte(hpf)); err != nil {
		return err
	}
	if err := writeEntry(rdfPath, entryGenerated, []byte(containerRDF(sectionNames))); err != nil {
		return err
	}

	// Binary assets and remaining preview parts, in template order.
	for _, e := range tpl.Entries() {
		if strings.HasPrefix(e.Name, "BinData/") ||
			(strings.HasPrefix(e.Name, "Preview/") && e.Name != previewTxtPath) {
			if err := writeEntry(e.Name, entryVerbatim, e.Data); err != nil {
				return err
			}
		}
	}
	if err := writeEntry(previewTxtPath, entryGenerated, []byte(previewText(doc))); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// isVerbatimFixedPart reports whether a template entry belongs to the fixed
// verbatim-copy set written before the section documents.
func isVerbatimFixedPart(name string) bool {
	switch name {
	case "version.xml", "settings.xml", "META-INF/container.xml", "META-INF/manifest.xml":
		return true
	}
	return false
}

// binDataEntries lists the template's binary assets in archive order.
func binDataEntries(tpl *Template) []string {
	var names []string
	for _, e := range tpl.Entries() {
		if strings.HasPrefix(e.Name, "BinData/") {
			names = append(names, e.Name)
		}
	}
	return names
}
