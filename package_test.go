package hwpxgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func readArchive(t *testing.T, data []byte) (*zip.Reader, map[string][]byte) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}
	files := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		files[f.Name] = content
	}
	return zr, files
}

// ---------------------------------------------------------------------------
// TestAssemble - Archive layout
// ---------------------------------------------------------------------------

func TestAssemble(t *testing.T) {
	t.Parallel()

	tpl, err := EmbeddedTemplate()
	if err != nil {
		t.Fatal(err)
	}
	doc := &Document{Title: "업무보고", Date: "D", Department: "Dept"}
	sections := []generatedSection{
		{name: "section0.xml", data: []byte("<sec>one</sec>")},
		{name: "section1.xml", data: []byte("<sec>two</sec>")},
	}

	var buf bytes.Buffer
	if err := assemble(&buf, tpl, doc, sections, time.Unix(0, 0).UTC()); err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	zr, files := readArchive(t, buf.Bytes())

	// The marker entry leads the byte stream, stored uncompressed.
	first := zr.File[0]
	if first.Name != "mimetype" {
		t.Fatalf("first entry = %q, want mimetype", first.Name)
	}
	if first.Method != zip.Store {
		t.Errorf("mimetype method = %d, want Store", first.Method)
	}
	if string(files["mimetype"]) != Mimetype {
		t.Errorf("mimetype content = %q", files["mimetype"])
	}
	// The marker content is readable from the raw stream without inflation.
	if !bytes.Contains(buf.Bytes()[:128], []byte(Mimetype)) {
		t.Error("mimetype content not visible near the start of the stream")
	}

	for _, name := range []string{
		"version.xml", "settings.xml",
		"META-INF/container.xml", "META-INF/manifest.xml", "META-INF/container.rdf",
		"Contents/header.xml", "Contents/content.hpf",
		"Contents/section0.xml", "Contents/section1.xml",
		"Preview/PrvText.txt",
	} {
		if _, ok := files[name]; !ok {
			t.Errorf("archive missing %s", name)
		}
	}

	if got := string(files["Contents/section0.xml"]); got != "<sec>one</sec>" {
		t.Errorf("section0 content = %q", got)
	}
	if !strings.Contains(string(files["Contents/header.xml"]), `secCnt="2"`) {
		t.Error("header secCnt not rewritten to the section count")
	}
	if got := string(files["Preview/PrvText.txt"]); got != "업무보고" {
		t.Errorf("preview = %q", got)
	}
	if !strings.Contains(string(files["Contents/content.hpf"]), `id="section1"`) {
		t.Error("content.hpf spine missing section item")
	}
	for _, f := range zr.File[1:] {
		if f.Method != zip.Deflate {
			t.Errorf("entry %s method = %d, want Deflate", f.Name, f.Method)
		}
	}
}

func TestAssemble_IncludeCover(t *testing.T) {
	t.Parallel()

	tpl, err := EmbeddedTemplate()
	if err != nil {
		t.Fatal(err)
	}
	doc := &Document{Title: "T", Date: "D", Department: "Dept", IncludeCover: true}
	sections := []generatedSection{{name: "section1.xml", data: []byte("<sec/>")}}

	var buf bytes.Buffer
	if err := assemble(&buf, tpl, doc, sections, time.Unix(0, 0).UTC()); err != nil {
		t.Fatal(err)
	}

	_, files := readArchive(t, buf.Bytes())

	cover, _ := tpl.File(coverPath)
	if !bytes.Equal(files["Contents/section0.xml"], cover) {
		t.Error("cover section not copied verbatim from the template")
	}
	if string(files["Contents/section1.xml"]) != "<sec/>" {
		t.Error("generated section missing alongside cover")
	}
	if !strings.Contains(string(files["Contents/header.xml"]), `secCnt="2"`) {
		t.Error("cover not counted in secCnt")
	}
}

// ---------------------------------------------------------------------------
// TestPackageManifest - Entry bookkeeping
// ---------------------------------------------------------------------------

func TestPackageManifest(t *testing.T) {
	t.Parallel()

	m := newPackageManifest()

	if err := m.add("Contents/header.xml", entryGenerated); err == nil {
		t.Error("non-marker first entry accepted")
	}
	if err := m.add("mimetype", entryFixed); err != nil {
		t.Fatalf("add(mimetype) error: %v", err)
	}
	if err := m.add("version.xml", entryVerbatim); err != nil {
		t.Fatalf("add(version.xml) error: %v", err)
	}
	if err := m.add("version.xml", entryGenerated); err == nil {
		t.Error("duplicate entry accepted")
	}
}
