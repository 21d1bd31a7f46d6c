package hwpxgen

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleConfig = `{
	"title": "9월 주요업무 추진현황",
	"date": "25. 9. 2.(화)",
	"department": "기획예산처",
	"sections": [
		{
			"title_bar": "주요 추진 현황",
			"content": [
				{"type": "heading", "text": "교육 운영"},
				{"type": "bullet", "text": "정규 과정 운영 중"},
				{"type": "dash", "text": "수료율 95% 달성"},
				{"type": "table", "caption": "과정 현황",
				 "headers": ["과정", "인원"], "rows": [["기초", "120"], ["심화", "80"]]}
			]
		},
		{
			"type": "appendix",
			"appendix_title": "세부 일정",
			"content": [{"type": "bullet", "text": "10월 개강"}]
		}
	]
}`

func pinnedClock() time.Time {
	return time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// TestService_Generate - End-to-end file output
// ---------------------------------------------------------------------------

func TestService_Generate(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.hwpx")
	svc := New(WithClock(pinnedClock))

	if err := svc.Generate(context.Background(), []byte(sampleConfig), out); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(out) // #nosec G304 -- test output under t.TempDir
	if err != nil {
		t.Fatal(err)
	}
	zr, files := readArchive(t, data)

	if zr.File[0].Name != "mimetype" || zr.File[0].Method != zip.Store {
		t.Errorf("first entry = %q method %d", zr.File[0].Name, zr.File[0].Method)
	}

	// No cover requested: generated sections number from zero.
	body := string(files["Contents/section0.xml"])
	if !strings.Contains(body, "<hp:t>주요 추진 현황</hp:t>") {
		t.Error("section0 missing title bar text")
	}
	if !strings.Contains(body, "<hp:t>□</hp:t>") {
		t.Error("section0 missing heading marker")
	}
	if !strings.Contains(body, `rowCnt="3" colCnt="2"`) {
		t.Error("section0 missing table")
	}

	appendix := string(files["Contents/section1.xml"])
	if !strings.Contains(appendix, "<hp:t>참고1</hp:t>") {
		t.Error("section1 missing appendix tab label")
	}
	if !strings.Contains(appendix, "<hp:t>세부 일정</hp:t>") {
		t.Error("section1 missing appendix title")
	}

	if !strings.Contains(string(files["Contents/header.xml"]), `secCnt="2"`) {
		t.Error("header secCnt mismatch")
	}
	preview := string(files["Preview/PrvText.txt"])
	if !strings.HasPrefix(preview, "9월 주요업무 추진현황") {
		t.Errorf("preview = %.40q", preview)
	}
}

func TestService_Generate_SchemaErrorWritesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.hwpx")
	err := New().Generate(context.Background(), []byte(`{"title": "T"}`), out)
	if !errors.Is(err, ErrConfigSchema) {
		t.Fatalf("Generate() error = %v, want ErrConfigSchema", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output file exists after a rejected config")
	}
}

func TestService_Generate_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "report.hwpx")
	err := New().Generate(ctx, []byte(sampleConfig), out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output file exists after cancellation")
	}
}

// ---------------------------------------------------------------------------
// TestService_GenerateBytes - In-memory generation
// ---------------------------------------------------------------------------

func TestService_GenerateBytes_Idempotent(t *testing.T) {
	t.Parallel()

	svc := New(WithClock(pinnedClock))
	doc, err := BuildDocument([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.GenerateBytes(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.GenerateBytes(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated runs with a pinned clock differ")
	}
}

func TestService_GenerateBytes_TodayDate(t *testing.T) {
	t.Parallel()

	config := strings.Replace(sampleConfig, `"25. 9. 2.(화)"`, `"today"`, 1)
	doc, err := BuildDocument([]byte(config))
	if err != nil {
		t.Fatal(err)
	}

	svc := New(WithClock(pinnedClock))
	data, err := svc.GenerateBytes(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	_, files := readArchive(t, data)
	if !strings.Contains(string(files["Contents/section0.xml"]), "('25. 9. 2.(화), ") {
		t.Error("today keyword not resolved against the pinned clock")
	}
}

func TestService_GenerateBytes_ValidatesCallerDocument(t *testing.T) {
	t.Parallel()

	svc := New(WithClock(pinnedClock))

	// Hand-assembled documents bypass BuildDocument, so GenerateBytes
	// must reject shape violations itself rather than reach the emitter.
	tests := []struct {
		name string
		doc  *Document
	}{
		{name: "nil document", doc: nil},
		{
			name: "table without headers",
			doc: &Document{
				Title: "T", Date: "D", Department: "Dept",
				Sections: []Section{{Content: []ContentItem{
					{Type: ContentTable, Rows: [][]string{{"x"}}},
				}}},
			},
		},
		{
			name: "row width mismatch",
			doc: &Document{
				Title: "T", Date: "D", Department: "Dept",
				Sections: []Section{{Content: []ContentItem{
					{Type: ContentTable, Headers: []string{"a", "b"}, Rows: [][]string{{"x"}}},
				}}},
			},
		},
		{
			name: "no sections",
			doc:  &Document{Title: "T", Date: "D", Department: "Dept"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := svc.GenerateBytes(context.Background(), tt.doc); !errors.Is(err, ErrConfigSchema) {
				t.Errorf("GenerateBytes() error = %v, want ErrConfigSchema", err)
			}
		})
	}
}

func TestService_GenerateDocument_ValidatesCallerDocument(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.hwpx")
	doc := &Document{
		Title: "T", Date: "D", Department: "Dept",
		Sections: []Section{{Content: []ContentItem{
			{Type: ContentTable, Rows: [][]string{{"x"}}},
		}}},
	}

	err := New().GenerateDocument(context.Background(), doc, out)
	if !errors.Is(err, ErrConfigSchema) {
		t.Fatalf("GenerateDocument() error = %v, want ErrConfigSchema", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output file exists after a rejected document")
	}
}

func TestService_GenerateBytes_IncludeCover(t *testing.T) {
	t.Parallel()

	config := strings.Replace(sampleConfig, `"title":`, `"include_cover": true, "title":`, 1)
	doc, err := BuildDocument([]byte(config))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.IncludeCover {
		t.Fatal("include_cover not decoded")
	}

	data, err := New(WithClock(pinnedClock)).GenerateBytes(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	_, files := readArchive(t, data)

	tpl, err := EmbeddedTemplate()
	if err != nil {
		t.Fatal(err)
	}
	cover, _ := tpl.File(coverPath)
	if !bytes.Equal(files["Contents/section0.xml"], cover) {
		t.Error("section0 is not the template cover")
	}
	// Generated sections shift up by one.
	if !strings.Contains(string(files["Contents/section1.xml"]), "<hp:t>주요 추진 현황</hp:t>") {
		t.Error("first generated section not at section1")
	}
	if !strings.Contains(string(files["Contents/header.xml"]), `secCnt="3"`) {
		t.Error("header secCnt does not count the cover")
	}
}

// ---------------------------------------------------------------------------
// TestService - Template and catalog options
// ---------------------------------------------------------------------------

func TestService_WithTemplatePath(t *testing.T) {
	t.Parallel()

	doc, err := BuildDocument([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	// A template that loads but cannot bind the default styles.
	path := writeTemplateZip(t, [][2]string{
		{"mimetype", Mimetype},
		{"Contents/header.xml", minimalHeader},
	})
	svc := New(WithTemplatePath(path))
	if _, err := svc.GenerateBytes(context.Background(), doc); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("GenerateBytes() error = %v, want ErrStyleNotFound", err)
	}

	// A missing template surfaces the underlying I/O error.
	svc = New(WithTemplatePath(filepath.Join(t.TempDir(), "nope.hwpx")))
	if _, err := svc.GenerateBytes(context.Background(), doc); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("GenerateBytes() error = %v, want os.ErrNotExist", err)
	}
}

func TestService_WithCatalog(t *testing.T) {
	t.Parallel()

	doc, err := BuildDocument([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	// An injected catalog skips template binding entirely.
	svc := New(WithCatalog(DefaultCatalog()), WithClock(pinnedClock))
	if _, err := svc.GenerateBytes(context.Background(), doc); err != nil {
		t.Fatalf("GenerateBytes() error: %v", err)
	}
}
