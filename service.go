package hwpxgen

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-hwpxgen/internal/dateutil"
	"github.com/alnah/go-hwpxgen/internal/fileutil"
)

// Service orchestrates the config-to-HWPX pipeline. A Service is safe for
// sequential reuse; concurrent Generate calls against distinct output paths
// need no coordination because each run owns its catalog and content model.
type Service struct {
	cfg serviceConfig
}

type serviceConfig struct {
	templatePath string
	template     *Template
	catalog      *StyleCatalog
	clock        func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithTemplatePath uses the template archive at path instead of the
// bundled default.
func WithTemplatePath(path string) Option {
	return func(s *Service) { s.cfg.templatePath = path }
}

// WithTemplate injects an already loaded template.
func WithTemplate(tpl *Template) Option {
	return func(s *Service) { s.cfg.template = tpl }
}

// WithCatalog replaces the semantic style bindings wholesale. The catalog
// must resolve every style name the emitter requests; there is no partial
// merge with the defaults.
func WithCatalog(cat *StyleCatalog) Option {
	return func(s *Service) { s.cfg.catalog = cat }
}

// WithClock replaces the time source used for run metadata (package
// timestamps, "today" date resolution). Pin it for byte-identical output
// across runs.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.cfg.clock = clock }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{cfg: serviceConfig{clock: time.Now}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds the content model from raw config (JSON or YAML) and
// writes the generated archive to outputPath. Nothing is written on any
// validation or render failure, and no partial file is ever visible at
// outputPath.
func (s *Service) Generate(ctx context.Context, rawConfig []byte, outputPath string) error {
	doc, err := BuildDocument(rawConfig)
	if err != nil {
		return err
	}
	return s.GenerateDocument(ctx, doc, outputPath)
}

// GenerateDocument renders an already built content model to outputPath.
func (s *Service) GenerateDocument(ctx context.Context, doc *Document, outputPath string) error {
	data, err := s.GenerateBytes(ctx, doc)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(outputPath, data, 0o644)
}

// GenerateBytes renders the archive in memory and returns its bytes.
// The document is validated even when caller-built, so a hand-assembled
// Document fails with ErrConfigSchema rather than reaching the emitter.
func (s *Service) GenerateBytes(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrConfigSchema)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	tpl, err := s.resolveTemplate()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cat := s.cfg.catalog
	if cat == nil {
		cat, err = LoadStyleCatalog(tpl)
		if err != nil {
			return nil, err
		}
	}

	now := s.cfg.clock()
	sections, err := renderSections(doc, cat, now)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := assemble(&buf, tpl, doc, sections, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) resolveTemplate() (*Template, error) {
	switch {
	case s.cfg.template != nil:
		return s.cfg.template, nil
	case s.cfg.templatePath != "":
		return LoadTemplate(s.cfg.templatePath)
	default:
		return EmbeddedTemplate()
	}
}

// renderSections emits one XML document per config section. Generated
// section files number from 1 when a cover page occupies section0.
func renderSections(doc *Document, cat *StyleCatalog, now time.Time) ([]generatedSection, error) {
	em := &emitter{cat: cat}

	startIdx := 0
	if doc.IncludeCover {
		startIdx = 1
	}

	date := dateutil.Resolve(doc.Date, now)

	var out []generatedSection
	appendixCount := 0
	for i, sec := range doc.Sections {
		meta := renderMeta{date: date, department: doc.Department}
		if sec.Type == SectionAppendix {
			appendixCount++
			meta.appendixIndex = appendixCount
		}

		xmlDoc, err := em.renderSection(sec, meta)
		if err != nil {
			return nil, fmt.Errorf("rendering sections[%d]: %w", i, err)
		}
		out = append(out, generatedSection{
			name: fmt.Sprintf("section%d.xml", startIdx+i),
			data: []byte(xmlDoc),
		})
	}
	return out, nil
}
