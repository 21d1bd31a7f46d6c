package hwpxgen

import (
	"fmt"

	"github.com/alnah/go-hwpxgen/internal/confutil"
	"github.com/alnah/go-hwpxgen/internal/mdimport"
)

// BuildDocument decodes and validates a config document into the content
// model. The input may be JSON or YAML; unknown fields and unknown content
// type tags are rejected rather than skipped. Markdown sections are lowered
// to content items here, so the returned Document always carries explicit
// content sequences.
//
// Returns ErrConfigSchema with the offending field path on any violation.
// Performs no I/O.
func BuildDocument(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w", ErrEmptyConfig)
	}

	var doc Document
	if err := confutil.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigSchema, err)
	}

	if err := expandMarkdown(&doc); err != nil {
		return nil, err
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// expandMarkdown lowers any markdown-sourced sections into content items.
func expandMarkdown(doc *Document) error {
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Markdown == "" {
			continue
		}
		if len(sec.Content) > 0 {
			return schemaErrorf(fmt.Sprintf("sections[%d]", i),
				"markdown and content are mutually exclusive")
		}

		items, err := mdimport.Convert([]byte(sec.Markdown))
		if err != nil {
			return schemaErrorf(fmt.Sprintf("sections[%d].markdown", i), "%v", err)
		}
		for _, it := range items {
			sec.Content = append(sec.Content, ContentItem{
				Type:    ContentType(it.Type),
				Text:    it.Text,
				Caption: it.Caption,
				Headers: it.Headers,
				Rows:    it.Rows,
			})
		}
		sec.Markdown = ""
	}
	return nil
}

func validateDocument(doc *Document) error {
	if doc.Title == "" {
		return schemaErrorf("title", "required field is missing")
	}
	if doc.Date == "" {
		return schemaErrorf("date", "required field is missing")
	}
	if doc.Department == "" {
		return schemaErrorf("department", "required field is missing")
	}
	if len(doc.Sections) == 0 {
		return schemaErrorf("sections", "at least one section is required")
	}

	for i := range doc.Sections {
		if err := validateSection(&doc.Sections[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(sec *Section, idx int) error {
	path := fmt.Sprintf("sections[%d]", idx)

	switch sec.Type {
	case "":
		sec.Type = SectionBody
	case SectionBody, SectionAppendix:
	default:
		return schemaErrorf(path+".type", "unknown section type %q", sec.Type)
	}

	if sec.Type == SectionAppendix && sec.AppendixTitle == "" {
		return schemaErrorf(path+".appendix_title", "required for appendix sections")
	}
	if sec.Type == SectionBody && sec.AppendixTitle != "" {
		return schemaErrorf(path+".appendix_title", "only valid on appendix sections")
	}

	for j := range sec.Content {
		if err := validateContentItem(&sec.Content[j], fmt.Sprintf("%s.content[%d]", path, j)); err != nil {
			return err
		}
	}
	return nil
}

func validateContentItem(item *ContentItem, path string) error {
	if item.Type == "" {
		return schemaErrorf(path+".type", "required field is missing")
	}
	if !contentTypes[item.Type] {
		return schemaErrorf(path+".type", "unknown content type %q", item.Type)
	}

	if item.Type == ContentTable {
		return validateTable(item, path)
	}

	// A stray headers list on a paragraph is almost always a typo'd type tag.
	if len(item.Headers) > 0 || len(item.Rows) > 0 || item.Caption != "" {
		return schemaErrorf(path, "table fields are only valid on type table")
	}

	switch item.Type {
	case ContentEmpty:
		if item.Text != "" {
			return schemaErrorf(path+".text", "not valid on type empty")
		}
	default:
		if item.Text == "" {
			return schemaErrorf(path+".text", "required for type %s", item.Type)
		}
	}
	return nil
}

func validateTable(item *ContentItem, path string) error {
	if item.Text != "" {
		return schemaErrorf(path+".text", "not valid on type table")
	}
	if len(item.Headers) == 0 {
		return schemaErrorf(path+".headers", "table requires at least one header")
	}
	for r, row := range item.Rows {
		if len(row) != len(item.Headers) {
			return schemaErrorf(fmt.Sprintf("%s.rows[%d]", path, r),
				"row has %d cells, want %d to match headers", len(row), len(item.Headers))
		}
	}
	return nil
}
