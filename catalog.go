package hwpxgen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Semantic style names the emitter can request. The set is closed: a
// catalog binds each name to identifier pairs defined by the template, and
// an unbound name is an error, never a silent default.
const (
	StyleHeading      = "heading"
	StyleParagraph    = "paragraph"
	StyleBullet       = "bullet"
	StyleDash         = "dash"
	StyleStar         = "star"
	StyleNote         = "note"
	StyleEmpty        = "empty"
	StyleTableHeader  = "table-header"
	StyleTableBody    = "table-body"
	StyleTableCaption = "table-caption"
	StyleTableAnchor  = "table-anchor"
	StyleDateLine     = "date-line"
	StyleSpacer       = "spacer"
	StyleHeadingGap   = "heading-gap"
	StyleAppendixGap  = "appendix-gap"
)

// SegMetrics are the line-segment placeholder values emitted with each
// paragraph. They are template-derived constants, not computed layout: the
// consuming application recomputes real line breaks on open.
type SegMetrics struct {
	VertSize   int
	TextHeight int
	Baseline   int
	Spacing    int
}

// StyleRef binds a semantic style name to the template's identifier space.
type StyleRef struct {
	CharPr  string // charPrIDRef for the text run
	ParaPr  string // paraPrIDRef for the paragraph
	StyleID string // styleIDRef, usually "0"

	// MarkerCharPr styles the leading marker run when the content type
	// carries one; TrailCharPr styles the trailing empty run some
	// paragraph shapes end with. Empty means no such run.
	MarkerCharPr string
	TrailCharPr  string

	// BorderFill applies to table cell styles only.
	BorderFill string

	FontHint string
	SizePt   int
	Seg      SegMetrics
}

// StyleCatalog is the immutable binding from semantic style names to
// template identifier pairs, loaded once per generation run.
type StyleCatalog struct {
	templatePath string
	styles       map[string]StyleRef
	charIDs      map[string]bool
	paraIDs      map[string]bool
}

// defaultStyles carries the bundled template's identifier bindings. Font
// hints name roles, not typefaces; the template decides the actual face
// (휴먼명조 for body-serif, HY헤드라인M for headline-bold, 맑은 고딕 for
// body-sans in the bundled one).
var defaultStyles = map[string]StyleRef{
	StyleHeading: {
		CharPr: "2", ParaPr: "28", StyleID: "15", MarkerCharPr: "27", TrailCharPr: "29",
		FontHint: "headline-bold", SizePt: 15,
		Seg: SegMetrics{1500, 1500, 1275, 900},
	},
	StyleParagraph: {
		CharPr: "36", ParaPr: "19", StyleID: "0", TrailCharPr: "38",
		FontHint: "body-serif", SizePt: 15,
		Seg: SegMetrics{1500, 1500, 1275, 900},
	},
	StyleBullet: {
		CharPr: "36", ParaPr: "19", StyleID: "0", TrailCharPr: "38",
		FontHint: "body-serif", SizePt: 15,
		Seg: SegMetrics{1500, 1500, 1275, 900},
	},
	StyleDash: {
		CharPr: "36", ParaPr: "20", StyleID: "0", TrailCharPr: "43",
		FontHint: "body-serif", SizePt: 15,
		Seg: SegMetrics{1500, 1500, 1275, 900},
	},
	StyleStar: {
		CharPr: "57", ParaPr: "21", StyleID: "0", TrailCharPr: "48",
		FontHint: "body-sans", SizePt: 13,
		Seg: SegMetrics{1300, 1300, 1105, 780},
	},
	StyleNote: {
		CharPr: "47", ParaPr: "24", StyleID: "0",
		SizePt: 14,
		Seg:    SegMetrics{1400, 1400, 1190, 840},
	},
	StyleEmpty: {
		CharPr: "41", ParaPr: "19", StyleID: "0",
		Seg: SegMetrics{600, 600, 510, 360},
	},
	StyleTableHeader: {
		CharPr: "28", ParaPr: "25", StyleID: "0", BorderFill: "16",
		FontHint: "body-sans", SizePt: 12,
		Seg: SegMetrics{1200, 1200, 1020, 360},
	},
	StyleTableBody: {
		CharPr: "33", ParaPr: "25", StyleID: "0", BorderFill: "3",
		FontHint: "body-sans", SizePt: 12,
		Seg: SegMetrics{1200, 1200, 1020, 360},
	},
	StyleTableCaption: {
		CharPr: "17", ParaPr: "22", StyleID: "0",
		Seg: SegMetrics{1300, 1300, 1105, 780},
	},
	StyleTableAnchor: {
		CharPr: "9", ParaPr: "22", StyleID: "0",
		Seg: SegMetrics{6710, 6710, 5704, 600},
	},
	StyleDateLine: {
		CharPr: "50", ParaPr: "17", StyleID: "0", TrailCharPr: "58",
		Seg: SegMetrics{1200, 1200, 1020, 720},
	},
	StyleSpacer: {
		CharPr: "39", ParaPr: "3", StyleID: "0",
		Seg: SegMetrics{800, 800, 680, 480},
	},
	StyleHeadingGap: {
		CharPr: "41", ParaPr: "19", StyleID: "0",
		Seg: SegMetrics{600, 600, 510, 360},
	},
	StyleAppendixGap: {
		CharPr: "40", ParaPr: "28", StyleID: "15",
		Seg: SegMetrics{1500, 1500, 1275, 900},
	},
}

// DefaultCatalog returns the bundled style bindings without template ID
// verification. Lookup succeeds for every known name; binding against a
// real template happens in LoadStyleCatalog.
func DefaultCatalog() *StyleCatalog {
	return &StyleCatalog{templatePath: "(default)", styles: defaultStyles}
}

// LoadStyleCatalog parses the template's style-definition file and binds
// the style table against the identifiers it defines.
//
// Returns ErrTemplateCorrupt if Contents/header.xml is missing or not
// well-formed XML. ID resolution failures are deferred to Lookup.
func LoadStyleCatalog(tpl *Template) (*StyleCatalog, error) {
	return loadCatalogWithStyles(tpl, defaultStyles)
}

func loadCatalogWithStyles(tpl *Template, styles map[string]StyleRef) (*StyleCatalog, error) {
	header, ok := tpl.File(headerPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %s", ErrTemplateCorrupt, tpl.Path(), headerPath)
	}

	cat := &StyleCatalog{
		templatePath: tpl.Path(),
		styles:       styles,
		charIDs:      map[string]bool{},
		paraIDs:      map[string]bool{},
	}

	dec := xml.NewDecoder(bytes.NewReader(header))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrTemplateCorrupt, tpl.Path(), headerPath, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "charPr":
			if id, ok := attr(start, "id"); ok {
				cat.charIDs[id] = true
			}
		case "paraPr":
			if id, ok := attr(start, "id"); ok {
				cat.paraIDs[id] = true
			}
		}
	}

	if len(cat.charIDs) == 0 || len(cat.paraIDs) == 0 {
		return nil, fmt.Errorf("%w: %s: %s defines no character or paragraph properties",
			ErrTemplateCorrupt, tpl.Path(), headerPath)
	}
	return cat, nil
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Lookup resolves a semantic style name to its identifier binding.
// A pure read: returns ErrStyleNotFound for unknown names and for bindings
// that reference identifiers the template does not define.
func (c *StyleCatalog) Lookup(name string) (StyleRef, error) {
	ref, ok := c.styles[name]
	if !ok {
		return StyleRef{}, fmt.Errorf("%w: %q (template %s)", ErrStyleNotFound, name, c.templatePath)
	}

	// An unverified catalog (DefaultCatalog) has no ID sets to check.
	if c.charIDs == nil {
		return ref, nil
	}

	for _, id := range []string{ref.CharPr, ref.MarkerCharPr, ref.TrailCharPr} {
		if id != "" && !c.charIDs[id] {
			return StyleRef{}, fmt.Errorf("%w: %q references undefined charPr %s (template %s)",
				ErrStyleNotFound, name, id, c.templatePath)
		}
	}
	if !c.paraIDs[ref.ParaPr] {
		return StyleRef{}, fmt.Errorf("%w: %q references undefined paraPr %s (template %s)",
			ErrStyleNotFound, name, ref.ParaPr, c.templatePath)
	}
	return ref, nil
}

// TemplatePath reports which template the catalog was loaded from.
func (c *StyleCatalog) TemplatePath() string { return c.templatePath }
