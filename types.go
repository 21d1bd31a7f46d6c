package hwpxgen

// ContentType identifies the rendering of one content item.
type ContentType string

// Content type constants. Each maps to exactly one semantic style name in
// the template catalog.
const (
	ContentHeading   ContentType = "heading"
	ContentParagraph ContentType = "paragraph"
	ContentBullet    ContentType = "bullet"
	ContentDash      ContentType = "dash"
	ContentStar      ContentType = "star"
	ContentTable     ContentType = "table"
	ContentNote      ContentType = "note"
	ContentEmpty     ContentType = "empty"
)

// contentTypes is the closed set of accepted content type tags.
var contentTypes = map[ContentType]bool{
	ContentHeading:   true,
	ContentParagraph: true,
	ContentBullet:    true,
	ContentDash:      true,
	ContentStar:      true,
	ContentTable:     true,
	ContentNote:      true,
	ContentEmpty:     true,
}

// SectionType discriminates body and appendix sections.
type SectionType string

// Section type constants.
const (
	SectionBody     SectionType = "body"
	SectionAppendix SectionType = "appendix"
)

// ContentItem is one typed entry in a section's content sequence.
//
// Text is required for every type except table and empty. The table fields
// (Caption, Headers, Rows) are only valid on table items; every row must be
// exactly as wide as Headers.
type ContentItem struct {
	Type    ContentType `yaml:"type" json:"type"`
	Text    string      `yaml:"text,omitempty" json:"text,omitempty"`
	Caption string      `yaml:"caption,omitempty" json:"caption,omitempty"`
	Headers []string    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Rows    [][]string  `yaml:"rows,omitempty" json:"rows,omitempty"`

	// TableID overrides the anchor ID of a table element. Zero means the
	// fixed default; overriding is only needed when a consumer diffs
	// archives across template revisions.
	TableID uint32 `yaml:"table_id,omitempty" json:"table_id,omitempty"`
}

// Section is one generated section document.
//
// Body sections render a title bar followed by their content items.
// Appendix sections render a "참고N" tab label and the appendix title ahead
// of the content. Markdown is an alternative content source: when set, the
// section must not also carry Content, and the markdown blocks are lowered
// to content items at build time.
type Section struct {
	Type          SectionType   `yaml:"type,omitempty" json:"type,omitempty"`
	TitleBar      string        `yaml:"title_bar,omitempty" json:"title_bar,omitempty"`
	AppendixTitle string        `yaml:"appendix_title,omitempty" json:"appendix_title,omitempty"`
	Markdown      string        `yaml:"markdown,omitempty" json:"markdown,omitempty"`
	Content       []ContentItem `yaml:"content,omitempty" json:"content,omitempty"`
}

// Document is the root content model, built once per generation run and
// immutable afterward.
type Document struct {
	Title        string    `yaml:"title" json:"title"`
	Subtitle     string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Date         string    `yaml:"date" json:"date"`
	Department   string    `yaml:"department" json:"department"`
	Creator      string    `yaml:"creator,omitempty" json:"creator,omitempty"`
	IncludeCover bool      `yaml:"include_cover,omitempty" json:"include_cover,omitempty"`
	Sections     []Section `yaml:"sections" json:"sections"`
}
