// Package xmlutil provides escaping helpers for hand-built XML markup.
//
// The HWPX consumer mandates exact namespace prefixes and attribute shapes,
// so section markup is assembled as strings rather than marshaled through
// encoding/xml. These helpers keep that path well-formed.
package xmlutil

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes character data for element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes character data for attribute values, including quotes.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
