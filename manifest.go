package hwpxgen

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-hwpxgen/internal/xmlutil"
)

// defaultCreator is used when the config omits the creator field.
const defaultCreator = "이노베이션아카데미"

// binMediaTypes maps binary-asset extensions to the media types declared in
// the package manifest.
var binMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpg",
	".jpeg": "image/jpg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
}

// contentHPF renders the OPF package manifest: metadata, one manifest item
// per part, and the spine listing sections in reading order.
func contentHPF(doc *Document, sectionNames []string, binEntries []string, now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05Z")

	creator := doc.Creator
	if creator == "" {
		creator = defaultCreator
	}

	var items strings.Builder
	items.WriteString(`<opf:item id="header" href="Contents/header.xml" media-type="application/xml"/>`)
	for i, name := range binEntries {
		mt, ok := binMediaTypes[strings.ToLower(path.Ext(name))]
		if !ok {
			mt = "application/octet-stream"
		}
		fmt.Fprintf(&items, `<opf:item id="image%d" href="%s" media-type="%s" isEmbeded="1"/>`,
			i+1, xmlutil.EscapeAttr(name), mt)
	}
	for i, name := range sectionNames {
		fmt.Fprintf(&items, `<opf:item id="section%d" href="Contents/%s" media-type="application/xml"/>`,
			i, xmlutil.EscapeAttr(name))
	}
	items.WriteString(`<opf:item id="settings" href="settings.xml" media-type="application/xml"/>`)

	var spine strings.Builder
	spine.WriteString(`<opf:itemref idref="header" linear="yes"/>`)
	for i := range sectionNames {
		fmt.Fprintf(&spine, `<opf:itemref idref="section%d" linear="yes"/>`, i)
	}

	return `<?xml version="1.0" ?>` +
		`<opf:package ` + nsDecl + ` version="" unique-identifier="" id="">` +
		`<opf:metadata>` +
		`<opf:title>` + xmlutil.EscapeText(doc.Title) + `</opf:title>` +
		`<opf:language>ko</opf:language>` +
		`<opf:meta name="creator" content="text">` + xmlutil.EscapeText(creator) + `</opf:meta>` +
		`<opf:meta name="subject" content="text"/>` +
		`<opf:meta name="description" content="text"/>` +
		`<opf:meta name="CreatedDate" content="text">` + stamp + `</opf:meta>` +
		`<opf:meta name="ModifiedDate" content="text">` + stamp + `</opf:meta>` +
		`<opf:meta name="keyword" content="text"/>` +
		`</opf:metadata>` +
		`<opf:manifest>` + items.String() + `</opf:manifest>` +
		`<opf:spine>` + spine.String() + `</opf:spine>` +
		`</opf:package>`
}

// containerRDF renders META-INF/container.rdf, describing the header and
// each section file.
func containerRDF(sectionNames []string) string {
	const pkgNS = "http://www.hancom.co.kr/hwpml/2016/meta/pkg#"

	var b strings.Builder
	part := func(href, typ string) {
		fmt.Fprintf(&b, `<rdf:Description rdf:about="">`+
			`<ns0:hasPart xmlns:ns0="%s" rdf:resource="%s"/></rdf:Description>`, pkgNS, href)
		fmt.Fprintf(&b, `<rdf:Description rdf:about="%s">`+
			`<rdf:type rdf:resource="%s%s"/></rdf:Description>`, href, pkgNS, typ)
	}

	part("Contents/header.xml", "HeaderFile")
	for _, name := range sectionNames {
		part("Contents/"+name, "SectionFile")
	}
	fmt.Fprintf(&b, `<rdf:Description rdf:about="">`+
		`<rdf:type rdf:resource="%sDocument"/></rdf:Description>`, pkgNS)

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>` +
		`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
		b.String() + `</rdf:RDF>`
}

// previewText renders the plain-text preview the consumer shows in file
// listings: title, then section titles and item text in order.
func previewText(doc *Document) string {
	var b strings.Builder
	b.WriteString(doc.Title)
	if doc.Subtitle != "" {
		b.WriteString("\n" + doc.Subtitle)
	}
	for _, sec := range doc.Sections {
		if sec.TitleBar != "" {
			b.WriteString("\n" + sec.TitleBar)
		}
		if sec.AppendixTitle != "" {
			b.WriteString("\n" + sec.AppendixTitle)
		}
		for _, item := range sec.Content {
			if item.Text != "" {
				b.WriteString("\n" + item.Text)
			}
		}
	}
	return b.String()
}

var secCntRe = regexp.MustCompile(`secCnt="\d+"`)

// rewriteSecCnt updates the header's declared section count to match the
// assembled archive.
func rewriteSecCnt(header []byte, count int) []byte {
	return secCntRe.ReplaceAll(header, []byte(fmt.Sprintf(`secCnt="%d"`, count)))
}
