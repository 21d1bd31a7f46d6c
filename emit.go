package hwpxgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-hwpxgen/internal/xmlutil"
)

// nsDecl is the fixed namespace table declared once at each section root.
// The consuming application mandates these exact prefixes; the emitter
// never invents new ones.
const nsDecl = `xmlns:ha="http://www.hancom.co.kr/hwpml/2011/app" ` +
	`xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph" ` +
	`xmlns:hp10="http://www.hancom.co.kr/hwpml/2016/paragraph" ` +
	`xmlns:hs="http://www.hancom.co.kr/hwpml/2011/section" ` +
	`xmlns:hc="http://www.hancom.co.kr/hwpml/2011/core" ` +
	`xmlns:hh="http://www.hancom.co.kr/hwpml/2011/head" ` +
	`xmlns:hhs="http://www.hancom.co.kr/hwpml/2011/history" ` +
	`xmlns:hm="http://www.hancom.co.kr/hwpml/2011/master-page" ` +
	`xmlns:hpf="http://www.hancom.co.kr/schema/2011/hpf" ` +
	`xmlns:dc="http://purl.org/dc/elements/1.1/" ` +
	`xmlns:opf="http://www.idpf.org/2007/opf/" ` +
	`xmlns:ooxmlchart="http://www.hancom.co.kr/hwpml/2016/ooxmlchart" ` +
	`xmlns:hwpunitchar="http://www.hancom.co.kr/hwpml/2016/HwpUnitChar" ` +
	`xmlns:epub="http://www.idpf.org/2007/ops" ` +
	`xmlns:config="urn:oasis:names:tc:opendocument:xmlns:config:1.0"`

// Page geometry in HWPUNIT (A4 portrait, matching the template).
const (
	pageWidth    = 59528
	pageHeight   = 84188
	marginLeft   = 5669
	marginRight  = 5669
	marginTop    = 2834
	marginBottom = 4251
	marginHeader = 4251
	marginFooter = 2834

	defaultHorzSize = 48188 // content width minus rounding
)

// Outline shape references per section kind.
const (
	outlineBody     = "3"
	outlineAppendix = "2"
)

// defaultParaID is the paragraph instance ID the consumer assigns to
// editor-inserted paragraphs; generated paragraphs reuse it.
const defaultParaID = "2147483648"

// baseCharPr is charPr 0, the template's normal text style, used for the
// thin filler runs some paragraph shapes require.
const baseCharPr = "0"

// Title-bar and appendix-bar internals. These identifiers are bound to the
// bundled template family, same as the catalog's default bindings.
const (
	barTableBorderFill = "3"

	titleBarWidth      = 48077
	titleBarTableID    = 1975012386
	titleGradientTopBF = "14"
	titleCellBF        = "9"
	titleGradientBotBF = "15"
	titleTextCharPr    = "1"
	titleGradTopCharPr = "20"
	titleGradBotCharPr = "22"
	titleParaPr        = "15"
	titleStyleID       = "15"
	thinParaPr         = "3"

	appendixBarWidth   = 48159
	appendixBarTableID = 1977606721
	appendixTabWidth   = 5968
	appendixSepWidth   = 565
	appendixTabBF      = "17"
	appendixSepBF      = "10"
	appendixTitleBF    = "11"
	appendixTabCharPr  = "8"
	appendixSepCharPr  = "5"
	appendixPadCharPr  = "6"
	appendixTxtCharPr  = "3"
	appendixTabParaPr  = "18"
	appendixTitlePP    = "16"

	firstParaPr     = "17"
	firstTrailPr    = "10"
	defaultTableID  = 1974981391
	tableTotalWidth = 47622
	tableRowHeight  = 2048
)

// contentMarkers maps content types to their literal marker characters.
var contentMarkers = map[ContentType]string{
	ContentHeading: "□",
	ContentBullet:  "ㅇ",
	ContentDash:    "-",
	ContentStar:    "*",
	ContentNote:    "▷",
}

// renderMeta carries per-section render context resolved by the service.
type renderMeta struct {
	date          string
	department    string
	appendixIndex int // 1-based, appendix sections only
}

// emitter renders sections of one document against one style catalog.
// Emission never fails on validated input; the only error source is style
// resolution against the catalog.
type emitter struct {
	cat *StyleCatalog
}

// renderSection produces the complete section XML document.
func (e *emitter) renderSection(sec Section, meta renderMeta) (string, error) {
	var body string
	var err error
	switch sec.Type {
	case SectionAppendix:
		body, err = e.appendixSection(sec, meta)
	default:
		body, err = e.bodySection(sec, meta)
	}
	if err != nil {
		return "", err
	}
	return `<?xml version="1.0" ?><hs:sec ` + nsDecl + `>` + body + `</hs:sec>`, nil
}

// bodySection renders the title bar paragraph (carrying secPr), the
// date/department line, a spacer, then the content items.
func (e *emitter) bodySection(sec Section, meta renderMeta) (string, error) {
	var b strings.Builder

	title := sec.TitleBar
	if title == "" {
		title = "보고서"
	}

	// First paragraph: secPr + title bar. The consumer locates page
	// geometry by scanning for secPr on the first paragraph only.
	b.WriteString(`<hp:p id="0" paraPrIDRef="` + firstParaPr + `" styleIDRef="0" pageBreak="0" columnBreak="0" merged="0">`)
	b.WriteString(`<hp:run charPrIDRef="` + baseCharPr + `">`)
	b.WriteString(`<hp:ctrl><hp:colPr id="" type="NEWSPAPER" layout="LEFT" colCount="1" sameSz="1" sameGap="0"/></hp:ctrl>`)
	b.WriteString(secPrXML(outlineBody))
	b.WriteString(`</hp:run>`)
	b.WriteString(`<hp:run charPrIDRef="` + baseCharPr + `">` + titleBarXML(title) + `</hp:run>`)
	b.WriteString(`<hp:run charPrIDRef="` + firstTrailPr + `"><hp:t/></hp:run>`)
	b.WriteString(lineseg(SegMetrics{3603, 3603, 3063, 900}, defaultHorzSize))
	b.WriteString(`</hp:p>`)

	if meta.date != "" || meta.department != "" {
		p, err := e.dateLine(meta)
		if err != nil {
			return "", err
		}
		b.WriteString(p)
	}

	spacer, err := e.plainParagraph(StyleSpacer, "")
	if err != nil {
		return "", err
	}
	b.WriteString(spacer)

	if err := e.contentItems(&b, sec.Content); err != nil {
		return "", err
	}
	return b.String(), nil
}

// appendixSection renders the "참고N" tab bar paragraph (carrying secPr), a
// spacer, then the content items.
func (e *emitter) appendixSection(sec Section, meta renderMeta) (string, error) {
	var b strings.Builder

	tab := sec.TitleBar
	if tab == "" {
		tab = fmt.Sprintf("참고%d", meta.appendixIndex)
	}

	b.WriteString(`<hp:p id="` + defaultParaID + `" paraPrIDRef="` + firstParaPr + `" styleIDRef="0" pageBreak="0" columnBreak="0" merged="0">`)
	b.WriteString(`<hp:run charPrIDRef="` + firstTrailPr + `">`)
	b.WriteString(`<hp:ctrl><hp:colPr id="" type="NEWSPAPER" layout="LEFT" colCount="1" sameSz="1" sameGap="0"/></hp:ctrl>`)
	b.WriteString(secPrXML(outlineAppendix))
	b.WriteString(`</hp:run>`)
	b.WriteString(`<hp:run charPrIDRef="` + firstTrailPr + `">` + appendixBarXML(tab, sec.AppendixTitle) + `<hp:t/></hp:run>`)
	b.WriteString(lineseg(SegMetrics{2831, 2831, 2406, 300}, defaultHorzSize))
	b.WriteString(`</hp:p>`)

	gap, err := e.plainParagraph(StyleAppendixGap, "")
	if err != nil {
		return "", err
	}
	b.WriteString(gap)

	if err := e.contentItems(&b, sec.Content); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *emitter) contentItems(b *strings.Builder, items []ContentItem) error {
	for _, item := range items {
		if item.Type == ContentHeading {
			gap, err := e.plainParagraph(StyleHeadingGap, "")
			if err != nil {
				return err
			}
			b.WriteString(gap)
		}
		rendered, err := e.contentItem(item)
		if err != nil {
			return err
		}
		b.WriteString(rendered)
	}
	return nil
}

// contentItem renders one content item to one or more paragraphs.
func (e *emitter) contentItem(item ContentItem) (string, error) {
	switch item.Type {
	case ContentHeading:
		ref, err := e.cat.Lookup(StyleHeading)
		if err != nil {
			return "", err
		}
		runs := run(ref.MarkerCharPr, contentMarkers[ContentHeading]) +
			run(ref.CharPr, " "+item.Text) +
			run(baseCharPr, " ") +
			emptyRun(ref.TrailCharPr)
		return paragraph(ref, runs), nil

	case ContentParagraph:
		return e.markedParagraph(StyleParagraph, " "+item.Text)

	case ContentBullet:
		return e.markedParagraph(StyleBullet, " ㅇ "+item.Text)

	case ContentDash:
		return e.markedParagraph(StyleDash, "   - "+item.Text)

	case ContentStar:
		return e.markedParagraph(StyleStar, "     * "+item.Text)

	case ContentNote:
		ref, err := e.cat.Lookup(StyleNote)
		if err != nil {
			return "", err
		}
		return paragraph(ref, run(ref.CharPr, "▷ "+item.Text)), nil

	case ContentEmpty:
		return e.plainParagraph(StyleEmpty, "")

	case ContentTable:
		return e.dataTable(item)

	default:
		// Unreachable on validated input; see BuildDocument.
		return "", fmt.Errorf("%w: content: unknown content type %q", ErrConfigSchema, item.Type)
	}
}

// markedParagraph renders text (marker already prepended) with the style's
// main run followed by its trailing empty run.
func (e *emitter) markedParagraph(style, text string) (string, error) {
	ref, err := e.cat.Lookup(style)
	if err != nil {
		return "", err
	}
	return paragraph(ref, run(ref.CharPr, text)+emptyRun(ref.TrailCharPr)), nil
}

// plainParagraph renders a paragraph with a single (possibly empty) run.
func (e *emitter) plainParagraph(style, text string) (string, error) {
	ref, err := e.cat.Lookup(style)
	if err != nil {
		return "", err
	}
	if text == "" {
		return paragraph(ref, emptyRun(ref.CharPr)), nil
	}
	return paragraph(ref, run(ref.CharPr, text)), nil
}

// dateLine renders the "('25. 9. 2.(화), 기획예산처)" line under the title bar.
func (e *emitter) dateLine(meta renderMeta) (string, error) {
	ref, err := e.cat.Lookup(StyleDateLine)
	if err != nil {
		return "", err
	}
	runs := run(ref.CharPr, "('"+meta.date+", ") +
		run(ref.TrailCharPr, meta.department) +
		run(ref.CharPr, ")")
	return paragraph(ref, runs), nil
}

// dataTable renders an optional caption paragraph followed by the anchor
// paragraph carrying the tbl element.
func (e *emitter) dataTable(item ContentItem) (string, error) {
	headerRef, err := e.cat.Lookup(StyleTableHeader)
	if err != nil {
		return "", err
	}
	bodyRef, err := e.cat.Lookup(StyleTableBody)
	if err != nil {
		return "", err
	}
	anchorRef, err := e.cat.Lookup(StyleTableAnchor)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if item.Caption != "" {
		capRef, err := e.cat.Lookup(StyleTableCaption)
		if err != nil {
			return "", err
		}
		b.WriteString(paragraph(capRef, run(capRef.CharPr, "< "+item.Caption+" >")))
	}

	tableID := item.TableID
	if tableID == 0 {
		tableID = defaultTableID
	}

	cols := len(item.Headers)
	rows := len(item.Rows) + 1
	widths := columnWidths(tableTotalWidth, cols)

	var tbl strings.Builder
	fmt.Fprintf(&tbl, `<hp:tbl id="%d" zOrder="0" numberingType="TABLE" `+
		`textWrap="TOP_AND_BOTTOM" textFlow="BOTH_SIDES" lock="0" dropcapstyle="None" `+
		`pageBreak="CELL" repeatHeader="1" rowCnt="%d" colCnt="%d" cellSpacing="0" `+
		`borderFillIDRef="%s" noAdjust="0">`, tableID, rows, cols, barTableBorderFill)
	fmt.Fprintf(&tbl, `<hp:sz width="%d" widthRelTo="ABSOLUTE" height="%d" heightRelTo="ABSOLUTE" protect="0"/>`,
		tableTotalWidth, tableRowHeight*rows)
	tbl.WriteString(`<hp:pos treatAsChar="1" affectLSpacing="0" flowWithText="1" allowOverlap="0" ` +
		`holdAnchorAndSO="0" vertRelTo="PARA" horzRelTo="PARA" vertAlign="TOP" horzAlign="LEFT" ` +
		`vertOffset="0" horzOffset="0"/>`)
	tbl.WriteString(`<hp:outMargin left="283" right="283" top="283" bottom="283"/>`)
	tbl.WriteString(`<hp:inMargin left="510" right="510" top="141" bottom="141"/>`)

	tbl.WriteString(`<hp:tr>`)
	for c, hdr := range item.Headers {
		tbl.WriteString(tableCell(c, 0, widths[c], headerRef, hdr))
	}
	tbl.WriteString(`</hp:tr>`)

	for r, row := range item.Rows {
		tbl.WriteString(`<hp:tr>`)
		for c, cell := range row {
			tbl.WriteString(tableCell(c, r+1, widths[c], bodyRef, cell))
		}
		tbl.WriteString(`</hp:tr>`)
	}
	tbl.WriteString(`</hp:tbl>`)

	anchor := `<hp:run charPrIDRef="` + anchorRef.CharPr + `">` + tbl.String() + `<hp:t/></hp:run>`
	b.WriteString(paragraph(anchorRef, anchor))
	return b.String(), nil
}

// columnWidths distributes total evenly, giving rounding remainder to the
// last column.
func columnWidths(total, cols int) []int {
	w := total / cols
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = w
	}
	widths[cols-1] += total - w*cols
	return widths
}

// tableCell renders one cell: tc > subList > p > run + linesegarray.
func tableCell(col, row, width int, ref StyleRef, text string) string {
	innerHorz := width - 1020 // cell margins, 510 each side

	var b strings.Builder
	fmt.Fprintf(&b, `<hp:tc name="" header="0" hasMargin="0" protect="0" editable="0" dirty="0" borderFillIDRef="%s">`,
		ref.BorderFill)
	b.WriteString(`<hp:subList id="" textDirection="HORIZONTAL" lineWrap="BREAK" vertAlign="CENTER" ` +
		`linkListIDRef="0" linkListNextIDRef="0" textWidth="0" textHeight="0" hasTextRef="0" hasNumRef="0">`)
	fmt.Fprintf(&b, `<hp:p id="%s" paraPrIDRef="%s" styleIDRef="%s" pageBreak="0" columnBreak="0" merged="0">`,
		defaultParaID, ref.ParaPr, ref.StyleID)
	b.WriteString(run(ref.CharPr, text))
	b.WriteString(lineseg(ref.Seg, innerHorz))
	b.WriteString(`</hp:p></hp:subList>`)
	fmt.Fprintf(&b, `<hp:cellAddr colAddr="%d" rowAddr="%d"/>`, col, row)
	b.WriteString(`<hp:cellSpan colSpan="1" rowSpan="1"/>`)
	fmt.Fprintf(&b, `<hp:cellSz width="%d" height="%d"/>`, width, tableRowHeight)
	b.WriteString(`<hp:cellMargin left="510" right="510" top="141" bottom="141"/>`)
	b.WriteString(`</hp:tc>`)
	return b.String()
}

// paragraph wraps runs with the style's paragraph shell and the mandatory
// trailing linesegarray.
func paragraph(ref StyleRef, runs string) string {
	return `<hp:p id="` + defaultParaID + `" paraPrIDRef="` + ref.ParaPr +
		`" styleIDRef="` + ref.StyleID +
		`" pageBreak="0" columnBreak="0" merged="0">` +
		runs + lineseg(ref.Seg, defaultHorzSize) + `</hp:p>`
}

// run renders a text run, escaping reserved characters.
func run(charPr, text string) string {
	if text == "" {
		return emptyRun(charPr)
	}
	return `<hp:run charPrIDRef="` + charPr + `"><hp:t>` + xmlutil.EscapeText(text) + `</hp:t></hp:run>`
}

// emptyRun renders a run with no text. Empty charPr elides the run
// entirely, for styles without a trailing run.
func emptyRun(charPr string) string {
	if charPr == "" {
		return ""
	}
	return `<hp:run charPrIDRef="` + charPr + `"/>`
}

// lineseg renders the linesegarray element every paragraph must end with.
func lineseg(seg SegMetrics, horzSize int) string {
	return fmt.Sprintf(`<hp:linesegarray><hp:lineseg textpos="0" vertpos="0" `+
		`vertsize="%d" textheight="%d" baseline="%d" spacing="%d" `+
		`horzpos="0" horzsize="%d" flags="393216"/></hp:linesegarray>`,
		seg.VertSize, seg.TextHeight, seg.Baseline, seg.Spacing, horzSize)
}

// secPrXML renders the section properties element carried by the first
// paragraph of every section.
func secPrXML(outlineRef string) string {
	return fmt.Sprintf(`<hp:secPr id="" textDirection="HORIZONTAL" spaceColumns="1134" `+
		`tabStop="8000" tabStopVal="4000" tabStopUnit="HWPUNIT" outlineShapeIDRef="%s" `+
		`memoShapeIDRef="0" textVerticalWidthHead="0" masterPageCnt="0">`+
		`<hp:grid lineGrid="0" charGrid="0" wonggojiFormat="0"/>`+
		`<hp:startNum pageStartsOn="BOTH" page="0" pic="0" tbl="0" equation="0"/>`+
		`<hp:visibility hideFirstHeader="0" hideFirstFooter="0" hideFirstMasterPage="0" `+
		`border="SHOW_ALL" fill="SHOW_ALL" hideFirstPageNum="0" hideFirstEmptyLine="0" showLineNumber="0"/>`+
		`<hp:lineNumberShape restartType="0" countBy="0" distance="0" startNumber="0"/>`+
		`<hp:pagePr landscape="WIDELY" width="%d" height="%d" gutterType="LEFT_ONLY">`+
		`<hp:margin header="%d" footer="%d" gutter="0" left="%d" right="%d" top="%d" bottom="%d"/>`+
		`</hp:pagePr>`+
		`<hp:footNotePr>`+
		`<hp:autoNumFormat type="DIGIT" userChar="" prefixChar="" suffixChar=")" supscript="0"/>`+
		`<hp:noteLine length="-1" type="SOLID" width="0.12 mm" color="#000000"/>`+
		`<hp:noteSpacing betweenNotes="283" belowLine="567" aboveLine="850"/>`+
		`<hp:numbering type="CONTINUOUS" newNum="1"/>`+
		`<hp:placement place="EACH_COLUMN" beneathText="0"/>`+
		`</hp:footNotePr>`+
		`<hp:endNotePr>`+
		`<hp:autoNumFormat type="DIGIT" userChar="" prefixChar="" suffixChar=")" supscript="0"/>`+
		`<hp:noteLine length="14692344" type="SOLID" width="0.12 mm" color="#000000"/>`+
		`<hp:noteSpacing betweenNotes="0" belowLine="567" aboveLine="850"/>`+
		`<hp:numbering type="CONTINUOUS" newNum="1"/>`+
		`<hp:placement place="END_OF_DOCUMENT" beneathText="0"/>`+
		`</hp:endNotePr>`+
		pageBorderFills()+
		`</hp:secPr>`,
		outlineRef, pageWidth, pageHeight,
		marginHeader, marginFooter, marginLeft, marginRight, marginTop, marginBottom)
}

func pageBorderFills() string {
	var b strings.Builder
	for _, typ := range []string{"BOTH", "EVEN", "ODD"} {
		fmt.Fprintf(&b, `<hp:pageBorderFill type="%s" borderFillIDRef="1" textBorder="PAPER" `+
			`headerInside="0" footerInside="0" fillArea="PAPER">`+
			`<hp:offset left="1417" right="1417" top="1417" bottom="1417"/>`+
			`</hp:pageBorderFill>`, typ)
	}
	return b.String()
}

// titleBarXML renders the 3-row gradient title bar of a body section.
func titleBarXML(title string) string {
	gradRow := func(rowAddr int, bf, charPr string) string {
		return `<hp:tr>` + barCell(bf, thinParaPr, "0", 0, rowAddr, titleBarWidth, 380,
			emptyRun(charPr), SegMetrics{100, 100, 85, 60}, 47796, 141) + `</hp:tr>`
	}

	titleRuns := run(titleTextCharPr, title) + emptyRun(baseCharPr)
	titleRow := `<hp:tr>` + barCell(titleCellBF, titleParaPr, titleStyleID, 0, 1, titleBarWidth, 2563,
		titleRuns, SegMetrics{2000, 2000, 1700, 1800}, 47796, 141) + `</hp:tr>`

	return fmt.Sprintf(`<hp:tbl id="%d" zOrder="2" numberingType="TABLE" `+
		`textWrap="TOP_AND_BOTTOM" textFlow="BOTH_SIDES" lock="0" dropcapstyle="None" `+
		`pageBreak="NONE" repeatHeader="1" rowCnt="3" colCnt="1" cellSpacing="0" `+
		`borderFillIDRef="%s" noAdjust="0">`+
		`<hp:sz width="%d" widthRelTo="ABSOLUTE" height="3323" heightRelTo="ABSOLUTE" protect="0"/>`+
		`<hp:pos treatAsChar="1" affectLSpacing="0" flowWithText="1" allowOverlap="0" `+
		`holdAnchorAndSO="0" vertRelTo="PARA" horzRelTo="PARA" vertAlign="TOP" horzAlign="LEFT" `+
		`vertOffset="0" horzOffset="0"/>`+
		`<hp:outMargin left="140" right="140" top="140" bottom="140"/>`+
		`<hp:inMargin left="140" right="140" top="140" bottom="140"/>`+
		`%s%s%s</hp:tbl>`,
		titleBarTableID, barTableBorderFill, titleBarWidth,
		gradRow(0, titleGradientTopBF, titleGradTopCharPr),
		titleRow,
		gradRow(2, titleGradientBotBF, titleGradBotCharPr))
}

// appendixBarXML renders the tab | separator | title bar of an appendix
// section.
func appendixBarXML(tabLabel, title string) string {
	titleWidth := appendixBarWidth - appendixTabWidth - appendixSepWidth

	cells := barCell(appendixTabBF, appendixTabParaPr, "0", 0, 0, appendixTabWidth, 2831,
		run(appendixTabCharPr, tabLabel), SegMetrics{1600, 1600, 1360, 960}, appendixTabWidth-284, 141) +
		barCell(appendixSepBF, thinParaPr, "0", 1, 0, appendixSepWidth, 2831,
			emptyRun(appendixSepCharPr), SegMetrics{1550, 1550, 1318, 928}, 1440, 141) +
		barCell(appendixTitleBF, appendixTitlePP, "0", 2, 0, titleWidth, 2831,
			run(appendixPadCharPr, " ")+run(appendixTxtCharPr, title), SegMetrics{1600, 1600, 1360, 480}, titleWidth-282, 141)

	return fmt.Sprintf(`<hp:tbl id="%d" zOrder="3" numberingType="TABLE" `+
		`textWrap="TOP_AND_BOTTOM" textFlow="BOTH_SIDES" lock="0" dropcapstyle="None" `+
		`pageBreak="CELL" repeatHeader="1" rowCnt="1" colCnt="3" cellSpacing="0" `+
		`borderFillIDRef="%s" noAdjust="0">`+
		`<hp:sz width="%d" widthRelTo="ABSOLUTE" height="2831" heightRelTo="ABSOLUTE" protect="0"/>`+
		`<hp:pos treatAsChar="1" affectLSpacing="0" flowWithText="1" allowOverlap="0" `+
		`holdAnchorAndSO="0" vertRelTo="PARA" horzRelTo="PARA" vertAlign="TOP" horzAlign="LEFT" `+
		`vertOffset="0" horzOffset="0"/>`+
		`<hp:outMargin left="0" right="0" top="0" bottom="0"/>`+
		`<hp:inMargin left="141" right="141" top="141" bottom="141"/>`+
		`<hp:tr>%s</hp:tr></hp:tbl>`,
		appendixBarTableID, barTableBorderFill, appendixBarWidth, cells)
}

// barCell renders one title/appendix bar cell.
func barCell(bf, paraPr, styleID string, col, row, width, height int, runs string, seg SegMetrics, horz, cellMargin int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<hp:tc name="" header="0" hasMargin="0" protect="0" editable="0" dirty="0" borderFillIDRef="%s">`, bf)
	b.WriteString(`<hp:subList id="" textDirection="HORIZONTAL" lineWrap="BREAK" vertAlign="CENTER" ` +
		`linkListIDRef="0" linkListNextIDRef="0" textWidth="0" textHeight="0" hasTextRef="0" hasNumRef="0">`)
	fmt.Fprintf(&b, `<hp:p id="%s" paraPrIDRef="%s" styleIDRef="%s" pageBreak="0" columnBreak="0" merged="0">`,
		defaultParaID, paraPr, styleID)
	b.WriteString(runs)
	b.WriteString(lineseg(seg, horz))
	b.WriteString(`</hp:p></hp:subList>`)
	fmt.Fprintf(&b, `<hp:cellAddr colAddr="%d" rowAddr="%d"/>`, col, row)
	b.WriteString(`<hp:cellSpan colSpan="1" rowSpan="1"/>`)
	fmt.Fprintf(&b, `<hp:cellSz width="%d" height="%d"/>`, width, height)
	fmt.Fprintf(&b, `<hp:cellMargin left="%d" right="%d" top="141" bottom="141"/>`, cellMargin, cellMargin)
	b.WriteString(`</hp:tc>`)
	return b.String()
}
