package pdf

import (
	"bytes"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"github.com/ensaf/contracts-service/internal/arabic"
	"github.com/ensaf/contracts-service/internal/model"
)

const (
	disclaimerAR = "تنويه: هذا نموذج استرشادي وليس استشارة قانونية."
	disclaimerEN = "Disclaimer: This is a template for reference only, not legal advice."

	pageMargin = 15.0
	cellPad    = 2.0

	// headerGap separates the section number from its title. The spaces are
	// non-breaking so Arabic wrapping keeps them.
	headerGap = "\u00a0\u00a0\u00a0\u00a0"
)

type rgb struct{ r, g, b int }

var (
	colorHeader     = rgb{26, 122, 122}
	colorWhite      = rgb{255, 255, 255}
	colorText       = rgb{33, 37, 41}
	colorClause     = rgb{248, 249, 250}
	colorBorder     = rgb{222, 226, 230}
	colorHighlight  = rgb{232, 245, 233}
	colorNote       = rgb{255, 243, 205}
	colorNoteText   = rgb{26, 95, 42}
	colorDisclaimer = rgb{255, 193, 7}
)

// RenderError carries the stack of a failed render.
type RenderError struct {
	Err   error
	Trace string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v\n%s", e.Err, e.Trace)
}

func (e *RenderError) Unwrap() error { return e.Err }

type Generator struct {
	fontName string
	fonts    fontData
	now      func() time.Time

	// onWrap, when set, sees every column after wrapping.
	onWrap func(col column, lines []string)
}

// NewGenerator loads the font family once; every Generate call shares the
// bytes read-only.
func NewGenerator(resolver FontResolver) (*Generator, error) {
	fonts, err := loadFonts(resolver)
	if err != nil {
		return nil, err
	}
	return &Generator{fontName: "Arabic", fonts: fonts, now: time.Now}, nil
}

func (g *Generator) Generate(doc model.ContractDocument) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RenderError{Err: fmt.Errorf("render contract: %v", r), Trace: string(debug.Stack())}
		}
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCreationDate(g.now())
	pdf.SetTitle(printable(doc.TitleEN), true)
	pdf.SetCreator("Ensaf", true)
	pdf.AddUTF8FontFromBytes(g.fontName, "", g.fonts.regular)
	pdf.AddUTF8FontFromBytes(g.fontName, "B", g.fonts.bold)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(g.fontName, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := &writer{pdf: pdf, font: g.fontName, onWrap: g.onWrap}
	w.title(doc)
	for _, section := range doc.Sections {
		w.section(section)
	}
	w.disclaimer()

	if err := pdf.Error(); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("render contract: %w", err), Trace: string(debug.Stack())}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("write contract: %w", err), Trace: string(debug.Stack())}
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf    *gofpdf.Fpdf
	font   string
	onWrap func(col column, lines []string)
}

type cellStyle struct {
	fill   rgb
	text   rgb
	border bool
	bold   bool
	size   float64
	lineH  float64
}

type column struct {
	width float64
	text  string
	rtl   bool
	align string
}

func (w *writer) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

func (w *writer) title(doc model.ContractDocument) {
	pdf := w.pdf
	pdf.SetTextColor(colorText.r, colorText.g, colorText.b)
	pdf.SetFont(w.font, "B", 16)
	pdf.CellFormat(0, 9, arabic.Display(printable(doc.TitleAR)), "", 1, "C", false, 0, "")
	pdf.SetFont(w.font, "B", 14)
	pdf.CellFormat(0, 8, printable(doc.TitleEN), "", 1, "C", false, 0, "")
	if doc.Date != "" {
		pdf.SetFont(w.font, "", 9)
		pdf.CellFormat(0, 6, "Date: "+printable(doc.Date), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func (w *writer) section(section model.ContractSection) {
	half := w.contentWidth() / 2
	header := cellStyle{fill: colorHeader, text: colorWhite, bold: true, size: 10, lineH: 5}
	w.block(header,
		column{width: half, text: fmt.Sprintf("%d    %s", section.Num, section.TitleEN), align: "L"},
		column{width: half, text: fmt.Sprintf("%d%s%s", section.Num, headerGap, section.TitleAR), rtl: true, align: "R"},
	)

	clause := cellStyle{fill: colorClause, text: colorText, border: true, size: 9, lineH: 4.5}
	switch section.Kind {
	case model.SectionKindRows:
		w.rows(section)
	case model.SectionKindClause:
		w.block(clause,
			column{width: half, text: section.TextEN, align: "L"},
			column{width: half, text: section.TextAR, rtl: true, align: "R"},
		)
	case model.SectionKindClauses:
		for _, c := range section.Clauses {
			w.block(clause,
				column{width: half, text: c.EN, align: "L"},
				column{width: half, text: c.AR, rtl: true, align: "R"},
			)
		}
	}
	w.pdf.Ln(3)
}

func (w *writer) rows(section model.ContractSection) {
	total := w.contentWidth()
	for _, row := range section.Rows {
		style := cellStyle{fill: colorWhite, text: colorText, border: true, size: 9, lineH: 4.5}
		if row.Highlight {
			style.fill = colorHighlight
			style.bold = true
		}
		w.block(style,
			column{width: total * 0.30, text: row.EN, align: "L"},
			column{width: total * 0.40, text: row.Val, rtl: arabic.ContainsArabic(row.Val), align: "C"},
			column{width: total * 0.30, text: row.AR, rtl: true, align: "R"},
		)
		if row.HasNote() {
			w.note(row.NoteEN, row.NoteAR)
		}
	}
	if section.FooterAR != "" || section.FooterEN != "" {
		footer := cellStyle{fill: colorHighlight, text: colorText, size: 9, lineH: 4.5}
		w.block(footer,
			column{width: total / 2, text: section.FooterEN, align: "L"},
			column{width: total / 2, text: section.FooterAR, rtl: true, align: "R"},
		)
	}
}

func (w *writer) note(en, ar string) {
	style := cellStyle{fill: colorNote, text: colorNoteText, size: 8, lineH: 4}
	width := w.contentWidth()
	w.setFont(style)
	var lines []string
	if en != "" {
		lines = w.wrap(en, width-2*cellPad, false)
	}
	if ar != "" {
		lines = append(lines, w.wrap(ar, width-2*cellPad, true)...)
	}
	w.draw(style, []float64{width}, [][]string{lines}, []string{"C"})
}

func (w *writer) disclaimer() {
	w.pdf.Ln(6)
	half := w.contentWidth() / 2
	style := cellStyle{fill: colorNote, text: colorText, border: true, size: 9, lineH: 5}
	w.pdf.SetDrawColor(colorDisclaimer.r, colorDisclaimer.g, colorDisclaimer.b)
	w.block(style,
		column{width: half, text: disclaimerEN, align: "L"},
		column{width: half, text: disclaimerAR, rtl: true, align: "R"},
	)
}

func (w *writer) setFont(style cellStyle) {
	fontStyle := ""
	if style.bold {
		fontStyle = "B"
	}
	w.pdf.SetFont(w.font, fontStyle, style.size)
}

// block lays out one horizontal band of columns, breaking the page first
// when the band does not fit.
func (w *writer) block(style cellStyle, cols ...column) {
	w.setFont(style)
	widths := make([]float64, len(cols))
	lines := make([][]string, len(cols))
	aligns := make([]string, len(cols))
	for i, col := range cols {
		widths[i] = col.width
		lines[i] = w.wrap(col.text, col.width-2*cellPad, col.rtl)
		aligns[i] = col.align
		if w.onWrap != nil {
			w.onWrap(col, lines[i])
		}
	}
	w.draw(style, widths, lines, aligns)
}

func (w *writer) draw(style cellStyle, widths []float64, lines [][]string, aligns []string) {
	pdf := w.pdf
	w.setFont(style)

	maxLines := 1
	for _, col := range lines {
		if len(col) > maxLines {
			maxLines = len(col)
		}
	}
	height := float64(maxLines)*style.lineH + 2*cellPad

	_, pageH := pdf.GetPageSize()
	left, top, _, bottom := pdf.GetMargins()
	if pdf.GetY()+height > pageH-bottom && pdf.GetY() > top+1 {
		pdf.AddPage()
	}

	y := pdf.GetY()
	x := left
	pdf.SetFillColor(style.fill.r, style.fill.g, style.fill.b)
	if style.border {
		pdf.SetLineWidth(0.25)
	}
	pdf.SetTextColor(style.text.r, style.text.g, style.text.b)
	for i, width := range widths {
		mode := "F"
		if style.border {
			mode = "FD"
		}
		pdf.Rect(x, y, width, height, mode)
		for n, line := range lines[i] {
			pdf.SetXY(x+cellPad, y+cellPad+float64(n)*style.lineH)
			pdf.CellFormat(width-2*cellPad, style.lineH, line, "", 0, aligns[i], false, 0, "")
		}
		x += width
	}
	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	pdf.SetXY(left, y+height)
}

// wrap splits text to fit width with the current font. Arabic text is wrapped
// in logical order and each line is converted to visual order afterwards,
// so the first visual line holds the start of the sentence. Arabic words
// break on ASCII whitespace only, so non-breaking spaces survive.
func (w *writer) wrap(text string, width float64, rtl bool) []string {
	text = printable(text)
	if strings.TrimSpace(text) == "" {
		return []string{""}
	}
	if !rtl {
		lines := w.pdf.SplitText(text, width)
		if len(lines) == 0 {
			return []string{""}
		}
		return lines
	}

	var logical []string
	current := ""
	for _, word := range strings.FieldsFunc(text, isBreak) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && w.pdf.GetStringWidth(arabic.Shape(candidate)) > width {
			logical = append(logical, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		logical = append(logical, current)
	}

	visual := make([]string, len(logical))
	for i, line := range logical {
		visual[i] = arabic.Display(line)
	}
	return visual
}

func isBreak(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// printable replaces runes outside the Basic Multilingual Plane with U+FFFD.
// gofpdf's UTF-8 width table only covers the BMP and panics on anything else.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return utf8.RuneError
		}
		return r
	}, s)
}
