package pdf

import (
	"fmt"

	"github.com/matzehuels/stepdoc/pkg/fonts"
)

// SelectFont makes f at the given scale the current font and records it as
// a document resource. Inside a text block it also emits "Tf".
func (d *Document) SelectFont(f fonts.Font, scale float64) {
	idx := f.Index()
	d.font, _ = fonts.ByIndex(idx)
	d.scale = scale
	d.used[idx] = true
	if d.inText {
		d.emit("/F%d %.6f Tf", idx, scale)
	}
}

// BeginText opens a text block ("BT") and re-selects the current font.
func (d *Document) BeginText() {
	d.emit("BT")
	d.inText = true
	d.SelectFont(d.font, d.scale)
}

// EndText closes the text block ("ET").
func (d *Document) EndText() {
	d.emit("ET")
	d.inText = false
}

// NextLine moves to the start of the next line, offset by (tx, ty) from the
// start of the current one ("Td").
func (d *Document) NextLine(tx, ty float64) { d.emit("%.3f %.3f Td", tx, ty) }

// NextLineLeading is NextLine that also sets the leading to -ty ("TD").
func (d *Document) NextLineLeading(tx, ty float64) { d.emit("%.3f %.3f TD", tx, ty) }

// NextLineStart moves to the start of the next line using the current
// leading ("T*").
func (d *Document) NextLineStart() { d.emit("T*") }

// TextMatrix sets the text and text line matrices ("Tm").
func (d *Document) TextMatrix(a, b, c, dd, e, f float64) {
	d.emit("%.4f %.4f %.4f %.4f %.4f %.4f Tm", a, b, c, dd, e, f)
}

// Show paints s at the current text position ("Tj").
func (d *Document) Show(s string) {
	d.showOp("", s, "Tj")
}

// ShowNextLine moves to the next line and paints s ("'").
func (d *Document) ShowNextLine(s string) {
	d.showOp("", s, "'")
}

// ShowNextLineSpaced sets word and character spacing, moves to the next line
// and paints s ("\"").
func (d *Document) ShowNextLineSpaced(wordSpace, charSpace float64, s string) {
	d.showOp(fmt.Sprintf("%.4f %.4f ", wordSpace, charSpace), s, "\"")
}

func (d *Document) showOp(prefix, s, op string) {
	if d.err != nil || d.finished {
		return
	}
	d.scratch = append(d.scratch[:0], prefix...)
	d.scratch = appendString(d.scratch, fonts.Encode(s))
	d.scratch = append(d.scratch, ' ')
	d.scratch = append(d.scratch, op...)
	d.flush()
}

// appendString appends text as a PDF literal string, escaping the
// delimiters and the escape character.
func appendString(dst, text []byte) []byte {
	dst = append(dst, '(')
	for _, c := range text {
		switch c {
		case '(', ')', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, ')')
}
