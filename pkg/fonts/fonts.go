// Package fonts provides the fourteen standard PDF Type1 fonts and their
// metric tables.
//
// No font data is embedded: every conforming viewer ships these fonts, so a
// document only needs to reference them by name. What the writer does need
// is the advance width of each character so that text can be measured and
// anchored before it is placed on the page.
//
// # Font Selection
//
// A [Font] is an index into the builtin table. The base families can be
// combined with style flags:
//
//	fonts.Helvetica | fonts.Bold          // Helvetica-Bold
//	fonts.Times | fonts.Bold | fonts.Italic // Times-BoldItalic
//
// Symbol and ZapfDingbats have no styled variants; [Font.Index] folds any
// flags applied to them back onto the plain face.
//
// # Measurement
//
// [Width] and [MultilineWidth] measure strings in points at a given scale.
// Strings are first encoded with [Encode], so the measured bytes are exactly
// the bytes that end up in the content stream.
package fonts

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Font identifies a builtin font, optionally combined with style flags.
type Font int

// Builtin font indices.
const (
	Times                 Font = 0
	TimesBold             Font = 1
	TimesItalic           Font = 2
	TimesBoldItalic       Font = 3
	Helvetica             Font = 4
	HelveticaBold         Font = 5
	HelveticaOblique      Font = 6
	HelveticaBoldOblique  Font = 7
	Courier               Font = 8
	CourierBold           Font = 9
	CourierOblique        Font = 10
	CourierBoldOblique    Font = 11
	Symbol                Font = 12
	ZapfDingbats          Font = 16
	zapfDingbatsNormIndex      = 13
)

// Style flags, added to a base family.
const (
	Bold    Font = 1
	Italic  Font = 2
	Oblique Font = 2
)

// Count is the number of distinct builtin fonts.
const Count = 14

// WidthScale converts table widths (1/1000 em) to em units.
const WidthScale = 1.0 / 1000.0

var names = [Count]string{
	"Times-Roman",
	"Times-Bold",
	"Times-Italic",
	"Times-BoldItalic",
	"Helvetica",
	"Helvetica-Bold",
	"Helvetica-Oblique",
	"Helvetica-BoldOblique",
	"Courier",
	"Courier-Bold",
	"Courier-Oblique",
	"Courier-BoldOblique",
	"Symbol",
	"ZapfDingbats",
}

// Index returns the table index of f in [0, Count).
// Negative values map to Times; styled Symbol variants map to Symbol and
// anything at or beyond ZapfDingbats maps to ZapfDingbats.
func (f Font) Index() int {
	switch {
	case f < 0:
		return 0
	case f >= Symbol && f < ZapfDingbats:
		return int(Symbol)
	case f >= ZapfDingbats:
		return zapfDingbatsNormIndex
	default:
		return int(f)
	}
}

// Name returns the PostScript base font name of f.
func (f Font) Name() string {
	return names[f.Index()]
}

// String implements fmt.Stringer.
func (f Font) String() string {
	return f.Name()
}

// ByIndex returns the font stored at table index i.
// It reports false if i is out of range.
func ByIndex(i int) (Font, bool) {
	if i < 0 || i >= Count {
		return 0, false
	}
	if i == zapfDingbatsNormIndex {
		return ZapfDingbats, true
	}
	return Font(i), true
}

// Lookup finds a font by its base font name, ignoring case.
func Lookup(name string) (Font, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return ByIndex(i)
		}
	}
	return 0, false
}

// All returns every builtin font in index order.
func All() []Font {
	out := make([]Font, Count)
	for i := range out {
		out[i], _ = ByIndex(i)
	}
	return out
}

// =============================================================================
// Encoding and Measurement
// =============================================================================

// Encode converts s to the single-byte MacRoman encoding declared for every
// font resource. Runes with no MacRoman code are replaced by '?'.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.Macintosh.EncodeRune(r); ok {
			out = append(out, b)
		} else {
			out = append(out, '?')
		}
	}
	return out
}

// CharWidth returns the advance width of byte c in f, in 1/1000 em.
func CharWidth(f Font, c byte) int {
	return int(widths[f.Index()][c])
}

// WidthBytes returns the width in points of already encoded text.
func WidthBytes(text []byte, f Font, scale float64) float64 {
	row := &widths[f.Index()]
	w := 0
	for _, c := range text {
		w += int(row[c])
	}
	return scale * float64(w) * WidthScale
}

// Width returns the width in points of the single-line string s set in f at
// the given scale. Newlines are measured like any other character.
func Width(s string, f Font, scale float64) float64 {
	return WidthBytes(Encode(s), f, scale)
}

// MultilineWidth returns the width of the widest newline-separated line of s.
func MultilineWidth(s string, f Font, scale float64) float64 {
	var widest float64
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, Width(line, f, scale))
	}
	return widest
}

// CountLines returns the number of newline-separated lines in s.
// The empty string counts as one line.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}
