package pdf

import (
	"github.com/matzehuels/stepdoc/pkg/fonts"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// emHeight approximates the cap height of the builtin fonts, relative to
// the font scale.
const emHeight = 0.66667

// textHeight returns the height of a block of n lines at the given scale,
// with the leading equal to the scale.
func textHeight(n int, scale float64) float64 {
	return float64(n-1)*scale + emHeight*scale
}

// PositionText sets text in the current font so that the point (hFrac,
// vFrac) of its bounding box lands on (x, y). hFrac 0 puts the left edge at
// x, 0.5 centers and 1 right-aligns; vFrac does the same from the baseline of
// the last line upwards. Each line of a multi-line string is aligned on its
// own.
//
// Text positions are in device space; the page transform is not applied.
func (d *Document) PositionText(text string, x, y, hFrac, vFrac float64) {
	leading := d.scale
	lines := splitLines(text)
	n := fonts.CountLines(text)
	height := textHeight(n, d.scale)

	d.BeginText()
	d.NextLine(x, y)
	d.NextLine(0, -(float64(n-1)*leading + vFrac*height))
	for _, line := range lines {
		w := fonts.Width(line, d.font, d.scale)
		if hFrac != 0 {
			d.NextLine(-w*hFrac, 0)
		}
		d.Show(line)
		if hFrac != 0 {
			d.NextLine(w*hFrac, 0)
		}
		d.NextLine(0, -leading)
	}
	d.EndText()
}

// TextBox draws text centered on c inside a filled, outlined box with
// rounded corners of radius r. The box fits the text plus margin on every
// side and is at least minSize before the margin is added. The box is filled
// with the fill color; the text and outline use the stroke color.
func (d *Document) TextBox(text string, c geom.Point, margin, r float64, minSize geom.Point) {
	w := max(fonts.MultilineWidth(text, d.font, d.scale), minSize.X) + 2*margin
	h := max(textHeight(fonts.CountLines(text), d.scale), minSize.Y) + 2*margin
	corner := geom.Pt(c.X-w/2, c.Y-h/2)
	size := geom.Pt(w, h)

	d.RoundBoxPath(corner, size, r)
	d.Fill()

	fill := d.fill
	d.SetFillColor(d.stroke)
	d.PositionText(text, c.X, c.Y, 0.5, 0.5)
	d.SetFillColor(fill)

	d.RoundBoxPath(corner, size, r)
	d.Stroke()
}
