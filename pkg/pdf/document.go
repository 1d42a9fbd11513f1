package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/fonts"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// Defaults for [New].
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
	MaxPages     = 1024
)

// Option configures a Document.
type Option func(*Document)

// WithPageSize sets the media box of every page, in points.
func WithPageSize(width, height float64) Option {
	return func(d *Document) { d.width, d.height = width, height }
}

// WithMaxPages overrides the page limit. Values below 1 are ignored.
func WithMaxPages(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxPages = n
		}
	}
}

// WithLogger sets the logger used for debug output and skipped comments.
func WithLogger(l *log.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithOnPage registers a callback invoked whenever a page is closed, with the
// zero-based page index and its annotation.
func WithOnPage(fn func(index int, annotation string)) Option {
	return func(d *Document) { d.onPage = fn }
}

// Document is an in-memory PDF document under construction.
type Document struct {
	width, height float64
	maxPages      int
	logger        *log.Logger
	onPage        func(int, string)

	pages []*Page
	used  [fonts.Count]bool

	m      Matrix
	stroke Color
	fill   Color
	font   fonts.Font
	scale  float64

	cur    geom.Point
	hasCur bool
	inText bool

	scratch  []byte
	err      error
	finished bool
}

// New returns an empty Letter-sized document with one blank page.
func New(opts ...Option) *Document {
	d := &Document{
		width:    LetterWidth,
		height:   LetterHeight,
		maxPages: MaxPages,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		font:     fonts.Times,
		scale:    1,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.pages = []*Page{{}}
	d.initPage()
	return d
}

// Width returns the page width in points.
func (d *Document) Width() float64 { return d.width }

// Height returns the page height in points.
func (d *Document) Height() float64 { return d.height }

// PageCount returns the number of pages started so far.
func (d *Document) PageCount() int { return len(d.pages) }

// Page returns page i, or nil if i is out of range.
func (d *Document) Page(i int) *Page {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}

// Err returns the first error recorded by any operator.
func (d *Document) Err() error { return d.err }

// UsedFonts returns every font selected so far, in resource order.
func (d *Document) UsedFonts() []fonts.Font {
	var out []fonts.Font
	for i, u := range d.used {
		if u {
			f, _ := fonts.ByIndex(i)
			out = append(out, f)
		}
	}
	return out
}

// Transform returns the current page transform.
func (d *Document) Transform() Matrix { return d.m }

// SetTransform replaces the page transform. It applies to path operators
// issued afterwards and is reset by [Document.NewPage].
func (d *Document) SetTransform(m Matrix) { d.m = m }

// CurrentPoint returns the current point in user space, if there is one.
func (d *Document) CurrentPoint() (geom.Point, bool) { return d.cur, d.hasCur }

// StrokeColor returns the color used for stroking.
func (d *Document) StrokeColor() Color { return d.stroke }

// FillColor returns the color used for filling and text.
func (d *Document) FillColor() Color { return d.fill }

// Font returns the current font and its scale.
func (d *Document) Font() (fonts.Font, float64) { return d.font, d.scale }

// =============================================================================
// Pages
// =============================================================================

// NewPage closes the current page and starts a fresh one with the given
// annotation. The very first page is reused while it is still empty.
func (d *Document) NewPage(annotation string) {
	if d.err != nil || d.finished {
		return
	}
	if len(d.pages) > 1 || !d.current().Content.Empty() {
		d.finishPage()
		if d.err != nil {
			return
		}
		if len(d.pages) >= d.maxPages {
			d.fail(errors.New(errors.ErrCodeTooManyPages, "document exceeds %d pages", d.maxPages))
			return
		}
		d.pages = append(d.pages, &Page{})
		d.initPage()
	}
	if annotation != "" {
		d.current().Annotation = annotation
	}
	d.logger.Debug("page", "index", len(d.pages)-1, "annotation", annotation)
}

// TitlePage starts a new page and centers up to three blocks of text on it.
// The subtitle is set at 0.707 and the author line at 0.5 of scale. Empty
// strings are skipped.
func (d *Document) TitlePage(title, subtitle, author string, font fonts.Font, scale float64) {
	d.NewPage("")
	mid := d.width / 2
	y := d.height/2 + 144
	for _, part := range []struct {
		text  string
		scale float64
	}{
		{title, scale},
		{subtitle, scale * 0.707},
		{author, scale * 0.5},
	} {
		if part.text == "" {
			continue
		}
		d.SelectFont(font, part.scale)
		d.PositionText(part.text, mid, y, 0.5, 0)
		y -= scale*float64(fonts.CountLines(part.text)) + 20
	}
}

// Comment writes text into the content stream as PDF comments, one per
// line. Lines too long for a single record are skipped.
func (d *Document) Comment(text string) {
	if d.err != nil || d.finished {
		return
	}
	for _, line := range splitLines(text) {
		if len(line)+1 >= MaxRecord-1 {
			d.logger.Warn("comment line too long, skipped", "len", len(line))
			continue
		}
		d.scratch = append(append(d.scratch[:0], '%'), line...)
		d.current().Content.record(d.scratch)
	}
}

func (d *Document) current() *Page {
	return d.pages[len(d.pages)-1]
}

func (d *Document) initPage() {
	d.inText = false
	d.hasCur = false
	d.m = Identity
}

// finishPage draws the annotation of the current page.
func (d *Document) finishPage() {
	p := d.current()
	if p.Annotation != "" {
		d.SelectFont(fonts.HelveticaOblique, 12)
		d.SetFillColor(Black)
		d.PositionText(p.Annotation, 72, d.height-72-12, 0, 0)
	}
	if d.onPage != nil && d.err == nil {
		d.onPage(len(d.pages)-1, p.Annotation)
	}
}

// =============================================================================
// Records
// =============================================================================

func (d *Document) fail(err error) {
	if d.err == nil {
		d.err = err
		d.logger.Debug("document failed", "err", err)
	}
}

// emit formats one record into the scratch buffer and appends it to the
// current page.
func (d *Document) emit(format string, args ...any) {
	if d.err != nil || d.finished {
		return
	}
	d.scratch = fmt.Appendf(d.scratch[:0], format, args...)
	d.flush()
}

func (d *Document) flush() {
	if len(d.scratch) >= MaxRecord {
		d.fail(errors.New(errors.ErrCodeStringTooLong, "record of %d bytes exceeds %d", len(d.scratch), MaxRecord))
		return
	}
	d.current().Content.record(d.scratch)
}

// point emits a record whose operands are user-space points mapped through
// the page transform.
func (d *Document) point(op string, pts ...geom.Point) {
	if d.err != nil || d.finished {
		return
	}
	d.scratch = d.scratch[:0]
	for _, p := range pts {
		q := d.m.Apply(p)
		d.scratch = fmt.Appendf(d.scratch, "%.3f %.3f ", q.X, q.Y)
	}
	d.scratch = append(d.scratch, op...)
	d.flush()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = s[i+1:]
		if s == "" {
			return out
		}
	}
}
