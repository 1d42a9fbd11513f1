package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/fonts"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// xrefOffsets parses the cross-reference table and startxref of a finished
// document.
func xrefOffsets(t *testing.T, out []byte) (offsets []int, startXref int) {
	t.Helper()
	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(out)
	require.NotNil(t, m, "missing startxref trailer")
	startXref, err := strconv.Atoi(string(m[1]))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out[startXref:], []byte("xref\n0 ")))

	lines := strings.Split(string(out[startXref:]), "\n")
	var n int
	_, err = fmt.Sscanf(lines[1], "0 %d", &n)
	require.NoError(t, err)
	require.Equal(t, "0000000000 65535 f ", lines[2])
	for k := 1; k < n; k++ {
		entry := lines[2+k]
		require.Len(t, entry, 19, "entry %d", k)
		require.True(t, strings.HasSuffix(entry, " 00000 n "), entry)
		off, err := strconv.Atoi(entry[:10])
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	return offsets, startXref
}

func TestXrefMatchesObjectOffsets(t *testing.T) {
	d := New()
	d.TitlePage("Traversal", "subtitle", "", fonts.HelveticaBold, 24)
	for i := range 3 {
		d.NewPage(fmt.Sprintf("step %d", i+1))
		d.SetColor(Gray(0.5))
		d.CirclePath(geom.Pt(100, 100), 12)
		d.ClosePathFillStroke()
		d.SelectFont(fonts.Courier, 10)
		d.PositionText("node (1)", 100, 100, 0.5, 0.5)
	}

	var buf bytes.Buffer
	require.NoError(t, d.Finish(&buf))
	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-1.4\n\n")))

	offsets, startXref := xrefOffsets(t, out)
	// catalog, outlines, pages, 4 pages, 3 fonts, 2 objects per page
	require.Len(t, offsets, 3+4+3+8)
	for k, off := range offsets {
		header := fmt.Sprintf("%d 0 obj\n", k+1)
		assert.True(t, bytes.HasPrefix(out[off:], []byte(header)), "object %d not at offset %d", k+1, off)
	}
	last := offsets[len(offsets)-1]
	assert.True(t, bytes.HasSuffix(out[last:startXref], []byte("endobj\n\n")))
	assert.Contains(t, string(out), "/Size 19\n     /Root 1 0 R\n")
}

func TestStreamLength(t *testing.T) {
	d := New()
	d.MoveTo(geom.Pt(0, 0))
	d.LineTo(geom.Pt(10, 10))
	d.Stroke()

	var buf bytes.Buffer
	require.NoError(t, d.Finish(&buf))
	m := regexp.MustCompile(`(?s)<< /Length (\d+) >>\nstream\n(.*?)endstream`).FindSubmatch(buf.Bytes())
	require.NotNil(t, m)
	n, _ := strconv.Atoi(string(m[1]))
	assert.Equal(t, len(m[2]), n)
	assert.Equal(t, "0.000 0.000 m\n10.000 10.000 l\nS\n\n", string(m[2]))
}

func TestEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Finish(&buf))
	out := buf.String()

	assert.Contains(t, out, "1 0 obj\n  << /Type /Catalog\n     /Outlines 2 0 R\n     /Pages 3 0 R\n  >>\nendobj\n\n")
	assert.Contains(t, out, "2 0 obj\n  << /Type /Outlines\n     /Count 0\n  >>\nendobj\n\n")
	assert.Contains(t, out, "/Kids [ 4 0 R ]\n     /Count 1\n")
	assert.Contains(t, out, "/MediaBox [ 0 0 612 792 ]\n     /Contents 5 0 R\n")
	assert.Contains(t, out, "/Resources << /ProcSet 6 0 R\n                   /Font << \n                        >>\n")
	assert.Contains(t, out, "5 0 obj\n  << /Length 1 >>\nstream\n\nendstream\nendobj\n\n")
	assert.Contains(t, out, "6 0 obj\n  [/PDF /Text]\nendobj\n\n")
	assert.True(t, strings.HasSuffix(out, "\ntrailer\n  << /Size 7\n     /Root 1 0 R\n  >>\n"+
		fmt.Sprintf("startxref\n%d\n%%%%EOF\n", strings.Index(out, "xref\n0 7\n"))))

	offsets, _ := xrefOffsets(t, buf.Bytes())
	assert.Len(t, offsets, 6)
}

func TestFontResources(t *testing.T) {
	d := New(WithPageSize(595, 842))
	d.SelectFont(fonts.Times|fonts.Italic, 12)
	d.SelectFont(fonts.ZapfDingbats, 12)
	d.MoveTo(geom.Pt(0, 0))
	d.NewPage("")

	var buf bytes.Buffer
	require.NoError(t, d.Finish(&buf))
	out := buf.String()

	// 2 pages: page objects 4-5, fonts 6-7, streams from 8.
	assert.Equal(t, 2, strings.Count(out, "/Font << \n                        /F2 6 0 R\n                        /F13 7 0 R\n"))
	assert.Contains(t, out, "6 0 obj\n  << /Type /Font\n     /Subtype /Type1\n     /Name /F2\n     /BaseFont /Times-Italic\n     /Encoding /MacRomanEncoding\n  >>\nendobj\n\n")
	assert.Contains(t, out, "/BaseFont /ZapfDingbats\n")
	assert.Contains(t, out, "/MediaBox [ 0 0 595 842 ]\n     /Contents 8 0 R\n     /Resources << /ProcSet 9 0 R\n")
	assert.Contains(t, out, "/Contents 10 0 R\n     /Resources << /ProcSet 11 0 R\n")
}

func TestFinishTwice(t *testing.T) {
	d := New()
	require.NoError(t, d.Finish(&bytes.Buffer{}))

	var buf bytes.Buffer
	err := d.Finish(&buf)
	assert.True(t, errors.Is(err, errors.ErrCodeAlreadyFinished))
	assert.Zero(t, buf.Len())

	// Drawing after Finish is ignored.
	d.MoveTo(geom.Pt(1, 1))
	assert.NoError(t, d.Err())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestFinishWriteError(t *testing.T) {
	err := New().Finish(failWriter{})
	assert.True(t, errors.Is(err, errors.ErrCodeInternal))
}
