package pdf

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/matzehuels/stepdoc/pkg/errors"
)

// Object numbers of the fixed document objects. Page objects follow the
// page tree, then one font object per used font, then a content stream and
// a procset object per page.
const (
	catalogObj  = 1
	outlinesObj = 2
	pagesObj    = 3
	firstPage   = 4
)

// Finish closes the last page, serializes the document and writes it to w.
//
// Nothing is written if the document has recorded an error; that error is
// returned instead. Finish may be called only once.
func (d *Document) Finish(w io.Writer) error {
	if d.finished {
		return errors.New(errors.ErrCodeAlreadyFinished, "document already finished")
	}
	if d.err == nil {
		d.finishPage()
	}
	d.finished = true
	if d.err != nil {
		return d.err
	}

	objs, err := d.objects()
	if err != nil {
		d.err = err
		return err
	}

	var out bytes.Buffer
	for _, o := range objs {
		out.Write(o)
	}
	startXref := out.Len()

	fmt.Fprintf(&out, "xref\n0 %d\n", len(objs))
	offset := 0
	for k, o := range objs {
		if k == 0 {
			out.WriteString("0000000000 65535 f \n")
		} else {
			fmt.Fprintf(&out, "%010d %05d n \n", offset, 0)
		}
		offset += len(o)
	}
	fmt.Fprintf(&out, "\ntrailer\n  << /Size %d\n     /Root %d 0 R\n  >>\nstartxref\n%d\n%%%%EOF\n",
		len(objs), catalogObj, startXref)

	d.logger.Debug("document finished", "pages", len(d.pages), "objects", len(objs), "bytes", out.Len())
	if _, err := w.Write(out.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write document")
	}
	return nil
}

// objects serializes every object. Index k holds object number k; index 0
// holds the file header.
func (d *Document) objects() ([][]byte, error) {
	n := len(d.pages)
	used := d.UsedFonts()
	m := len(used)
	firstFont := firstPage + n
	firstContent := firstFont + m

	limit := 3*n + 16 + m
	objs := make([][]byte, 0, firstContent+2*n)

	objs = append(objs, []byte("%PDF-1.4\n\n"))
	objs = append(objs, fmt.Appendf(nil, "%d 0 obj\n"+
		"  << /Type /Catalog\n"+
		"     /Outlines %d 0 R\n"+
		"     /Pages %d 0 R\n"+
		"  >>\n"+
		"endobj\n\n", catalogObj, outlinesObj, pagesObj))
	objs = append(objs, fmt.Appendf(nil, "%d 0 obj\n"+
		"  << /Type /Outlines\n"+
		"     /Count 0\n"+
		"  >>\n"+
		"endobj\n\n", outlinesObj))

	kids := fmt.Appendf(nil, "%d 0 obj\n  << /Type /Pages\n     /Kids [ ", pagesObj)
	for k := range n {
		kids = fmt.Appendf(kids, "%d 0 R ", firstPage+k)
	}
	kids = fmt.Appendf(kids, "]\n     /Count %d\n  >>\nendobj\n\n", n)
	objs = append(objs, kids)

	// Every page lists every used font.
	var fontRes []byte
	for j, f := range used {
		fontRes = fmt.Appendf(fontRes, "                        /F%d %d 0 R\n", f.Index(), firstFont+j)
	}
	w, h := int(math.Round(d.width)), int(math.Round(d.height))
	for k := range n {
		content := firstContent + 2*k
		page := fmt.Appendf(nil, "%d 0 obj\n"+
			"  << /Type /Page\n"+
			"     /Parent %d 0 R\n"+
			"     /MediaBox [ 0 0 %d %d ]\n"+
			"     /Contents %d 0 R\n"+
			"     /Resources << /ProcSet %d 0 R\n"+
			"                   /Font << \n",
			firstPage+k, pagesObj, w, h, content, content+1)
		page = append(page, fontRes...)
		page = append(page, "                        >>\n"+
			"                >>\n"+
			"  >>\n"+
			"endobj\n\n"...)
		objs = append(objs, page)
	}

	for j, f := range used {
		objs = append(objs, fmt.Appendf(nil, "%d 0 obj\n"+
			"  << /Type /Font\n"+
			"     /Subtype /Type1\n"+
			"     /Name /F%d\n"+
			"     /BaseFont /%s\n"+
			"     /Encoding /MacRomanEncoding\n"+
			"  >>\n"+
			"endobj\n\n", firstFont+j, f.Index(), f.Name()))
	}

	for k, p := range d.pages {
		num := firstContent + 2*k
		stream := p.Content.Bytes()
		obj := fmt.Appendf(nil, "%d 0 obj\n  << /Length %d >>\nstream\n", num, len(stream)+1)
		obj = append(obj, stream...)
		obj = append(obj, "\nendstream\nendobj\n\n"...)
		objs = append(objs, obj)
		objs = append(objs, fmt.Appendf(nil, "%d 0 obj\n  [/PDF /Text]\nendobj\n\n", num+1))
	}

	if len(objs) >= limit {
		return nil, errors.New(errors.ErrCodeTooManyObjects, "%d objects exceed the limit of %d", len(objs), limit)
	}
	return objs, nil
}
