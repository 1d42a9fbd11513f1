package pdf

import "bytes"

// MaxRecord bounds the length of a single content-stream record, operator
// included. Longer records fail the document with STRING_TOO_LONG.
const MaxRecord = 4096

// ContentStream is the append-only operator text of one page.
// Every record ends in a newline.
type ContentStream struct {
	buf bytes.Buffer
}

func (c *ContentStream) record(b []byte) {
	c.buf.Write(b)
	c.buf.WriteByte('\n')
}

// Len returns the stream length in bytes.
func (c *ContentStream) Len() int { return c.buf.Len() }

// Empty reports whether nothing has been drawn.
func (c *ContentStream) Empty() bool { return c.buf.Len() == 0 }

// Bytes returns the stream contents. The slice aliases the buffer and is
// valid until the next record is appended.
func (c *ContentStream) Bytes() []byte { return c.buf.Bytes() }

// String returns the stream contents as a string.
func (c *ContentStream) String() string { return c.buf.String() }

// Page is one page of a document.
type Page struct {
	Content    ContentStream
	Annotation string // caption drawn at the top left when the page closes
}
