// Package ioutil provides writer helpers used by RenderTo implementations.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, sums written bytes and keeps the first write error.
// After an error every following write is a no-op, so payload segments can be
// chained without checking each step.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	return cw.track(n, err)
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	return cw.track(n, err)
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, errtrace.Wrap(cw.err)
	}
	return n, nil
}

// Print writes all segments in order.
func (cw *CountingWriter) Print(segs ...string) *CountingWriter {
	for _, s := range segs {
		if cw.err != nil {
			break
		}
		cw.WriteString(s) //nolint:errcheck
	}
	return cw
}

// PrintIf writes segments only when cond is true.
func (cw *CountingWriter) PrintIf(cond bool, segs ...string) *CountingWriter {
	if !cond {
		return cw
	}
	return cw.Print(segs...)
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns the first error encountered.
func (cw *CountingWriter) Err() error {
	return errtrace.Wrap(cw.err)
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int {
	return cw.num
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
