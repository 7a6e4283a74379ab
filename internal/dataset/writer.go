// Package dataset writes, summarizes, and re-verifies person datasets on disk.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
)

// Writer serializes rows as semicolon-delimited lines while keeping running
// row and byte counts plus an XXH3 digest of the exact bytes produced.
type Writer struct {
	cw    *csv.Writer
	hash  *xxh3.Hasher
	count *countingWriter
	rows  int64
}

// countingWriter tracks bytes passing through it
type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// NewWriter creates a Writer emitting to dst
func NewWriter(dst io.Writer) *Writer {
	h := xxh3.New()
	c := &countingWriter{}
	cw := csv.NewWriter(io.MultiWriter(dst, h, c))
	cw.Comma = ';'
	return &Writer{cw: cw, hash: h, count: c}
}

// WriteRow appends one row. Fields are written verbatim; a field containing
// the delimiter or a newline would be quoted, though generated values never
// need that.
func (w *Writer) WriteRow(fields []string) error {
	if err := w.cw.Write(fields); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush pushes buffered rows to the destination and reports any deferred
// write error
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// Rows returns the number of rows written so far
func (w *Writer) Rows() int64 {
	return w.rows
}

// Bytes returns the encoded size flushed to the destination so far
func (w *Writer) Bytes() int64 {
	return w.count.n
}

// Sum64 returns the XXH3 digest of the bytes flushed so far
func (w *Writer) Sum64() uint64 {
	return w.hash.Sum64()
}

// ChecksumString renders an XXH3 digest the way the CLI and catalog print it
func ChecksumString(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
