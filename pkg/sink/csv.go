package sink

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RowWriter accepts rows of cell values and emits them as delimited text.
type RowWriter interface {
	WriteRow(values ...string) error
	Flush() error
}

// CSVOption configures a [CSVWriter].
type CSVOption func(*csv.Writer)

// WithDelimiter sets the field delimiter (default ',').
func WithDelimiter(r rune) CSVOption { return func(w *csv.Writer) { w.Comma = r } }

// WithCRLF terminates lines with \r\n instead of \n.
func WithCRLF() CSVOption { return func(w *csv.Writer) { w.UseCRLF = true } }

// CSVWriter writes RFC 4180 records.
type CSVWriter struct {
	w    *csv.Writer
	rows int
}

// NewCSVWriter creates a CSVWriter on top of w.
func NewCSVWriter(w io.Writer, opts ...CSVOption) *CSVWriter {
	cw := csv.NewWriter(w)
	for _, opt := range opts {
		opt(cw)
	}
	return &CSVWriter{w: cw}
}

// WriteRow writes one record. Output is buffered until Flush.
func (c *CSVWriter) WriteRow(values ...string) error {
	if err := c.w.Write(values); err != nil {
		return fmt.Errorf("write row %d: %w", c.rows+1, err)
	}
	c.rows++
	return nil
}

// Flush writes buffered records and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// Rows returns the number of records written, header included.
func (c *CSVWriter) Rows() int { return c.rows }

// Table is a header plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteTable writes t's header and rows to w, then flushes.
func WriteTable(w RowWriter, t Table) error {
	if err := w.WriteRow(t.Header...); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.WriteRow(row...); err != nil {
			return err
		}
	}
	return w.Flush()
}

var _ RowWriter = (*CSVWriter)(nil)
