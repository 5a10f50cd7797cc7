package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/joeandaverde/customerdb/internal/customer"
)

const (
	// Separator starts every block after the initial dump
	Separator = "----------"

	// ErrorMarker replaces the table in blocks for failed commands
	ErrorMarker = "error"
)

// Writer renders customer tables to an append-only log
type Writer struct {
	out *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out: bufio.NewWriter(w),
	}
}

// FormatRow renders c as name,mail,JOB_TYPE,true|false,DD.MM.YYYY
func FormatRow(c customer.Customer) string {
	return fmt.Sprintf("%s,%s,%s,%t,%s",
		customer.TextOrNull(c.Name),
		customer.TextOrNull(c.Mail),
		c.JobType,
		c.EmailVerified,
		c.DateOfBirth)
}

// WriteTable writes one line per row and flushes
func (w *Writer) WriteTable(rows iter.Seq[customer.Customer]) error {
	w.writeRows(rows)
	return w.out.Flush()
}

// WriteBlock writes a separator followed by the table, or by the error
// marker when cmdErr is not nil.
func (w *Writer) WriteBlock(rows iter.Seq[customer.Customer], cmdErr error) error {
	_, _ = w.out.WriteString(Separator + "\n")

	if cmdErr != nil {
		_, _ = w.out.WriteString(ErrorMarker + "\n")
	} else {
		w.writeRows(rows)
	}

	return w.out.Flush()
}

// writeRows buffers rows. Write errors are sticky in bufio.Writer and
// surface on Flush.
func (w *Writer) writeRows(rows iter.Seq[customer.Customer]) {
	for c := range rows {
		_, _ = w.out.WriteString(FormatRow(c))
		_ = w.out.WriteByte('\n')
	}
}
