package storage

import (
	"bufio"
	"io"
	"strings"

	"github.com/joeandaverde/customerdb/internal/customer"
)

// seedFields is the number of comma separated fields in a seed line. The
// last field takes the remainder of the line.
const seedFields = 5

// maxLineSize bounds a single seed or command line
const maxLineSize = 1024 * 1024

// NewLineScanner returns a line scanner that tolerates long lines
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return scanner
}

// LoadSeed appends one customer per line of r to t, in the format
// name,mail,job_type,email_verified,date. Missing or empty fields take
// their defaults, so every line yields a row. It returns the number of
// rows loaded.
func LoadSeed(r io.Reader, t *Table) (int, error) {
	scanner := NewLineScanner(r)

	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '\r'); i >= 0 {
			line = line[:i]
		}

		c := customer.FromFields(strings.SplitN(line, ",", seedFields))
		c.ID = t.NextID()
		t.Append(c)
		n++
	}

	return n, scanner.Err()
}
