package storage

import (
	"iter"

	"github.com/joeandaverde/customerdb/internal/customer"
)

// InitialCapacity is the number of rows allocated on first growth. Later
// growth doubles the capacity.
const InitialCapacity = 10

// Predicate selects rows of a table
type Predicate func(c *customer.Customer) bool

// ByID matches the customer with the given id
func ByID(id int) Predicate {
	return func(c *customer.Customer) bool {
		return c.ID == id
	}
}

// Table is an ordered, growable collection of customers together with the
// counter used to allocate their ids.
type Table struct {
	rows   []customer.Customer
	nextID int
}

// NewTable creates an empty table whose first id is 1
func NewTable() *Table {
	return &Table{
		nextID: 1,
	}
}

// NextID returns the next customer id and advances the counter
func (t *Table) NextID() int {
	id := t.nextID
	t.nextID++
	return id
}

// Len is the number of live rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Cap is the number of rows the table can hold before it has to grow
func (t *Table) Cap() int {
	return cap(t.rows)
}

// Append adds c after the last row
func (t *Table) Append(c customer.Customer) {
	t.ensureCapacity()
	t.rows = append(t.rows, c)
}

func (t *Table) ensureCapacity() {
	if len(t.rows) < cap(t.rows) {
		return
	}

	newCap := InitialCapacity
	if cap(t.rows) > 0 {
		newCap = cap(t.rows) * 2
	}

	rows := make([]customer.Customer, len(t.rows), newCap)
	copy(rows, t.rows)
	t.rows = rows
}

// RemoveAll removes every row matching p in a single pass. The remaining
// rows keep their relative order. It returns the number of rows removed.
func (t *Table) RemoveAll(p Predicate) int {
	kept := 0
	for i := range t.rows {
		if p(&t.rows[i]) {
			continue
		}
		if kept != i {
			t.rows[kept] = t.rows[i]
		}
		kept++
	}

	removed := len(t.rows) - kept

	// release the strings held by vacated slots
	clear(t.rows[kept:])
	t.rows = t.rows[:kept]

	return removed
}

// FindFirst returns the first row matching p. The pointer stays valid
// until the table is next modified.
func (t *Table) FindFirst(p Predicate) (*customer.Customer, bool) {
	for i := range t.rows {
		if p(&t.rows[i]) {
			return &t.rows[i], true
		}
	}
	return nil, false
}

// Clear drops every row and its storage and restarts ids at 1
func (t *Table) Clear() {
	t.rows = nil
	t.nextID = 1
}

// Rows iterates over the live rows in storage order. The sequence may be
// ranged over more than once; each pass sees the rows present at that time.
func (t *Table) Rows() iter.Seq[customer.Customer] {
	return func(yield func(customer.Customer) bool) {
		for _, c := range t.rows {
			if !yield(c) {
				return
			}
		}
	}
}
