package backend

import "fmt"

// NotFoundError is returned when a command addresses a customer id that
// is not in the table
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer with id %d not found", e.ID)
}
