package ast

// Statement represents a parsed customer table command
type Statement interface {
	Verb() string
	iStatement()
}

// InsertStatement appends a customer built from positional values:
// name, mail, job type, email verified, date.
type InsertStatement struct {
	Values []string
}

// DeleteStatement removes the customers with the given id
type DeleteStatement struct {
	ID int
}

// UpdateStatement applies assignments to the customer with the given id
type UpdateStatement struct {
	ID          int
	Assignments []Assignment
}

// TruncateStatement removes every customer and restarts id allocation
type TruncateStatement struct{}

func (*InsertStatement) iStatement()   {}
func (*DeleteStatement) iStatement()   {}
func (*UpdateStatement) iStatement()   {}
func (*TruncateStatement) iStatement() {}

func (*InsertStatement) Verb() string   { return "INSERT" }
func (*DeleteStatement) Verb() string   { return "DELETE" }
func (*UpdateStatement) Verb() string   { return "UPDATE" }
func (*TruncateStatement) Verb() string { return "TRUNCATE" }
