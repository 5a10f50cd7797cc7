package ast

// Column is an assignable customer column
type Column int

const (
	ColumnName Column = iota + 1
	ColumnMail
	ColumnJobType
	ColumnEmailVerified
	ColumnDate
)

var columnsByName = map[string]Column{
	"name":           ColumnName,
	"email":          ColumnMail,
	"mail":           ColumnMail,
	"job_type":       ColumnJobType,
	"email_verified": ColumnEmailVerified,
	"date":           ColumnDate,
}

// LookupColumn resolves a column name. Names are case sensitive.
func LookupColumn(name string) (Column, bool) {
	c, ok := columnsByName[name]
	return c, ok
}

func (c Column) String() string {
	switch c {
	case ColumnName:
		return "name"
	case ColumnMail:
		return "email"
	case ColumnJobType:
		return "job_type"
	case ColumnEmailVerified:
		return "email_verified"
	case ColumnDate:
		return "date"
	default:
		return "unknown"
	}
}

// Assignment is a single column=value item of a SET clause. Value has
// been trimmed and unquoted but not yet converted.
type Assignment struct {
	Column Column
	Value  string
}
