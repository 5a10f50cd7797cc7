package parser

import (
	"errors"
	"strings"

	"github.com/joeandaverde/customerdb/tsql/ast"
	"github.com/joeandaverde/customerdb/tsql/lexer"
)

// ErrMalformedUpdate is returned for UPDATE commands lacking a well formed
// " SET ... WHERE id=<n>" clause.
var ErrMalformedUpdate = errors.New("malformed UPDATE: expected SET clause followed by WHERE id=<n>")

// CustomerTable is the only table commands may address
const CustomerTable = "CUSTOMER"

var topLevelStatements = []struct {
	Verb  string
	Table string
	Parse func(rest string) (ast.Statement, error)
}{
	{
		Verb:  "INSERT",
		Table: "INTO " + CustomerTable,
		Parse: parseInsert,
	},
	{
		Verb:  "DELETE",
		Table: "FROM " + CustomerTable,
		Parse: parseDelete,
	},
	{
		Verb:  "UPDATE",
		Table: CustomerTable,
		Parse: parseUpdate,
	},
	{
		Verb:  "TRUNCATE",
		Table: "TABLE " + CustomerTable,
		Parse: func(string) (ast.Statement, error) {
			return &ast.TruncateStatement{}, nil
		},
	},
}

// Normalize cuts a raw command line at the first line break and the first
// semicolon and trims the result.
func Normalize(line string) string {
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return lexer.Trim(line)
}

// SplitVerb separates the verb, everything up to the first space, from its
// parameters.
func SplitVerb(line string) (verb string, params string) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return line, ""
	}
	return line[:i], lexer.TrimLeft(line[i+1:])
}

// ParseStatement parses a normalized command line. Unknown verbs and
// commands that do not address the customer table, as well as INSERT and
// DELETE commands missing their required parts, produce a nil statement
// and a nil error.
func ParseStatement(line string) (ast.Statement, error) {
	verb, params := SplitVerb(line)

	for _, p := range topLevelStatements {
		if verb != p.Verb {
			continue
		}
		if !strings.HasPrefix(params, p.Table) {
			return nil, nil
		}
		return p.Parse(params[len(p.Table):])
	}

	return nil, nil
}
