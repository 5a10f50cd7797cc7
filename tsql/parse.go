package tsql

import (
	"github.com/joeandaverde/customerdb/tsql/ast"
	"github.com/joeandaverde/customerdb/tsql/parser"
)

// Parse normalizes a raw command line and parses it. The returned skip is
// true for lines that are empty once comments and white space are removed;
// such lines are not commands at all.
func Parse(line string) (stmt ast.Statement, skip bool, err error) {
	text := parser.Normalize(line)
	if text == "" {
		return nil, true, nil
	}

	stmt, err = parser.ParseStatement(text)
	return stmt, false, err
}
