package parser

import (
	"strings"

	"github.com/joeandaverde/customerdb/tsql/ast"
	"github.com/joeandaverde/customerdb/tsql/lexer"
)

// insertColumns is the number of positional values an INSERT may carry
const insertColumns = 5

func parseInsert(rest string) (ast.Statement, error) {
	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return nil, nil
	}

	return &ast.InsertStatement{
		Values: lexer.Values(rest[open:], insertColumns),
	}, nil
}
