package parser

import (
	"strings"

	"github.com/joeandaverde/customerdb/internal/customer"
	"github.com/joeandaverde/customerdb/tsql/ast"
)

const deleteWhereMarker = "WHERE id="

func parseDelete(rest string) (ast.Statement, error) {
	where := strings.Index(rest, deleteWhereMarker)
	if where < 0 {
		return nil, nil
	}

	id, ok := customer.ScanInt(rest[where+len(deleteWhereMarker):])
	if !ok {
		return nil, nil
	}

	return &ast.DeleteStatement{ID: id}, nil
}
