package parser

import (
	"fmt"
	"strings"

	"github.com/joeandaverde/customerdb/internal/customer"
	"github.com/joeandaverde/customerdb/tsql/ast"
	"github.com/joeandaverde/customerdb/tsql/lexer"
)

const (
	setMarker         = " SET "
	updateWhereMarker = " WHERE id="
)

func parseUpdate(rest string) (ast.Statement, error) {
	set := strings.Index(rest, setMarker)
	where := strings.Index(rest, updateWhereMarker)
	if set < 0 || where < 0 || set > where {
		return nil, ErrMalformedUpdate
	}

	id, ok := customer.ScanInt(rest[where+len(updateWhereMarker):])
	if !ok {
		return nil, fmt.Errorf("%w: invalid id", ErrMalformedUpdate)
	}

	var body string
	if start := set + len(setMarker); start < where {
		body = rest[start:where]
	}

	return &ast.UpdateStatement{
		ID:          id,
		Assignments: parseAssignments(body),
	}, nil
}

// parseAssignments splits a SET body into column=value items. Items
// without '=', with nothing after it, or naming an unknown column are
// dropped.
func parseAssignments(body string) []ast.Assignment {
	var assignments []ast.Assignment

	for _, item := range strings.Split(body, ",") {
		eq := strings.IndexByte(item, '=')
		if eq < 0 || eq == len(item)-1 {
			continue
		}

		column, ok := ast.LookupColumn(lexer.Trim(item[:eq]))
		if !ok {
			continue
		}

		assignments = append(assignments, ast.Assignment{
			Column: column,
			Value:  lexer.StripQuotes(lexer.Trim(item[eq+1:])),
		})
	}

	return assignments
}
