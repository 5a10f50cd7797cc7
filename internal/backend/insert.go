package backend

import (
	"github.com/joeandaverde/customerdb/internal/customer"
	"github.com/joeandaverde/customerdb/tsql/ast"
)

func (b *Backend) insert(s *ast.InsertStatement) {
	c := customer.FromFields(s.Values)
	c.ID = b.table.NextID()
	b.table.Append(c)
}
