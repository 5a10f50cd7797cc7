package backend

import (
	"github.com/joeandaverde/customerdb/internal/storage"
	"github.com/joeandaverde/customerdb/tsql/ast"
)

// delete removes every row with the statement's id. Deleting an id that
// does not exist is not an error.
func (b *Backend) delete(s *ast.DeleteStatement) {
	if n := b.table.RemoveAll(storage.ByID(s.ID)); n == 0 {
		b.log.WithField("id", s.ID).Debug("delete matched no rows")
	}
}
