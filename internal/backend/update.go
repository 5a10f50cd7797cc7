package backend

import (
	"github.com/joeandaverde/customerdb/internal/customer"
	"github.com/joeandaverde/customerdb/internal/storage"
	"github.com/joeandaverde/customerdb/tsql/ast"
)

func (b *Backend) update(s *ast.UpdateStatement) error {
	target, ok := b.table.FindFirst(storage.ByID(s.ID))
	if !ok {
		return &NotFoundError{ID: s.ID}
	}

	for _, a := range s.Assignments {
		assign(target, a)
	}

	return nil
}

func assign(c *customer.Customer, a ast.Assignment) {
	switch a.Column {
	case ast.ColumnName:
		c.Name = customer.TextOrNull(a.Value)
	case ast.ColumnMail:
		c.Mail = customer.TextOrNull(a.Value)
	case ast.ColumnJobType:
		c.JobType = customer.JobTypeFromInt(customer.ParseInt(a.Value))
	case ast.ColumnEmailVerified:
		c.EmailVerified = customer.ParseVerified(a.Value)
	case ast.ColumnDate:
		c.DateOfBirth = customer.ParseDate(a.Value)
	}
}
