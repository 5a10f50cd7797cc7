package backend

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/customerdb/internal/storage"
	"github.com/joeandaverde/customerdb/tsql"
	"github.com/joeandaverde/customerdb/tsql/ast"
)

// Backend executes commands against a customer table
type Backend struct {
	table *storage.Table
	log   logrus.FieldLogger
}

// Result describes what happened to a command line
type Result struct {
	// Skipped is set for lines with nothing to execute. No snapshot is
	// written for them.
	Skipped bool

	// Statement is the executed statement, nil for ignored commands
	Statement ast.Statement
}

func NewBackend(logger logrus.FieldLogger, table *storage.Table) *Backend {
	return &Backend{
		table: table,
		log:   logger,
	}
}

// Exec parses and executes a single command line. Commands that are not
// understood are ignored. Only UPDATE produces errors.
func (b *Backend) Exec(line string) (Result, error) {
	stmt, skip, err := tsql.Parse(line)
	if skip {
		return Result{Skipped: true}, nil
	}

	log := b.log.WithField("line", line)

	if err != nil {
		log.WithError(err).Debug("command rejected")
		return Result{}, err
	}

	if stmt == nil {
		log.Debug("command ignored")
		return Result{}, nil
	}

	log = log.WithField("verb", stmt.Verb())

	if err := b.execute(stmt); err != nil {
		log.WithError(err).Debug("command failed")
		return Result{Statement: stmt}, err
	}

	log.WithField("rows", b.table.Len()).Debug("command complete")

	return Result{Statement: stmt}, nil
}

func (b *Backend) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.InsertStatement:
		b.insert(s)
	case *ast.DeleteStatement:
		b.delete(s)
	case *ast.UpdateStatement:
		return b.update(s)
	case *ast.TruncateStatement:
		b.truncate()
	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}

	return nil
}
