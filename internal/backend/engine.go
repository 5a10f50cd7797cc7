package backend

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/customerdb/internal/snapshot"
	"github.com/joeandaverde/customerdb/internal/storage"
)

// Config describes the files an engine works with
type Config struct {
	SeedFile     string
	CommandsFile string
	OutputFile   string
}

// DefaultConfig uses input.txt, commands.txt and output.txt in the
// working directory.
func DefaultConfig() Config {
	return Config{
		SeedFile:     "input.txt",
		CommandsFile: "commands.txt",
		OutputFile:   "output.txt",
	}
}

// Engine owns the customer table and the output log
type Engine struct {
	log     logrus.FieldLogger
	config  Config
	table   *storage.Table
	backend *Backend
	output  *os.File
	writer  *snapshot.Writer
}

// Start creates the output log, loads the seed file and writes the
// initial dump. Failing to create the output log is fatal; a missing or
// unreadable seed file leaves the table empty.
func Start(log logrus.FieldLogger, config Config) (*Engine, error) {
	log.Infof("Starting customer engine [Seed: %s, Output: %s]", config.SeedFile, config.OutputFile)

	output, err := os.Create(config.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("opening output log: %w", err)
	}

	table := storage.NewTable()
	e := &Engine{
		log:     log,
		config:  config,
		table:   table,
		backend: NewBackend(log, table),
		output:  output,
		writer:  snapshot.NewWriter(output),
	}

	e.seed()

	if err := e.writer.WriteTable(table.Rows()); err != nil {
		_ = output.Close()
		return nil, fmt.Errorf("writing initial table: %w", err)
	}

	return e, nil
}

func (e *Engine) seed() {
	log := e.log.WithField("file", e.config.SeedFile)

	f, err := os.Open(e.config.SeedFile)
	if err != nil {
		log.WithError(err).Warn("unable to open seed file, starting with an empty table")
		return
	}
	defer f.Close()

	n, err := storage.LoadSeed(f, e.table)
	if err != nil {
		log.WithError(err).Warnf("seed file only partially loaded (%d rows)", n)
		return
	}

	log.Infof("loaded %d customers", n)
}

// Table exposes the engine's customer table
func (e *Engine) Table() *storage.Table {
	return e.table
}

// RunCommandsFile runs the configured commands file. A commands file that
// cannot be opened is logged and skipped; the table and output log are
// left as they are.
func (e *Engine) RunCommandsFile() error {
	log := e.log.WithField("file", e.config.CommandsFile)

	f, err := os.Open(e.config.CommandsFile)
	if err != nil {
		log.WithError(err).Error("unable to open commands file")
		return nil
	}
	defer f.Close()

	return e.Run(f)
}

// Run executes one command per line of r, appending a snapshot block to
// the output log for every line that is not blank.
func (e *Engine) Run(r io.Reader) error {
	scanner := storage.NewLineScanner(r)

	processed := 0
	for scanner.Scan() {
		result, cmdErr := e.backend.Exec(scanner.Text())
		if result.Skipped {
			continue
		}

		if err := e.writer.WriteBlock(e.table.Rows(), cmdErr); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		processed++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	e.log.Infof("processed %d commands, %d customers remain", processed, e.table.Len())

	return nil
}

// Close releases the table and closes the output log
func (e *Engine) Close() error {
	e.table.Clear()
	return e.output.Close()
}
