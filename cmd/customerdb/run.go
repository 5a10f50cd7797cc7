package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/joeandaverde/customerdb/internal/backend"
)

type RunConfig struct {
	SeedFile     string       `yaml:"seed_file"`
	CommandsFile string       `yaml:"commands_file"`
	OutputFile   string       `yaml:"output_file"`
	LogLevel     logrus.Level `yaml:"log_level"`
}

func defaultRunConfig() *RunConfig {
	defaults := backend.DefaultConfig()
	return &RunConfig{
		SeedFile:     defaults.SeedFile,
		CommandsFile: defaults.CommandsFile,
		OutputFile:   defaults.OutputFile,
		LogLevel:     logrus.InfoLevel,
	}
}

// loadConfig reads a YAML config file on top of the defaults. An empty
// path yields the defaults.
func loadConfig(path string) (*RunConfig, error) {
	config := defaultRunConfig()
	if path == "" {
		return config, nil
	}

	configFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer configFile.Close()

	if err := yaml.NewDecoder(configFile).Decode(config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

type RunCommand struct{}

func (i *RunCommand) Help() string {
	helpText := `
Usage: customerdb run [options]

  Loads the seed file, executes every line of the commands file and writes
  a snapshot of the customer table to the output file after each command.

Options:

	-config=""	YAML configuration file
	-seed=""	Seed file (default input.txt)
	-commands=""	Commands file (default commands.txt)
	-output=""	Output file (default output.txt)
`

	return strings.TrimSpace(helpText)
}

func (i *RunCommand) Synopsis() string {
	return "Runs a commands file against the customer table"
}

func (i *RunCommand) Run(args []string) int {
	var configPath, seedFile, commandsFile, outputFile string

	cmdFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")
	cmdFlags.StringVar(&seedFile, "seed", "", "seed file")
	cmdFlags.StringVar(&commandsFile, "commands", "", "commands file")
	cmdFlags.StringVar(&outputFile, "output", "", "output file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	config, err := loadConfig(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err.Error())
		return 1
	}

	if seedFile != "" {
		config.SeedFile = seedFile
	}
	if commandsFile != "" {
		config.CommandsFile = commandsFile
	}
	if outputFile != "" {
		config.OutputFile = outputFile
	}

	logger := logrus.New()
	logger.SetLevel(config.LogLevel)
	log := logger.WithField("run", uuid.New().String())

	engine, err := backend.Start(log, backend.Config{
		SeedFile:     config.SeedFile,
		CommandsFile: config.CommandsFile,
		OutputFile:   config.OutputFile,
	})
	if err != nil {
		log.WithError(err).Error("unable to start")
		return 1
	}

	runErr := engine.RunCommandsFile()
	if err := engine.Close(); err != nil {
		log.WithError(err).Error("closing output log")
		return 1
	}

	if runErr != nil {
		log.WithError(runErr).Error("command processing aborted")
		return 1
	}

	return 0
}
