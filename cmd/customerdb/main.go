package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = append(args, "run")
	}

	commands := map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{}, nil
		},
	}

	customerCLI := &cli.CLI{
		Name:     "customerdb",
		Version:  version,
		Args:     args,
		Commands: commands,
		HelpFunc: cli.BasicHelpFunc("customerdb"),
	}

	exitCode, err := customerCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}

type VersionCommand struct{}

func (v *VersionCommand) Help() string {
	return "Usage: customerdb version"
}

func (v *VersionCommand) Synopsis() string {
	return "Prints the customerdb version"
}

func (v *VersionCommand) Run(_ []string) int {
	fmt.Println(version)
	return 0
}
