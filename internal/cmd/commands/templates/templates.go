package templates

import (
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with document templates"
}

func (c *Command) Help() string {
	return `Usage: rynko templates <subcommand> [options]

  This command groups subcommands for listing and inspecting templates.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
