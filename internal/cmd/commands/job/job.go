// Package job implements job inspection commands.
package job

import (
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect generation jobs"
}

func (c *Command) Help() string {
	return `Usage: rynko job <subcommand> [options]

  This command groups subcommands for inspecting document generation
  jobs. To check the status of a job:

      $ rynko job status -id job_abc123

  For more examples, refer to the subcommand help output.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
