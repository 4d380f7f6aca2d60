// Package webhook implements webhook tooling commands.
package webhook

import (
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with webhook deliveries"
}

func (c *Command) Help() string {
	return `Usage: rynko webhook <subcommand> [options]

  This command groups subcommands for working with webhook deliveries.
  To verify a delivery signature against a payload file:

      $ rynko webhook verify -payload event.json -signature v1=... \
          -timestamp 1700000000 -secret whsec_...

  For more examples, refer to the subcommand help output.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
