// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: rynko version

  Prints the CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("rynko v%s", version.Version))
	return 0
}
