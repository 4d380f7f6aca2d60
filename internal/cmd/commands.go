package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/internal/cmd/commands/generate"
	"github.com/rynko-dev/rynko-go/internal/cmd/commands/job"
	"github.com/rynko-dev/rynko-go/internal/cmd/commands/templates"
	"github.com/rynko-dev/rynko-go/internal/cmd/commands/version"
	"github.com/rynko-dev/rynko-go/internal/cmd/commands/webhook"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := base.NewCommand(ui, log)

	Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &generate.Command{Command: baseCommand}, nil
		},
		"job": func() (cli.Command, error) {
			return &job.Command{Command: baseCommand}, nil
		},
		"job status": func() (cli.Command, error) {
			return &job.StatusCommand{Command: baseCommand}, nil
		},
		"templates": func() (cli.Command, error) {
			return &templates.Command{Command: baseCommand}, nil
		},
		"templates list": func() (cli.Command, error) {
			return &templates.ListCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: baseCommand}, nil
		},
		"webhook": func() (cli.Command, error) {
			return &webhook.Command{Command: baseCommand}, nil
		},
		"webhook verify": func() (cli.Command, error) {
			return &webhook.VerifyCommand{Command: baseCommand}, nil
		},
	}
}
