// Package base carries the pieces shared by all CLI commands.
package base

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/rynko-dev/rynko-go/internal/config"
	"github.com/rynko-dev/rynko-go/pkg/rynko"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// FS is the filesystem commands read and write through. Tests swap
	// in an in-memory filesystem.
	FS afero.Fs
}

// NewCommand returns a Command with an OS-backed filesystem.
func NewCommand(ui cli.Ui, log hclog.Logger) *Command {
	return &Command{
		UI:  ui,
		Log: log,
		FS:  afero.NewOsFs(),
	}
}

// APIClient builds an SDK client from the config file at configPath plus
// flag overrides. Environment variables fill any remaining gaps.
func (c *Command) APIClient(configPath, apiKey, baseURL string) (*rynko.Client, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg.Client(c.Log)
}

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps fs.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.Usage = func() {}
	return &FlagSet{FlagSet: fs}
}

// Help renders the flag set as a help section.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&buf, "  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&buf, " (default: %s)", fl.DefValue)
		}
		fmt.Fprintf(&buf, "\n      %s\n", fl.Usage)
	})
	return buf.String()
}
