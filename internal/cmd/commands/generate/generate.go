// Package generate implements the document generation command.
package generate

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/pkg/rynko"
)

// varFlag collects repeated -var key=value pairs.
type varFlag map[string]any

func (v varFlag) String() string {
	if len(v) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(v))
	for k, val := range v {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, val))
	}
	return strings.Join(pairs, ",")
}

func (v varFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	v[key] = value
	return nil
}

type Command struct {
	*base.Command

	flagConfig   string
	flagAPIKey   string
	flagBaseURL  string
	flagTemplate string
	flagFormat   string
	flagVars     varFlag
	flagWait     bool
	flagTimeout  time.Duration
	flagOutput   string
}

func (c *Command) Synopsis() string {
	return "Generate a document from a template"
}

func (c *Command) Help() string {
	return `Usage: rynko generate [options]

  Submits a document generation job. With -wait the command polls the
  job until it reaches a terminal state, and with -output it downloads
  the finished document to a local file.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("generate", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an HCL config file")
	f.StringVar(&c.flagAPIKey, "api-key", "", "[RYNKO_API_KEY] API key")
	f.StringVar(&c.flagBaseURL, "base-url", "", "[RYNKO_BASE_URL] API base URL")
	f.StringVar(&c.flagTemplate, "template", "", "Template ID (required)")
	f.StringVar(&c.flagFormat, "format", "", "Output format (pdf or xlsx)")
	if c.flagVars == nil {
		c.flagVars = varFlag{}
	}
	f.Var(c.flagVars, "var", "Template variable as key=value (repeatable)")
	f.BoolVar(&c.flagWait, "wait", false, "Poll the job until it completes")
	f.DurationVar(&c.flagTimeout, "timeout", rynko.DefaultPollTimeout, "Polling deadline when -wait is set")
	f.StringVar(&c.flagOutput, "output", "", "Write the finished document to this path (implies -wait)")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagTemplate == "" {
		c.UI.Error("-template is required")
		return 1
	}

	client, err := c.APIClient(c.flagConfig, c.flagAPIKey, c.flagBaseURL)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	result, err := client.Documents().Generate(ctx, &rynko.GenerateRequest{
		TemplateID: c.flagTemplate,
		Format:     c.flagFormat,
		Variables:  c.flagVars,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(fmt.Sprintf("job %s submitted (status: %s)", result.JobID, result.Status))

	if !c.flagWait && c.flagOutput == "" {
		return 0
	}

	final, err := client.Documents().WaitForCompletion(ctx, result.JobID,
		rynko.WithPollTimeout(c.flagTimeout))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if !final.Completed() {
		c.UI.Error(fmt.Sprintf("job %s ended %s: %s", final.JobID, final.Status, final.ErrorMessage))
		return 1
	}
	c.UI.Output(fmt.Sprintf("job %s completed", final.JobID))

	if c.flagOutput == "" {
		return 0
	}

	data, err := client.Documents().Download(ctx, final.DownloadURL)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if err := afero.WriteFile(c.FS, c.flagOutput, data, 0o644); err != nil {
		c.UI.Error(fmt.Sprintf("error writing %s: %v", c.flagOutput, err))
		return 1
	}
	c.UI.Output(fmt.Sprintf("wrote %d bytes to %s", len(data), c.flagOutput))
	return 0
}
