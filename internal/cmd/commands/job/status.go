package job

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/pkg/rynko"
)

type StatusCommand struct {
	*base.Command

	flagConfig  string
	flagAPIKey  string
	flagBaseURL string
	flagID      string
	flagWait    bool
	flagTimeout time.Duration
}

func (c *StatusCommand) Synopsis() string {
	return "Show the status of a generation job"
}

func (c *StatusCommand) Help() string {
	return `Usage: rynko job status [options]

  Fetches the current status of a document generation job. With -wait
  the command polls until the job reaches a terminal state.` + c.Flags().Help()
}

func (c *StatusCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job status", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an HCL config file")
	f.StringVar(&c.flagAPIKey, "api-key", "", "[RYNKO_API_KEY] API key")
	f.StringVar(&c.flagBaseURL, "base-url", "", "[RYNKO_BASE_URL] API base URL")
	f.StringVar(&c.flagID, "id", "", "Job ID (required)")
	f.BoolVar(&c.flagWait, "wait", false, "Poll the job until it completes")
	f.DurationVar(&c.flagTimeout, "timeout", rynko.DefaultPollTimeout, "Polling deadline when -wait is set")

	return f
}

func (c *StatusCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == "" {
		c.UI.Error("-id is required")
		return 1
	}

	client, err := c.APIClient(c.flagConfig, c.flagAPIKey, c.flagBaseURL)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var result *rynko.GenerateResult
	if c.flagWait {
		result, err = client.Documents().WaitForCompletion(ctx, c.flagID,
			rynko.WithPollTimeout(c.flagTimeout))
	} else {
		result, err = client.Documents().Get(ctx, c.flagID)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output(fmt.Sprintf("job:    %s", result.JobID))
	c.UI.Output(fmt.Sprintf("status: %s", result.Status))
	if result.DownloadURL != "" {
		c.UI.Output(fmt.Sprintf("url:    %s", result.DownloadURL))
	}
	if result.ErrorMessage != "" {
		c.UI.Output(fmt.Sprintf("error:  %s (%s)", result.ErrorMessage, result.ErrorCode))
	}
	if result.Failed() {
		return 1
	}
	return 0
}
