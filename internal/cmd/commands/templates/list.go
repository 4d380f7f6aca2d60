package templates

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/pkg/rynko"
)

type ListCommand struct {
	*base.Command

	flagConfig  string
	flagAPIKey  string
	flagBaseURL string
	flagPage    int
	flagLimit   int
	flagSearch  string
	flagFormat  string
}

func (c *ListCommand) Synopsis() string {
	return "List templates"
}

func (c *ListCommand) Help() string {
	return `Usage: rynko templates list [options]

  Lists document templates available to the configured API key.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("templates list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to an HCL config file")
	f.StringVar(&c.flagAPIKey, "api-key", "", "[RYNKO_API_KEY] API key")
	f.StringVar(&c.flagBaseURL, "base-url", "", "[RYNKO_BASE_URL] API base URL")
	f.IntVar(&c.flagPage, "page", 1, "Page number (1-based)")
	f.IntVar(&c.flagLimit, "limit", 20, "Items per page")
	f.StringVar(&c.flagSearch, "search", "", "Filter templates by name")
	f.StringVar(&c.flagFormat, "format", "", "Filter by output format (pdf or xlsx)")

	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.APIClient(c.flagConfig, c.flagAPIKey, c.flagBaseURL)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	opts := rynko.ListTemplatesOptions{
		Page:   c.flagPage,
		Limit:  c.flagLimit,
		Search: c.flagSearch,
	}

	var result *rynko.ListResponse[rynko.Template]
	switch c.flagFormat {
	case "":
		result, err = client.Templates().List(ctx, opts)
	case "pdf":
		result, err = client.Templates().ListPDF(ctx, opts)
	case "xlsx", "excel":
		result, err = client.Templates().ListExcel(ctx, opts)
	default:
		c.UI.Error(fmt.Sprintf("unknown format %q (expected pdf or xlsx)", c.flagFormat))
		return 1
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	for _, tmpl := range result.Data {
		c.UI.Output(fmt.Sprintf("%-40s %-20s %s", tmpl.ID, tmpl.Name, strings.Join(tmpl.OutputFormats, ",")))
	}
	c.UI.Info(fmt.Sprintf("page %d/%d (%d templates total)",
		result.Meta.Page, result.Meta.TotalPages, result.Meta.Total))
	return 0
}
