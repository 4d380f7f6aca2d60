package webhook

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/rynko-dev/rynko-go/internal/cmd/base"
	"github.com/rynko-dev/rynko-go/pkg/webhook"
)

type VerifyCommand struct {
	*base.Command

	flagPayload   string
	flagSignature string
	flagTimestamp string
	flagSecret    string
}

func (c *VerifyCommand) Synopsis() string {
	return "Verify a webhook delivery signature"
}

func (c *VerifyCommand) Help() string {
	return `Usage: rynko webhook verify [options]

  Recomputes the HMAC signature for a webhook payload and compares it
  against the delivered signature. Exits 0 when the signature is valid
  and the timestamp is within tolerance.` + c.Flags().Help()
}

func (c *VerifyCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("webhook verify", flag.ContinueOnError))

	f.StringVar(&c.flagPayload, "payload", "", "Path to the raw payload file (required)")
	f.StringVar(&c.flagSignature, "signature", "", "Value of the X-Rynko-Signature header (required)")
	f.StringVar(&c.flagTimestamp, "timestamp", "", "Value of the X-Rynko-Timestamp header (required)")
	f.StringVar(&c.flagSecret, "secret", "", "Webhook signing secret (required)")

	return f
}

func (c *VerifyCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	for _, req := range []struct{ name, val string }{
		{"payload", c.flagPayload},
		{"signature", c.flagSignature},
		{"timestamp", c.flagTimestamp},
		{"secret", c.flagSecret},
	} {
		if req.val == "" {
			c.UI.Error(fmt.Sprintf("-%s is required", req.name))
			return 1
		}
	}

	payload, err := afero.ReadFile(c.FS, c.flagPayload)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading %s: %v", c.flagPayload, err))
		return 1
	}

	v := webhook.NewVerifier(c.flagSecret)
	event, err := v.ConstructEvent(payload, c.flagSignature, c.flagTimestamp)
	if err != nil {
		c.UI.Error(fmt.Sprintf("signature invalid: %v", err))
		return 1
	}

	c.UI.Output("signature valid")
	c.UI.Output(fmt.Sprintf("event: %s (%s)", event.ID, event.Type))
	return 0
}
