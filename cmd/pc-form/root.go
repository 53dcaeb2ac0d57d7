package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/product-catalog/internal/client"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/console"
	"github.com/tuanvumaihuynh/product-catalog/internal/form"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

const (
	apiURLFlag  = "api-url"
	timeoutFlag = "timeout"
)

var rootFlags = map[string]cobraflags.Flag{
	apiURLFlag: &cobraflags.StringFlag{
		Name:  apiURLFlag,
		Value: "",
		Usage: "Product API base URL (overrides CLIENT_API_URL)",
	},
	timeoutFlag: &cobraflags.StringFlag{
		Name:  timeoutFlag,
		Value: "",
		Usage: "Per-request timeout such as 5s (overrides CLIENT_TIMEOUT)",
	},
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pc-form",
		Short: "Interactive product catalog form",
		Long: `Interactive product catalog form.

Lists the products stored behind the product API and edits one draft at a
time. Type help at the prompt for the available commands.

Examples:
  pc-form                                   # talk to http://localhost:8082
  pc-form --api-url http://catalog:8082     # talk to another backend`,
		SilenceUsage: true,
		RunE:         runForm,
	}

	cobraflags.RegisterMap(cmd, rootFlags)
	return cmd
}

func runForm(cmd *cobra.Command, _ []string) error {
	type Config struct {
		Log    config.Log
		Client config.Client
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if apiURL := rootFlags[apiURLFlag].GetString(); apiURL != "" {
		cfg.Client.APIURL = apiURL
	}
	if timeout := rootFlags[timeoutFlag].GetString(); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", timeoutFlag, err)
		}
		cfg.Client.Timeout = d
	}

	logger := log.New(os.Stderr, cfg.Log)

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	f := form.New(client.New(cfg.Client), v)
	shell := console.New(f, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	return shell.Run(cmd.Context())
}
