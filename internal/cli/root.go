// Package cli implements the estoque terminal client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"estoque/internal/client"
	"estoque/internal/config"
	"estoque/internal/ui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X estoque/internal/cli.Version=...".
var Version = "dev"

const requestTimeout = 15 * time.Second

// app carries the flag values and the dependencies built for one invocation.
type app struct {
	configDir string
	apiURL    string
	logLevel  string
	json      bool

	cfg    *viper.Viper
	logger zerolog.Logger
	client *client.Client
	store  *ui.Store
}

// NewRootCommand builds the command tree. Each call returns an independent tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "estoque",
		Short:         "estoque manages the pasta inventory through the products API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "products API base URL (default "+client.DefaultBaseURL+")")
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding config.yaml (default: user config dir/estoque)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "output as JSON")

	root.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.addCommand(),
		a.editCommand(),
		a.deleteCommand(),
		a.healthCommand(),
		versionCommand(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configDir)
	if err != nil {
		return err
	}
	if err := cfg.BindPFlag(cfgKeyAPIURL, cmd.Flags().Lookup("api-url")); err != nil {
		return fmt.Errorf("bind api-url flag: %w", err)
	}
	a.cfg = cfg

	a.logger = config.NewLoggerTo(cmd.ErrOrStderr(), config.LoggerConfig{
		Level:  a.logLevel,
		Format: "console",
	})
	a.client = client.New(cfg.GetString(cfgKeyAPIURL), client.WithLogger(a.logger))
	a.store = ui.NewStore(a.client, a.logger)

	a.logger.Debug().Str("api_url", a.client.BaseURL()).Msg("Client configured")
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
