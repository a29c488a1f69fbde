// Package cli implements the cng-analyzer command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cng-analyzer/internal/config"
	"cng-analyzer/internal/logging"
)

const tabPadding = 2

// env carries what PersistentPreRunE resolved to the subcommands.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root command reading the process environment.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(lookupEnv func(string) (string, bool)) *cobra.Command {
	e := &env{logger: zerolog.Nop()}
	var (
		cfgPath string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:          "cng-analyzer",
		Short:        "Petrol vs CNG conversion cost analyzer",
		Long:         "Compare the running cost of petrol and CNG for a vehicle and estimate how long a conversion takes to pay for itself.",
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := cfgPath
			if path == "" {
				path, _ = lookupEnv("CNG_CONFIG")
			}
			cfg, err := config.LoadUnchecked(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.ApplyEnv(lookupEnv)
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.Logging.Level
			if debug {
				level = "debug"
			}
			e.cfg = cfg
			e.logger = logging.New(logging.Config{
				Level:  level,
				Format: cfg.Logging.Format,
				Out:    cmd.ErrOrStderr(),
			})
			e.logger.Debug().Str("config", path).Str("log_file", cfg.LogFile).Msg("config loaded")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config (default $CNG_CONFIG)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.AddCommand(newAnalyzeCmd(e), newRankCmd(e), newHistoryCmd(e))

	return cmd
}

const rootCmdExample = `  # Analyze with the built-in defaults
  cng-analyzer analyze

  # Analyze a taxi doing 4000 km a month and export the report
  cng-analyzer analyze --distance 4000 --pdf report.pdf --xlsx report.xlsx

  # Rank several vehicles from a file
  cng-analyzer rank --scenarios fleet.yaml

  # Show the last 10 logged analyses
  cng-analyzer history --limit 10`
