package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crystalix007/numband/internal/config"
	"github.com/crystalix007/numband/internal/logging"
)

// app carries what every subcommand needs once flags and environment have
// been resolved.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
		output   string
		resolved app
	)

	cmd := &cobra.Command{
		Use:           "numband",
		Short:         "Split the real line into bands at a list of numbers",
		Long:          `numband partitions the real line at the numbers found in free-form text and keeps band annotations across edits of that text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			if cmd.Flags().Changed("log-level") {
				cfg = cfg.WithLogLevel(logLevel)
			}

			if cmd.Flags().Changed("output") {
				cfg = cfg.WithOutput(config.Output(strings.ToLower(output)))
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}

			resolved = app{cfg: cfg, logger: logger}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if resolved.logger != nil {
				_ = resolved.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", string(config.DefaultOutput), "output format (text or yaml)")

	cmd.AddCommand(bandsCmd(&resolved))
	cmd.AddCommand(cleanCmd())
	cmd.AddCommand(locateCmd(&resolved))
	cmd.AddCommand(sessionCmd(&resolved))
	cmd.AddCommand(versionCmd())

	return cmd
}

// inputText joins the arguments, or reads all of stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}

	return string(data), nil
}
