// Command qtest reads queue commands from standard input and runs
// them against a strq.Queue. Run "qtest" and type "help" for a list
// of commands.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"deedles.dev/strq/internal/console"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	if err := command(logger).ExecuteContext(ctx); err != nil {
		logger.WithContext(ctx).Fatal(err)
	}
}

func command(logger *logrus.Logger) *cobra.Command {
	cfg := console.DefaultConfig()
	var level string

	cmd := &cobra.Command{
		Use:           "qtest",
		Short:         "Interactive driver for a string queue",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return errors.Wrap(err, "qtest : invalid log level")
			}
			cfg.LogLevel = lvl
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "qtest : invalid flags")
			}

			c := console.New(cfg, logger, cmd.OutOrStdout())
			return c.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbosity level")
	flags.IntVarP(&cfg.Length, "length", "l", cfg.Length, "size of the buffer removed values are copied into")
	flags.StringVar(&level, "log-level", cfg.LogLevel.String(), "logging level")

	return cmd
}
