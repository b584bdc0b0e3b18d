package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-kato/renoscope/pkg/cli/config"
	"github.com/m-kato/renoscope/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "renoscope",
		Usage:   "AI reviewer for dependency-update pull requests",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdReview(),
			cmdPost(),
			cmdServe(),
		},
		// Bare invocation: act as the GitHub Actions entrypoint when a PR
		// number is present in the environment, otherwise show usage.
		Action: func(ctx context.Context, c *cli.Command) error {
			if os.Getenv("PR_NUMBER") == "" {
				return cli.ShowAppHelp(c)
			}
			return runActionsPost(ctx)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
