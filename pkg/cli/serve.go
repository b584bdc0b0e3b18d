package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-kato/renoscope/pkg/cli/config"
	controller "github.com/m-kato/renoscope/pkg/controller/http"
	githubinfra "github.com/m-kato/renoscope/pkg/infra/github"
	"github.com/m-kato/renoscope/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		aiCfg     config.AI
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, aiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the webhook server and review bot PRs on pull_request events",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			owner, repo, err := githubCfg.Split()
			if err != nil {
				return err
			}

			githubClient, err := githubinfra.NewClient(githubCfg.Token, owner, repo)
			if err != nil {
				return err
			}

			generator, err := aiCfg.NewGenerator(ctx, "")
			if err != nil {
				return err
			}

			// Create use cases
			reviewUC := usecase.NewReview(githubClient, generator)
			webhookUC := usecase.NewWebhook(reviewUC, githubCfg.Repository)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
				controller.WithRepository(githubCfg.Repository),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
