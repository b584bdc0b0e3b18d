package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-kato/renoscope/pkg/cli/config"
	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	githubinfra "github.com/m-kato/renoscope/pkg/infra/github"
	"github.com/m-kato/renoscope/pkg/usecase"
)

func cmdPost() *cli.Command {
	var (
		githubCfg   config.GitHub
		aiCfg       config.AI
		prNumber    string
		aiReview    string
		summaryPath string
	)

	flags := append(githubCfg.Flags(), aiCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "pr-number",
			Usage:       "Pull request number (positional argument takes precedence)",
			Destination: &prNumber,
			Sources:     cli.EnvVars("RENOSCOPE_PR_NUMBER", "PR_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "ai-review",
			Usage:       "Operator-supplied AI response text; skips the AI call when set",
			Destination: &aiReview,
			Sources:     cli.EnvVars("AI_REVIEW"),
		},
		&cli.StringFlag{
			Name:        "summary-file",
			Usage:       "Path of a Markdown step-summary file to append to",
			Destination: &summaryPath,
			Sources:     cli.EnvVars("GITHUB_STEP_SUMMARY"),
		},
	)

	return &cli.Command{
		Name:      "post",
		Usage:     "Review a pull request and post (or refresh) the review comment",
		ArgsUsage: "[pr-number]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			arg := c.Args().First()
			if arg == "" {
				arg = prNumber
			}
			if arg == "" {
				return goerr.New("PR number is required (argument or PR_NUMBER)")
			}
			number, err := strconv.Atoi(arg)
			if err != nil || number <= 0 {
				return goerr.New("invalid PR number", goerr.V("arg", arg))
			}

			owner, repo, err := githubCfg.Split()
			if err != nil {
				return err
			}

			githubClient, err := githubinfra.NewClient(githubCfg.Token, owner, repo)
			if err != nil {
				return err
			}

			generator, err := aiCfg.NewGenerator(ctx, aiReview)
			if err != nil {
				return err
			}

			return runPost(ctx, githubClient, generator, number, summaryPath)
		},
	}
}

// runActionsPost is the bare-invocation entrypoint used inside GitHub
// Actions: all inputs come from the well-known environment variables and
// the review text comes from a preceding inference step when present.
func runActionsPost(ctx context.Context) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return goerr.New("GITHUB_TOKEN environment variable is required")
	}
	repository := os.Getenv("GITHUB_REPOSITORY")
	if repository == "" {
		return goerr.New("GITHUB_REPOSITORY environment variable is required")
	}

	githubCfg := config.GitHub{Token: token, Repository: repository}
	owner, repo, err := githubCfg.Split()
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(os.Getenv("PR_NUMBER"))
	if err != nil || number <= 0 {
		return goerr.New("invalid PR_NUMBER environment variable",
			goerr.V("value", os.Getenv("PR_NUMBER")))
	}

	githubClient, err := githubinfra.NewClient(token, owner, repo)
	if err != nil {
		return err
	}

	generator := usecase.NewStaticReviewGenerator(os.Getenv("AI_REVIEW"))

	return runPost(ctx, githubClient, generator, number, os.Getenv("GITHUB_STEP_SUMMARY"))
}

func runPost(ctx context.Context, githubClient interfaces.GitHubClient, generator interfaces.ReviewGenerator, number int, summaryPath string) error {
	logger := ctxlog.From(ctx)

	var opts []usecase.ReviewOption
	if summaryPath != "" {
		opts = append(opts, usecase.WithStepSummaryPath(summaryPath))
	}

	uc := usecase.NewReview(githubClient, generator, opts...)

	result, err := uc.PostReview(ctx, number)
	if err != nil {
		return err
	}
	if result == nil {
		logger.Info("Not a dependency-update bot PR, nothing posted", "number", number)
		return nil
	}

	fmt.Printf("✅ AI review comment %s: %s\n", result.Action, result.CommentURL)
	return nil
}
