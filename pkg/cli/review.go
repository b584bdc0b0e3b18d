package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-kato/renoscope/pkg/cli/config"
	githubinfra "github.com/m-kato/renoscope/pkg/infra/github"
	"github.com/m-kato/renoscope/pkg/usecase"
)

func cmdReview() *cli.Command {
	var (
		githubCfg config.GitHub
		aiCfg     config.AI
	)

	flags := append(githubCfg.Flags(), aiCfg.Flags()...)

	return &cli.Command{
		Name:      "review",
		Usage:     "Analyze a pull request and print the review to the console (no posting)",
		ArgsUsage: "<pr-number>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			number, err := prNumberArg(c)
			if err != nil {
				return err
			}

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

			uc := usecase.NewReview(githubClient, generator)

			fmt.Printf("🔍 Analyzing PR #%d in %s\n", number, githubCfg.Repository)

			insp, err := uc.Inspect(ctx, number)
			if err != nil {
				return err
			}

			fmt.Printf("📋 PR Title: %s\n", insp.PR.Title)
			fmt.Printf("👤 Author: %s\n", insp.PR.User.Login)

			if !insp.Bot {
				color.Yellow("⚠️  This is not a Renovate PR")
				return nil
			}

			color.Green("✅ Confirmed as Renovate PR")

			fmt.Printf("📦 Found %d dependency updates:\n", len(insp.Updates))
			for _, update := range insp.Updates {
				fmt.Printf("   • %s: %s → %s (%s)\n",
					update.PackageName, update.CurrentVersion, update.NewVersion, update.ChangeType)
			}

			fmt.Println("📝 Review Summary:")
			fmt.Printf("   Summary: %s\n", insp.Review.Summary)
			fmt.Printf("   Recommendation: %s\n", insp.Review.Recommendation)
			if n := len(insp.Review.SecurityIssues); n > 0 {
				fmt.Printf("   Security Issues: %d\n", n)
			}
			if n := len(insp.Review.BreakingChanges); n > 0 {
				fmt.Printf("   Breaking Changes: %d\n", n)
			}

			color.Green("✅ Analysis complete")
			return nil
		},
	}
}

// prNumberArg reads the pull request number from the first positional
// argument
func prNumberArg(c *cli.Command) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, goerr.New("PR number is required")
	}
	number, err := strconv.Atoi(arg)
	if err != nil || number <= 0 {
		return 0, goerr.New("invalid PR number", goerr.V("arg", arg))
	}
	return number, nil
}
