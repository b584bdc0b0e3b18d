package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token      string
	Repository string // owner/repo
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("RENOSCOPE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository in owner/repo format",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("RENOSCOPE_REPOSITORY", "GITHUB_REPOSITORY"),
		},
	}
}

// Split validates the owner/repo format and returns both parts
func (c *GitHub) Split() (string, string, error) {
	parts := strings.Split(c.Repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("invalid repository format, expected owner/repo",
			goerr.V("repository", c.Repository))
	}
	return parts[0], parts[1], nil
}
