package github_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-kato/renoscope/pkg/infra/github"
)

func TestNewClient_Validation(t *testing.T) {
	t.Run("requires token", func(t *testing.T) {
		_, err := githubinfra.NewClient("", "octo-org", "octo-repo")
		gt.Error(t, err)
	})

	t.Run("requires owner and repo", func(t *testing.T) {
		_, err := githubinfra.NewClient("token", "", "octo-repo")
		gt.Error(t, err)

		_, err = githubinfra.NewClient("token", "octo-org", "")
		gt.Error(t, err)
	})

	t.Run("valid inputs", func(t *testing.T) {
		client, err := githubinfra.NewClient("token", "octo-org", "octo-repo")
		gt.NoError(t, err)
		gt.Value(t, client).NotNil()
	})
}

func TestClient_CommentURL(t *testing.T) {
	client, err := githubinfra.NewClient("token", "octo-org", "octo-repo")
	gt.NoError(t, err)

	url := client.CommentURL(123, 456789)
	gt.Equal(t, url, "https://github.com/octo-org/octo-repo/pull/123#issuecomment-456789")
}

func TestClient_WithRealAPI(t *testing.T) {
	// Integration test with real GitHub API. Requires test environment
	// variables pointing at a repository with an open pull request.
	token := os.Getenv("TEST_GITHUB_TOKEN")
	repository := os.Getenv("TEST_GITHUB_REPOSITORY")
	owner := os.Getenv("TEST_GITHUB_OWNER")
	prNumber := os.Getenv("TEST_GITHUB_PR_NUMBER")

	if token == "" || repository == "" || owner == "" || prNumber == "" {
		t.Skip("Test GitHub credentials not provided via environment variables")
	}

	client, err := githubinfra.NewClient(token, owner, repository)
	gt.NoError(t, err)

	ctx := context.Background()
	pr, err := client.GetPullRequest(ctx, 1)
	gt.NoError(t, err)
	gt.Value(t, pr).NotNil()
}
