package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient

import (
	"context"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API.
// The client is bound to a single repository at construction time, so all
// operations take a pull request number only.
type GitHubClient interface {
	// GetPullRequest fetches one pull request snapshot
	GetPullRequest(ctx context.Context, number int) (*model.PullRequest, error)

	// ListPullRequestFiles returns all changed files, following pagination
	ListPullRequestFiles(ctx context.Context, number int) ([]*model.PullRequestFile, error)

	// ListIssueComments returns all conversation comments in creation order
	ListIssueComments(ctx context.Context, number int) ([]*model.IssueComment, error)

	// CreateComment creates a new conversation comment
	CreateComment(ctx context.Context, number int, body string) (*model.IssueComment, error)

	// UpdateComment replaces the body of an existing comment
	UpdateComment(ctx context.Context, commentID int64, body string) error

	// CommentURL builds the canonical URL of a conversation comment
	CommentURL(number int, commentID int64) string
}
