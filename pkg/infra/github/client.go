package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	"github.com/m-kato/renoscope/pkg/domain/model"
)

const perPage = 100

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
}

// NewClient creates a GitHub client bound to one repository, authenticated
// with a personal access token
func NewClient(token, owner, repo string) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("github token is required")
	}
	if owner == "" || repo == "" {
		return nil, goerr.New("repository owner and name are required",
			goerr.V("owner", owner), goerr.V("repo", repo))
	}

	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
		owner:        owner,
		repo:         repo,
	}, nil
}

// GetPullRequest fetches one pull request snapshot
func (c *client) GetPullRequest(ctx context.Context, number int) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("number", number))
	}

	return &model.PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		User: model.Author{
			Login: pr.GetUser().GetLogin(),
			Type:  pr.GetUser().GetType(),
		},
		Base: model.GitRef{
			Ref: pr.GetBase().GetRef(),
			SHA: pr.GetBase().GetSHA(),
		},
		Head: model.GitRef{
			Ref: pr.GetHead().GetRef(),
			SHA: pr.GetHead().GetSHA(),
		},
		State:        model.PullRequestState(pr.GetState()),
		Draft:        pr.GetDraft(),
		Mergeable:    pr.Mergeable,
		ChangedFiles: pr.GetChangedFiles(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		HTMLURL:      pr.GetHTMLURL(),
	}, nil
}

// ListPullRequestFiles returns all changed files, following pagination
func (c *client) ListPullRequestFiles(ctx context.Context, number int) ([]*model.PullRequestFile, error) {
	var files []*model.PullRequestFile

	opts := &github.ListOptions{PerPage: perPage}
	for {
		page, resp, err := c.githubClient.PullRequests.ListFiles(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request files",
				goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("number", number))
		}

		for _, f := range page {
			files = append(files, &model.PullRequestFile{
				Filename:         f.GetFilename(),
				Status:           model.FileStatus(f.GetStatus()),
				Additions:        f.GetAdditions(),
				Deletions:        f.GetDeletions(),
				Changes:          f.GetChanges(),
				Patch:            f.GetPatch(),
				PreviousFilename: f.GetPreviousFilename(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

// ListIssueComments returns all conversation comments in creation order
func (c *client) ListIssueComments(ctx context.Context, number int) ([]*model.IssueComment, error) {
	var comments []*model.IssueComment

	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		page, resp, err := c.githubClient.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list issue comments",
				goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("number", number))
		}

		for _, cm := range page {
			comments = append(comments, &model.IssueComment{
				ID:   cm.GetID(),
				Body: cm.GetBody(),
				User: model.Author{
					Login: cm.GetUser().GetLogin(),
					Type:  cm.GetUser().GetType(),
				},
				CreatedAt: cm.GetCreatedAt().Format("2006-01-02T15:04:05Z07:00"),
				UpdatedAt: cm.GetUpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return comments, nil
}

// CreateComment creates a new conversation comment
func (c *client) CreateComment(ctx context.Context, number int, body string) (*model.IssueComment, error) {
	created, _, err := c.githubClient.Issues.CreateComment(ctx, c.owner, c.repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create comment",
			goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("number", number))
	}

	return &model.IssueComment{
		ID:   created.GetID(),
		Body: created.GetBody(),
		User: model.Author{
			Login: created.GetUser().GetLogin(),
			Type:  created.GetUser().GetType(),
		},
	}, nil
}

// UpdateComment replaces the body of an existing comment
func (c *client) UpdateComment(ctx context.Context, commentID int64, body string) error {
	_, _, err := c.githubClient.Issues.EditComment(ctx, c.owner, c.repo, commentID, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update comment",
			goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("comment_id", commentID))
	}
	return nil
}

// CommentURL builds the canonical URL of a conversation comment
func (c *client) CommentURL(number int, commentID int64) string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d#issuecomment-%d", c.owner, c.repo, number, commentID)
}
