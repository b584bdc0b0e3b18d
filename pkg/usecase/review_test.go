package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-kato/renoscope/pkg/domain/interfaces/mocks"
	"github.com/m-kato/renoscope/pkg/domain/model"
	"github.com/m-kato/renoscope/pkg/usecase"
)

func renovatePR(number int) *model.PullRequest {
	return &model.PullRequest{
		Number:       number,
		Title:        "chore(deps): update dependency lodash to v4.17.21",
		Body:         "This PR contains the following updates",
		User:         model.Author{Login: "renovate[bot]", Type: "Bot"},
		State:        model.PullRequestOpen,
		ChangedFiles: 1,
		Additions:    1,
		Deletions:    1,
	}
}

func lockfileChange() []*model.PullRequestFile {
	return []*model.PullRequestFile{
		{
			Filename: "package.json",
			Status:   model.FileModified,
			Patch: `-    "lodash": "4.17.20",
+    "lodash": "4.17.21",`,
		},
	}
}

func newGitHubMock(pr *model.PullRequest, files []*model.PullRequestFile, comments []*model.IssueComment) *mocks.GitHubClientMock {
	return &mocks.GitHubClientMock{
		GetPullRequestFunc: func(ctx context.Context, number int) (*model.PullRequest, error) {
			return pr, nil
		},
		ListPullRequestFilesFunc: func(ctx context.Context, number int) ([]*model.PullRequestFile, error) {
			return files, nil
		},
		ListIssueCommentsFunc: func(ctx context.Context, number int) ([]*model.IssueComment, error) {
			return comments, nil
		},
		CreateCommentFunc: func(ctx context.Context, number int, body string) (*model.IssueComment, error) {
			return &model.IssueComment{ID: 9001, Body: body}, nil
		},
		UpdateCommentFunc: func(ctx context.Context, commentID int64, body string) error {
			return nil
		},
		CommentURLFunc: func(number int, commentID int64) string {
			return "https://github.com/test/repo/pull/1#issuecomment-9001"
		},
	}
}

func TestCreateOrUpdateReviewComment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when no marked comment exists", func(t *testing.T) {
		client := newGitHubMock(nil, nil, []*model.IssueComment{
			{ID: 1, Body: "unrelated human comment"},
		})

		result, err := usecase.CreateOrUpdateReviewComment(ctx, client, 1, "review body")
		gt.NoError(t, err)
		gt.Equal(t, result.Action, model.CommentCreated)
		gt.Equal(t, result.CommentID, int64(9001))

		created := client.CreateCommentCalls()
		gt.A(t, created).Length(1)
		gt.True(t, strings.HasPrefix(created[0].Body, usecase.ReviewMarker+"\n"))
		gt.True(t, strings.Contains(created[0].Body, "review body"))
		gt.A(t, client.UpdateCommentCalls()).Length(0)
	})

	t.Run("updates the first marked comment", func(t *testing.T) {
		client := newGitHubMock(nil, nil, []*model.IssueComment{
			{ID: 1, Body: "unrelated human comment"},
			{ID: 2, Body: usecase.ReviewMarker + "\nold review"},
			{ID: 3, Body: usecase.ReviewMarker + "\nstray duplicate"},
		})

		result, err := usecase.CreateOrUpdateReviewComment(ctx, client, 1, "new review")
		gt.NoError(t, err)
		gt.Equal(t, result.Action, model.CommentUpdated)
		gt.Equal(t, result.CommentID, int64(2))

		updated := client.UpdateCommentCalls()
		gt.A(t, updated).Length(1)
		gt.Equal(t, updated[0].CommentID, int64(2))
		gt.True(t, strings.Contains(updated[0].Body, "new review"))
		gt.A(t, client.CreateCommentCalls()).Length(0)
	})
}

func TestReviewUseCase_Inspect(t *testing.T) {
	ctx := context.Background()

	t.Run("skips analysis for non-bot PRs", func(t *testing.T) {
		pr := &model.PullRequest{
			Number: 5,
			Title:  "Add new feature",
			Body:   "Hand-written change",
			User:   model.Author{Login: "alice", Type: "User"},
		}
		client := newGitHubMock(pr, nil, nil)
		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(""))

		insp, err := uc.Inspect(ctx, 5)
		gt.NoError(t, err)
		gt.False(t, insp.Bot)
		gt.A(t, client.ListPullRequestFilesCalls()).Length(0)
	})

	t.Run("analyzes bot PRs and generates a review", func(t *testing.T) {
		client := newGitHubMock(renovatePR(1), lockfileChange(), nil)
		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(sampleResponse))

		insp, err := uc.Inspect(ctx, 1)
		gt.NoError(t, err)
		gt.True(t, insp.Bot)
		gt.A(t, insp.Updates).Length(1)
		gt.Equal(t, insp.Updates[0].PackageName, "lodash")
		gt.Equal(t, insp.Review.Recommendation, model.RecommendApprove)
	})

	t.Run("title match is enough without a bot login", func(t *testing.T) {
		pr := &model.PullRequest{
			Number: 6,
			Title:  "Renovate: update all minor dependencies",
			User:   model.Author{Login: "forked-bot", Type: "User"},
		}
		client := newGitHubMock(pr, nil, nil)
		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(""))

		insp, err := uc.Inspect(ctx, 6)
		gt.NoError(t, err)
		gt.True(t, insp.Bot)
	})
}

func TestReviewUseCase_PostReview(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil for non-bot PRs without posting", func(t *testing.T) {
		pr := &model.PullRequest{
			Number: 5,
			Title:  "Add new feature",
			User:   model.Author{Login: "alice", Type: "User"},
		}
		client := newGitHubMock(pr, nil, nil)
		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(""))

		result, err := uc.PostReview(ctx, 5)
		gt.NoError(t, err)
		gt.Value(t, result).Nil()
		gt.A(t, client.CreateCommentCalls()).Length(0)
	})

	t.Run("posts a formatted review comment", func(t *testing.T) {
		client := newGitHubMock(renovatePR(1), lockfileChange(), nil)
		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(sampleResponse))

		result, err := uc.PostReview(ctx, 1)
		gt.NoError(t, err)
		gt.Equal(t, result.Action, model.CommentCreated)

		created := client.CreateCommentCalls()
		gt.A(t, created).Length(1)
		gt.True(t, strings.Contains(created[0].Body, "## 🤖 AI Review: Dependency Updates"))
		gt.True(t, strings.Contains(created[0].Body, "✅ **Approve**"))
	})

	t.Run("repeated runs converge on one comment", func(t *testing.T) {
		var stored []*model.IssueComment
		client := newGitHubMock(renovatePR(1), lockfileChange(), nil)
		client.ListIssueCommentsFunc = func(ctx context.Context, number int) ([]*model.IssueComment, error) {
			return stored, nil
		}
		client.CreateCommentFunc = func(ctx context.Context, number int, body string) (*model.IssueComment, error) {
			comment := &model.IssueComment{ID: 9001, Body: body}
			stored = append(stored, comment)
			return comment, nil
		}

		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(sampleResponse))

		first, err := uc.PostReview(ctx, 1)
		gt.NoError(t, err)
		gt.Equal(t, first.Action, model.CommentCreated)

		second, err := uc.PostReview(ctx, 1)
		gt.NoError(t, err)
		gt.Equal(t, second.Action, model.CommentUpdated)
		gt.Equal(t, second.CommentID, first.CommentID)
		gt.A(t, stored).Length(1)
	})

	t.Run("appends a step summary when configured", func(t *testing.T) {
		client := newGitHubMock(renovatePR(1), lockfileChange(), nil)
		summaryPath := filepath.Join(t.TempDir(), "summary.md")

		uc := usecase.NewReview(client, usecase.NewStaticReviewGenerator(sampleResponse),
			usecase.WithStepSummaryPath(summaryPath))

		_, err := uc.PostReview(ctx, 1)
		gt.NoError(t, err)

		content, err := os.ReadFile(summaryPath)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(content), "## 🤖 AI Dependency Review"))
		gt.True(t, strings.Contains(string(content), "#1"))
	})
}
