package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	"github.com/m-kato/renoscope/pkg/domain/model"
)

// ReviewMarker is the hidden token that identifies the one review comment
// this tool owns on a pull request
const ReviewMarker = "<!-- renoscope:ai-review -->"

// summaryPreviewLen is how much of the comment body the step-summary file shows
const summaryPreviewLen = 200

type reviewUseCase struct {
	githubClient interfaces.GitHubClient
	generator    interfaces.ReviewGenerator
	summaryPath  string
}

// ReviewOption is a functional option for the review use case
type ReviewOption func(*reviewUseCase)

// WithStepSummaryPath enables writing a short Markdown summary to the given
// file after posting (e.g. the GITHUB_STEP_SUMMARY file). Write failures
// are logged and never fatal.
func WithStepSummaryPath(path string) ReviewOption {
	return func(uc *reviewUseCase) {
		uc.summaryPath = path
	}
}

// NewReview creates a new instance of ReviewUseCase
func NewReview(githubClient interfaces.GitHubClient, generator interfaces.ReviewGenerator, opts ...ReviewOption) interfaces.ReviewUseCase {
	uc := &reviewUseCase{
		githubClient: githubClient,
		generator:    generator,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Inspect fetches the pull request, scrapes dependency updates from its
// diffs and generates a review, without posting anything
func (uc *reviewUseCase) Inspect(ctx context.Context, number int) (*model.Inspection, error) {
	logger := ctxlog.From(ctx)

	pr, err := uc.githubClient.GetPullRequest(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch pull request", goerr.V("number", number))
	}

	logger.Info("Inspecting pull request",
		"number", pr.Number,
		"title", pr.Title,
		"author", pr.User.Login,
	)

	if !pr.IsRenovate() {
		logger.Info("Not a dependency-update bot PR, skipping analysis")
		return &model.Inspection{PR: pr}, nil
	}

	files, err := uc.githubClient.ListPullRequestFiles(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull request files", goerr.V("number", number))
	}

	updates := AnalyzeDependencyUpdates(pr, files)

	logger.Info("Analyzed dependency updates",
		"file_count", len(files),
		"update_count", len(updates),
	)

	review, err := uc.generator.GenerateReview(ctx, pr, updates)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate review", goerr.V("number", number))
	}

	return &model.Inspection{
		PR:      pr,
		Bot:     true,
		Updates: updates,
		Review:  review,
	}, nil
}

// PostReview runs the full flow and reconciles the review comment on the
// pull request. Returns nil without error when the pull request is not
// bot-authored.
func (uc *reviewUseCase) PostReview(ctx context.Context, number int) (*model.CommentResult, error) {
	logger := ctxlog.From(ctx)

	insp, err := uc.Inspect(ctx, number)
	if err != nil {
		return nil, err
	}
	if !insp.Bot {
		return nil, nil
	}

	body := FormatReviewComment(insp.Review)

	result, err := CreateOrUpdateReviewComment(ctx, uc.githubClient, number, body)
	if err != nil {
		return nil, err
	}

	logger.Info("Review comment reconciled",
		"action", result.Action,
		"comment_id", result.CommentID,
		"comment_url", result.CommentURL,
	)

	if uc.summaryPath != "" {
		if err := writeStepSummary(uc.summaryPath, insp.PR, body); err != nil {
			logger.Warn("Failed to write step summary", "path", uc.summaryPath, "error", err)
		}
	}

	return result, nil
}

// CreateOrUpdateReviewComment finds the marked review comment on the pull
// request and updates it, or creates one when none exists. Sequential
// invocations keep at most one marked comment alive. There is no
// cross-process lock: two concurrent invocations can both see "not found"
// and both create a comment.
func CreateOrUpdateReviewComment(ctx context.Context, githubClient interfaces.GitHubClient, number int, body string) (*model.CommentResult, error) {
	marked := ReviewMarker + "\n" + body

	comments, err := githubClient.ListIssueComments(ctx, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list comments", goerr.V("number", number))
	}

	for _, comment := range comments {
		if !strings.Contains(comment.Body, ReviewMarker) {
			continue
		}
		if err := githubClient.UpdateComment(ctx, comment.ID, marked); err != nil {
			return nil, goerr.Wrap(err, "failed to update review comment",
				goerr.V("number", number), goerr.V("comment_id", comment.ID))
		}
		return &model.CommentResult{
			Action:     model.CommentUpdated,
			CommentID:  comment.ID,
			CommentURL: githubClient.CommentURL(number, comment.ID),
		}, nil
	}

	created, err := githubClient.CreateComment(ctx, number, marked)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create review comment", goerr.V("number", number))
	}
	return &model.CommentResult{
		Action:     model.CommentCreated,
		CommentID:  created.ID,
		CommentURL: githubClient.CommentURL(number, created.ID),
	}, nil
}

func writeStepSummary(path string, pr *model.PullRequest, commentBody string) error {
	preview := commentBody
	if len(preview) > summaryPreviewLen {
		preview = preview[:summaryPreviewLen] + "..."
	}

	var sb strings.Builder
	sb.WriteString("## 🤖 AI Dependency Review\n\n")
	sb.WriteString(fmt.Sprintf("- PR: #%d %s\n", pr.Number, pr.Title))
	sb.WriteString(fmt.Sprintf("- Author: %s\n", pr.User.Login))
	sb.WriteString(fmt.Sprintf("- Changed files: %d (+%d / -%d)\n\n", pr.ChangedFiles, pr.Additions, pr.Deletions))
	sb.WriteString("### Comment preview\n\n")
	sb.WriteString(preview + "\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open step summary file", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := f.WriteString(sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write step summary file", goerr.V("path", path))
	}
	return nil
}
