package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	"github.com/m-kato/renoscope/pkg/domain/model"
	"github.com/m-kato/renoscope/pkg/utils/async"
)

type webhookUseCase struct {
	reviewUC   interfaces.ReviewUseCase
	repository string // owner/repo this instance serves
}

// NewWebhook creates a new instance of WebhookUseCase. Events for any
// repository other than the given one are ignored.
func NewWebhook(reviewUC interfaces.ReviewUseCase, repository string) interfaces.WebhookUseCase {
	return &webhookUseCase{
		reviewUC:   reviewUC,
		repository: repository,
	}
}

// ProcessEvent processes a webhook event. Supported pull_request events
// trigger the review flow asynchronously; the webhook response does not
// wait for the review to finish.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Info("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if event.Repository != uc.repository {
		logger.Info("Ignoring event for unserved repository",
			"repository", event.Repository,
			"served", uc.repository,
		)
		return nil
	}

	var prEvent github.PullRequestEvent
	if err := json.Unmarshal(event.RawPayload, &prEvent); err != nil {
		return goerr.Wrap(err, "failed to unmarshal pull_request event")
	}

	number := prEvent.GetPullRequest().GetNumber()
	if number <= 0 {
		logger.Warn("Pull request event without a valid number")
		return nil
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		result, err := uc.reviewUC.PostReview(ctx, number)
		if err != nil {
			return err
		}
		if result != nil {
			ctxlog.From(ctx).Info("Posted review from webhook",
				"number", number,
				"action", result.Action,
				"comment_id", result.CommentID,
			)
		}
		return nil
	})

	return nil
}
