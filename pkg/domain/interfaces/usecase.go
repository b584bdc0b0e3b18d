package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . WebhookUseCase ReviewGenerator

import (
	"context"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

// ReviewUseCase drives the inspection and review flow for one pull request
type ReviewUseCase interface {
	// Inspect fetches the pull request, scrapes dependency updates and
	// generates a review without posting anything
	Inspect(ctx context.Context, number int) (*model.Inspection, error)

	// PostReview runs the full flow and reconciles the review comment on
	// the pull request. Returns nil without error when the pull request is
	// not bot-authored.
	PostReview(ctx context.Context, number int) (*model.CommentResult, error)
}

// ReviewGenerator produces a structured review for a set of dependency
// updates. Implementations are selected by configuration at construction
// time: a static one fed with operator-supplied text, or an LLM-backed one.
type ReviewGenerator interface {
	GenerateReview(ctx context.Context, pr *model.PullRequest, updates []*model.DependencyUpdate) (*model.ReviewResult, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
