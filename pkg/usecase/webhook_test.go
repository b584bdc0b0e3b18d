package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/gt"

	"github.com/m-kato/renoscope/pkg/domain/model"
	"github.com/m-kato/renoscope/pkg/usecase"
)

// reviewUseCaseStub records PostReview invocations and signals on a channel
// so tests can wait for the async dispatch to complete
type reviewUseCaseStub struct {
	posted chan int
}

func newReviewUseCaseStub() *reviewUseCaseStub {
	return &reviewUseCaseStub{posted: make(chan int, 1)}
}

func (s *reviewUseCaseStub) Inspect(ctx context.Context, number int) (*model.Inspection, error) {
	return nil, nil
}

func (s *reviewUseCaseStub) PostReview(ctx context.Context, number int) (*model.CommentResult, error) {
	s.posted <- number
	return &model.CommentResult{Action: model.CommentCreated, CommentID: 1}, nil
}

func pullRequestEventPayload(t *testing.T, number int) []byte {
	t.Helper()
	event := &github.PullRequestEvent{
		Action: github.Ptr("opened"),
		PullRequest: &github.PullRequest{
			Number: github.Ptr(number),
		},
	}
	payload, err := json.Marshal(event)
	gt.NoError(t, err)
	return payload
}

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("supported event triggers the review flow", func(t *testing.T) {
		stub := newReviewUseCaseStub()
		uc := usecase.NewWebhook(stub, "test/repo")

		event := &model.WebhookEvent{
			ID:         "delivery-1",
			Type:       model.EventTypePullRequest,
			Action:     "opened",
			Repository: "test/repo",
			Sender:     "renovate[bot]",
			RawPayload: pullRequestEventPayload(t, 42),
		}

		gt.NoError(t, uc.ProcessEvent(ctx, event))

		select {
		case number := <-stub.posted:
			gt.Equal(t, number, 42)
		case <-time.After(1 * time.Second):
			t.Fatal("review flow was not triggered within timeout")
		}
	})

	t.Run("unsupported action is ignored", func(t *testing.T) {
		stub := newReviewUseCaseStub()
		uc := usecase.NewWebhook(stub, "test/repo")

		event := &model.WebhookEvent{
			Type:       model.EventTypePullRequest,
			Action:     "closed",
			Repository: "test/repo",
			RawPayload: pullRequestEventPayload(t, 42),
		}

		gt.NoError(t, uc.ProcessEvent(ctx, event))

		select {
		case <-stub.posted:
			t.Fatal("review flow should not run for unsupported actions")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("event for another repository is ignored", func(t *testing.T) {
		stub := newReviewUseCaseStub()
		uc := usecase.NewWebhook(stub, "test/repo")

		event := &model.WebhookEvent{
			Type:       model.EventTypePullRequest,
			Action:     "opened",
			Repository: "other/repo",
			RawPayload: pullRequestEventPayload(t, 42),
		}

		gt.NoError(t, uc.ProcessEvent(ctx, event))

		select {
		case <-stub.posted:
			t.Fatal("review flow should not run for unserved repositories")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("payload without a pull request number is ignored", func(t *testing.T) {
		stub := newReviewUseCaseStub()
		uc := usecase.NewWebhook(stub, "test/repo")

		event := &model.WebhookEvent{
			Type:       model.EventTypePullRequest,
			Action:     "opened",
			Repository: "test/repo",
			RawPayload: []byte(`{"action":"opened"}`),
		}

		gt.NoError(t, uc.ProcessEvent(ctx, event))

		select {
		case <-stub.posted:
			t.Fatal("review flow should not run without a PR number")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
