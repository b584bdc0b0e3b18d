package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	"github.com/m-kato/renoscope/pkg/domain/model"
)

//go:embed prompts/review_system.md
var reviewSystemPrompt string

//go:embed prompts/review_user.md
var reviewUserTemplate string

// maxPromptBodyLen caps how much of the PR description is embedded into the
// prompt. Renovate bodies can carry tens of kilobytes of release notes.
const maxPromptBodyLen = 8000

// staticGenerator synthesizes a review from operator-supplied response text
// (e.g. the output of a separate AI inference step), without any network
// call. Empty text yields the default record.
type staticGenerator struct {
	response string
}

// NewStaticReviewGenerator creates a generator that parses the given raw
// response text
func NewStaticReviewGenerator(response string) interfaces.ReviewGenerator {
	return &staticGenerator{response: response}
}

func (g *staticGenerator) GenerateReview(_ context.Context, _ *model.PullRequest, _ []*model.DependencyUpdate) (*model.ReviewResult, error) {
	return ParseReviewResponse(g.response), nil
}

// llmGenerator asks an LLM for the review and parses its free-text answer
type llmGenerator struct {
	llmClient    gollem.LLMClient
	userTemplate *template.Template
}

// NewLLMReviewGenerator creates a generator backed by the given LLM client
func NewLLMReviewGenerator(llmClient gollem.LLMClient) (interfaces.ReviewGenerator, error) {
	tmpl, err := template.New("user").Parse(reviewUserTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &llmGenerator{
		llmClient:    llmClient,
		userTemplate: tmpl,
	}, nil
}

// GenerateReview builds the review prompt and sends it to the LLM. A failed
// or empty LLM call never propagates: the result degrades to the default
// record with the failure attached as notes.
func (g *llmGenerator) GenerateReview(ctx context.Context, pr *model.PullRequest, updates []*model.DependencyUpdate) (*model.ReviewResult, error) {
	logger := ctxlog.From(ctx)

	prompt, err := g.buildPrompt(pr, updates)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build review prompt")
	}

	logger.Debug("Calling LLM for review generation", "prompt_length", len(prompt))

	session, err := g.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(reviewSystemPrompt),
	)
	if err != nil {
		logger.Error("Failed to create LLM session", "error", err)
		return fallbackResult(err), nil
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		logger.Error("Failed to generate LLM content", "error", err)
		return fallbackResult(err), nil
	}

	if len(resp.Texts) == 0 {
		logger.Warn("Empty response from LLM")
		return model.DefaultReviewResult(), nil
	}

	return ParseReviewResponse(resp.Texts[0]), nil
}

func (g *llmGenerator) buildPrompt(pr *model.PullRequest, updates []*model.DependencyUpdate) (string, error) {
	body := pr.Body
	if body == "" {
		body = "(none)"
	}

	var buf bytes.Buffer
	err := g.userTemplate.Execute(&buf, map[string]any{
		"Title":        pr.Title,
		"Body":         truncateText(body, maxPromptBodyLen),
		"ChangedFiles": pr.ChangedFiles,
		"Additions":    pr.Additions,
		"Deletions":    pr.Deletions,
		"Updates":      updates,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute user prompt template")
	}

	return buf.String(), nil
}

// fallbackResult is the default record augmented with the failure, so the
// posted comment still tells the reader why the review is conservative
func fallbackResult(err error) *model.ReviewResult {
	result := model.DefaultReviewResult()
	result.Summary = "Dependency updates were detected. The AI call failed, so a manual review is recommended."
	result.SecurityIssues = append(result.SecurityIssues,
		"Security impact could not be verified because the AI call failed")
	result.AdditionalNotes = append(result.AdditionalNotes,
		"Error detail: "+err.Error())
	return result
}

func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "...(truncated)"
}
