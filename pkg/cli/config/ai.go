package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"

	"github.com/m-kato/renoscope/pkg/domain/interfaces"
	"github.com/m-kato/renoscope/pkg/usecase"
)

// Default models per provider, used when --ai-model is not given
const (
	defaultGeminiModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o"
)

// AI holds review-generator configuration. The provider is selected here,
// at construction time; the rest of the system only sees the
// ReviewGenerator interface.
type AI struct {
	Provider        string // none, gemini or openai
	Model           string
	APIKey          string
	GeminiProjectID string
	GeminiLocation  string
}

// Flags returns CLI flags for AI configuration
func (c *AI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ai-provider",
			Usage:       "Review generator backend (none, gemini, openai)",
			Value:       "none",
			Destination: &c.Provider,
			Sources:     cli.EnvVars("RENOSCOPE_AI_PROVIDER", "AI_PROVIDER"),
		},
		&cli.StringFlag{
			Name:        "ai-model",
			Usage:       "Model to use (defaults to a per-provider model)",
			Destination: &c.Model,
			Sources:     cli.EnvVars("RENOSCOPE_AI_MODEL", "AI_MODEL"),
		},
		&cli.StringFlag{
			Name:        "ai-api-key",
			Usage:       "API key for the openai provider",
			Destination: &c.APIKey,
			Sources:     cli.EnvVars("RENOSCOPE_AI_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Usage:       "Google Cloud project ID for the gemini provider",
			Destination: &c.GeminiProjectID,
			Sources:     cli.EnvVars("RENOSCOPE_GEMINI_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Vertex AI location/region",
			Value:       "us-central1",
			Destination: &c.GeminiLocation,
			Sources:     cli.EnvVars("RENOSCOPE_GEMINI_LOCATION"),
		},
	}
}

// NewGenerator builds the configured review generator. When overrideText is
// non-empty (an operator-supplied AI response, e.g. from a separate
// inference step) the static generator parses it and no LLM is involved.
func (c *AI) NewGenerator(ctx context.Context, overrideText string) (interfaces.ReviewGenerator, error) {
	if overrideText != "" {
		return usecase.NewStaticReviewGenerator(overrideText), nil
	}

	switch c.Provider {
	case "", "none":
		return usecase.NewStaticReviewGenerator(""), nil

	case "gemini":
		if c.GeminiProjectID == "" {
			return nil, goerr.New("gemini-project-id is required for the gemini provider")
		}
		model := c.Model
		if model == "" {
			model = defaultGeminiModel
		}
		client, err := gemini.New(ctx, c.GeminiLocation, c.GeminiProjectID, gemini.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create gemini client")
		}
		return usecase.NewLLMReviewGenerator(client)

	case "openai":
		if c.APIKey == "" {
			return nil, goerr.New("ai-api-key is required for the openai provider")
		}
		model := c.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		client, err := openai.New(ctx, c.APIKey, openai.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create openai client")
		}
		return usecase.NewLLMReviewGenerator(client)

	default:
		return nil, goerr.New("unknown AI provider", goerr.V("provider", c.Provider))
	}
}
