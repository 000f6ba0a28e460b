package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

const backendName = "gemini"

// SuggestionRepository generates suggestions with the hosted Gemini API.
type SuggestionRepository struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewSuggestionRepository validates the credential and creates the API
// client. No request is sent until the first suggestion.
func NewSuggestionRepository(
	ctx context.Context,
	settings entities.HostedSettings,
	apiKey string,
) (*SuggestionRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, entities.ErrMissingAPIKey
	}
	if strings.TrimSpace(settings.Model) == "" {
		return nil, errors.New("hosted.model is required")
	}

	//nolint:exhaustruct // only the fields we configure
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: settings.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Infof("[%s] Using hosted model %s", backendName, settings.Model)
	return &SuggestionRepository{
		client: client,
		model:  settings.Model,
		//nolint:exhaustruct // sampling parameters only
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(settings.Temperature)),
			TopP:            genai.Ptr(float32(settings.TopP)),
			MaxOutputTokens: int32(settings.MaxTokens), //nolint:gosec // validated positive and small
		},
	}, nil
}

func (it *SuggestionRepository) Name() string { return backendName }

// Suggest sends the prompt as a single-turn request.
func (it *SuggestionRepository) Suggest(ctx context.Context, prompt string) (string, error) {
	resp, err := it.client.Models.GenerateContent(ctx, it.model, genai.Text(prompt), it.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
