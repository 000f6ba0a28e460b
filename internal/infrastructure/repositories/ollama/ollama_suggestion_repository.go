package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

const backendName = "ollama"

// SuggestionRepository generates suggestions with a model served by a local
// Ollama instance.
type SuggestionRepository struct {
	client  *ollama.Client
	model   string
	options map[string]any
}

// NewSuggestionRepository connects to Ollama and checks that the configured
// model has been pulled, so a misconfiguration fails before the first prompt.
func NewSuggestionRepository(
	ctx context.Context,
	settings entities.LocalSettings,
) (*SuggestionRepository, error) {
	if strings.TrimSpace(settings.Model) == "" {
		return nil, errors.New("local.model is required")
	}

	client, err := newClient(settings.Host)
	if err != nil {
		return nil, err
	}

	listResp, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list local models: %w", err)
	}

	available := make([]string, 0, len(listResp.Models))
	found := false
	for _, m := range listResp.Models {
		available = append(available, m.Name)
		if sameModel(m.Name, settings.Model) || sameModel(m.Model, settings.Model) {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("model %s not found locally. Available models: %v", settings.Model, available)
	}

	logger.Infof("[%s] Using local model %s", backendName, settings.Model)
	return &SuggestionRepository{
		client: client,
		model:  settings.Model,
		options: map[string]any{
			"num_predict": settings.MaxTokens,
			"temperature": settings.Temperature,
			"top_p":       settings.TopP,
		},
	}, nil
}

func (it *SuggestionRepository) Name() string { return backendName }

// Suggest runs a single non-streamed generation for the prompt.
func (it *SuggestionRepository) Suggest(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:   it.model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: it.options,
	}

	var response strings.Builder
	err := it.client.Generate(ctx, req, func(res ollama.GenerateResponse) error {
		response.WriteString(res.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}

	text := strings.TrimSpace(response.String())
	if text == "" {
		return "", errors.New("ollama returned an empty response")
	}
	return text, nil
}

// newClient uses OLLAMA_HOST (or the Ollama default) when host is empty.
func newClient(host string) (*ollama.Client, error) {
	if host == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("could not create ollama client: %w", err)
		}
		return client, nil
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return ollama.NewClient(base, http.DefaultClient), nil
}

// sameModel treats "codellama" and "codellama:latest" as the same model.
func sameModel(listed, wanted string) bool {
	if listed == wanted {
		return true
	}
	return !strings.Contains(wanted, ":") && listed == wanted+":latest"
}
