package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Enhancer rewrites a free-text service description into a short,
// formal PT-BR form. It is strictly best-effort: any failure leaves the
// original text untouched, and a no-op implementation is a valid
// substitute.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}

// --- No-op enhancer (identity) ---

type noopEnhancer struct{}

// NewNoopEnhancer returns an enhancer that hands the text back as-is.
func NewNoopEnhancer() Enhancer {
	return &noopEnhancer{}
}

func (noopEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	return text, nil
}

// --- HTTP enhancer (external text-rewrite service) ---

// Config holds the external service settings.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
}

type httpEnhancer struct {
	cfg    Config
	client *http.Client
}

// NewHTTPEnhancer creates an enhancer backed by an external generation
// endpoint. The call runs to completion with no timeout of its own
// beyond the transport default; it is never cancelled mid-flight.
func NewHTTPEnhancer(cfg Config) Enhancer {
	return &httpEnhancer{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type enhanceRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

type enhanceResponse struct {
	Text string `json:"text"`
}

func (e *httpEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Melhore esta descrição de serviço: %q. Retorne apenas o texto curto e formal em PT-BR.",
		text,
	)

	payload, err := json.Marshal(enhanceRequest{Model: e.cfg.Model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("enhance: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("enhance: service returned status %d", resp.StatusCode)
	}

	var out enhanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("enhance: invalid response: %w", err)
	}

	result := strings.TrimSpace(out.Text)
	if result == "" {
		return "", fmt.Errorf("enhance: service returned empty text")
	}
	return result, nil
}
