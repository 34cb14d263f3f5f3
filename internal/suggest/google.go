package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GoogleProvider talks to the Gemini generateContent endpoint. Calls
// are bounded by the client timeout; a cancelled call only discards
// its result.
type GoogleProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGoogle(apiKey, model string, timeout time.Duration) *GoogleProvider {
	if model == "" {
		model = "gemma-3-27b-it"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *GoogleProvider) Name() string { return "google" }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Complete sends one prompt and returns the first candidate's text.
func (g *GoogleProvider) Complete(ctx context.Context, kind Kind, content string) (string, error) {
	prompt, err := Prompt(kind, content)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt)
}

// Generate sends a raw prompt, used for Smart Insights where the
// prompt is built over several notes.
func (g *GoogleProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt)
}

func (g *GoogleProvider) generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	payload, _ := json.Marshal(body)

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google API error: %s", friendlyProviderError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("google returned %d: %s", resp.StatusCode, parseProviderError(resp.StatusCode, b))
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding google response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("google returned no candidates")
	}

	text := ""
	for _, part := range out.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}
