package llmtier

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ledgerlens/extractcore/internal/bankid"
)

// AIClient is the pluggable-backend abstraction §4.E's implementation note
// calls for: identical in shape to the categorizer's AIClient, but with a
// Chat method for JSON extraction alongside the vision call the bank
// identifier also uses. A single GeminiClient value satisfies both this
// interface and bankid.VisionClient.
type AIClient interface {
	bankid.VisionClient
	Chat(ctx context.Context, prompt string) (string, error)
}

// GeminiClient wraps the module's Gemini SDK dependency behind AIClient.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a GeminiClient authenticated with apiKey, issuing
// calls against model (e.g. "gemini-2.0-flash").
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llmtier: create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Chat submits a text-only prompt and returns the model's raw text answer.
func (c *GeminiClient) Chat(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llmtier: chat call: %w", err)
	}
	return extractText(resp)
}

// AnalyzeImage submits an image with a text prompt, satisfying
// bankid.VisionClient as well as this package's own use in §4.E step 1.
func (c *GeminiClient) AnalyzeImage(ctx context.Context, imageBytes []byte, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.ImageData("png", imageBytes), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llmtier: vision call: %w", err)
	}
	return extractText(resp)
}

// Close releases the underlying SDK client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("llmtier: empty response from model")
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("llmtier: response contained no text parts")
	}
	return out, nil
}
