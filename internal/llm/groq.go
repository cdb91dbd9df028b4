package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Groq serves an OpenAI-compatible chat API, so the official openai-go SDK
// works against it with a swapped base URL.
const (
	groqBaseURL = "https://api.groq.com/openai/v1"

	// DefaultGroqModel is the model used when none is configured.
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

const optimizerSystemPrompt = "You are an expert SEO content optimizer specializing in E-E-A-T principles for medical content."

// GroqClient implements TextGenerator on Groq's chat completions endpoint.
type GroqClient struct {
	client openai.Client
	model  string
}

// NewGroqClient creates a Groq-backed generator. An empty model selects
// DefaultGroqModel.
func NewGroqClient(apiKey, model string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGroqModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)

	return &GroqClient{client: client, model: model}, nil
}

// Generate sends the prompt under the optimizer system role and returns the
// first choice's content.
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(optimizerSystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(4096),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
