package gemini

import (
	"context"
	"fmt"
	"strings"

	"video-summarizer/domain/repository"
	"video-summarizer/infrastructure/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// summaryPromptTemplate embeds the transcript verbatim between the quotes.
const summaryPromptTemplate = `You are an expert video summarizer. Summarize the following video transcript into 3-5 concise bullet points, highlighting the main ideas and conclusions.

Transcript:
"%s"

Summary:`

// Client represents the Gemini summarization client
type Client struct {
	model *genai.GenerativeModel
}

// Config represents Gemini API configuration
type Config struct {
	APIKey     string `json:"api_key"`
	Model      string `json:"model"`
	ListModels bool   `json:"list_models"`
}

// NewGeminiClient creates a new Gemini summarization client
func NewGeminiClient(ctx context.Context, config *Config) (repository.ISummarizer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if config.ListModels {
		logAvailableModels(ctx, client)
	}

	return &Client{model: client.GenerativeModel(config.Model)}, nil
}

// Summarize embeds the transcript into the fixed prompt template and returns
// the model's text output unmodified.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPromptTemplate, transcript)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no content candidates")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("model returned no text content")
	}
	return builder.String(), nil
}

// logAvailableModels logs the generation-capable models visible to the
// credential. Debug aid, enabled via configuration.
func logAvailableModels(ctx context.Context, client *genai.Client) {
	it := client.ListModels(ctx)
	var names []string
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to list models")
			return
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, m.Name)
				break
			}
		}
	}
	logger.GetLogger().WithField("models", strings.Join(names, ", ")).Info("Generation-capable models")
}
