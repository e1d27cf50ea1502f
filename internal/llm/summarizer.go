package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ndubovik/keyscan/internal/model"
)

// ChatClient is the slice of the OpenAI client used by the summarizer,
// extracted so tests can substitute a fake.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarizer turns a finished tagging report into a short topic blurb.
// It is strictly an enrichment: it runs after extraction, its output is
// stored separately, and failures only produce warnings.
type Summarizer struct {
	client ChatClient
	cfg    model.LLMConfig
}

// NewSummarizer creates a summarizer from config. An API key is
// required when the summarizer is enabled.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}, nil
}

// NewSummarizerWithClient creates a summarizer around an existing
// client. Used by tests.
func NewSummarizerWithClient(client ChatClient, cfg model.LLMConfig) *Summarizer {
	return &Summarizer{client: client, cfg: cfg}
}

// Summarize generates the topic blurb for a report.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.TagSummary, error) {
	modelName := s.cfg.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	maxTokens := s.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 400
	}

	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You describe article topics from extracted keyword lists. Stay strictly within the given keywords; do not invent facts or entities.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(report),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	summary := &model.TagSummary{Enabled: true, Model: modelName}
	if len(resp.Choices) == 0 {
		summary.Warnings = append(summary.Warnings, "empty response from model")
		return summary, nil
	}

	summary.SummaryMD = strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary.SummaryMD == "" {
		summary.Warnings = append(summary.Warnings, "model returned no text")
	}
	return summary, nil
}

// buildPrompt renders the report's keyword sections into the user
// message.
func buildPrompt(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Article: %s\n", report.Subject)
	if report.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", report.Title)
	}
	fmt.Fprintf(&b, "Extracted keywords:\n")
	for _, k := range report.Keywords {
		fmt.Fprintf(&b, "- %s\n", k)
	}
	if len(report.Frequent) > 0 {
		fmt.Fprintf(&b, "Frequent terms:\n")
		for _, wc := range report.Frequent {
			fmt.Fprintf(&b, "- %s (%d)\n", wc.Word, wc.Frequency)
		}
	}
	b.WriteString("\nWrite 2-3 sentences describing what this article covers, using only the terms above.")
	return b.String()
}
