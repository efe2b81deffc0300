package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/f3rmion/readage/internal/analysis"
)

// Anthropic calls the Messages API. The API has no response schema
// parameter, so the schema is written into the prompt and the JSON object is
// cut out of the reply.
type Anthropic struct {
	opts   Options
	client anthropic.Client
}

// NewAnthropic creates an Anthropic backend with SDK retries disabled.
func NewAnthropic(opts Options) *Anthropic {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(opts.Timeout),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Anthropic{
		opts:   opts,
		client: anthropic.NewClient(reqOpts...),
	}
}

// Name implements analysis.Generator.
func (a *Anthropic) Name() string { return "Claude" }

// Generate implements analysis.Generator.
func (a *Anthropic) Generate(ctx context.Context, req analysis.Request) (string, error) {
	if a.opts.APIKey == "" {
		return "", fmt.Errorf("anthropic: %w (set READAGE_API_KEY or ANTHROPIC_API_KEY)", ErrNoAPIKey)
	}

	prompt, err := withSchema(req)
	if err != nil {
		return "", err
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.opts.Model),
		MaxTokens:   4096,
		Temperature: anthropic.Float(a.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages api call: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return extractJSON(sb.String()), nil
}

func withSchema(req analysis.Request) (string, error) {
	if req.Schema == nil {
		return req.Prompt, nil
	}
	schema, err := json.MarshalIndent(req.Schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal schema: %w", err)
	}
	return req.Prompt + "\n\nOutput ONLY a valid JSON object matching this exact schema, no markdown, no explanations:\n" + string(schema), nil
}

// extractJSON returns the span between the first '{' and the last '}'. Text
// without an object is returned unchanged so the caller reports it as
// malformed.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}
