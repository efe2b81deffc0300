package llm

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/f3rmion/readage/internal/analysis"
	"google.golang.org/genai"
)

// Gemini calls the Gemini API with a declared response schema so the reply
// is constrained to JSON.
type Gemini struct {
	opts Options

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini creates a Gemini backend. The SDK client is built on first use.
func NewGemini(opts Options) *Gemini {
	return &Gemini{opts: opts}
}

// Name implements analysis.Generator.
func (g *Gemini) Name() string { return "Gemini" }

// Generate implements analysis.Generator.
func (g *Gemini) Generate(ctx context.Context, req analysis.Request) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(float32(g.opts.Temperature)),
	}
	if req.Schema != nil {
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := client.Models.GenerateContent(ctx, g.opts.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return resp.Text(), nil
}

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	if g.opts.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w (set READAGE_API_KEY or GEMINI_API_KEY)", ErrNoAPIKey)
	}

	cc := &genai.ClientConfig{
		APIKey:     g.opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: g.opts.Timeout},
	}
	if g.opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	g.client = client
	return client, nil
}

func toGenaiSchema(s *analysis.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:             toGenaiType(s.Type),
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.Order,
		Items:            toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func toGenaiType(t analysis.SchemaType) genai.Type {
	switch t {
	case analysis.TypeObject:
		return genai.TypeObject
	case analysis.TypeArray:
		return genai.TypeArray
	case analysis.TypeString:
		return genai.TypeString
	case analysis.TypeNumber:
		return genai.TypeNumber
	case analysis.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
