// Package llm provides the generative model backends used for term analysis.
package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/f3rmion/readage/internal/analysis"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	defaultGeminiModel    = "gemini-2.5-flash"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultTemperature    = 0.1
	defaultTimeout        = 60 * time.Second
)

// ErrNoAPIKey is returned at call time when no credential was configured.
var ErrNoAPIKey = errors.New("API key not set")

// Options configures a backend.
type Options struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string // overrides the provider endpoint, mainly for tests
	Temperature float64
	Timeout     time.Duration
}

// New returns the backend named by opts.Provider. A missing API key is not an
// error here; it surfaces on the first Generate call.
func New(opts Options) (analysis.Generator, error) {
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	if opts.Temperature < 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderGemini:
		if opts.Model == "" {
			opts.Model = defaultGeminiModel
		}
		return NewGemini(opts), nil
	case ProviderAnthropic, "claude":
		if opts.Model == "" {
			opts.Model = defaultAnthropicModel
		}
		return NewAnthropic(opts), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s or %s)", opts.Provider, ProviderGemini, ProviderAnthropic)
	}
}
