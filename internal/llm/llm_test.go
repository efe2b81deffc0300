package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const leverageJSON = `{"isValidTerm": true, "suggestions": [], "analyses": [{"definition": "Using borrowed money to invest", "analysis": {"readingAge": 16, "schoolYear": "A-Level", "ageGroup": "16-18 years old", "profession": "Finance", "pearsonSyllabus": "Pearson GCSE Business"}}]}`

func TestNew_SelectsProvider(t *testing.T) {
	t.Parallel()

	gen, err := New(Options{})
	require.NoError(t, err)
	g, ok := gen.(*Gemini)
	require.True(t, ok)
	assert.Equal(t, defaultGeminiModel, g.opts.Model)
	assert.Equal(t, defaultTimeout, g.opts.Timeout)

	gen, err = New(Options{Provider: "Anthropic", APIKey: " key \n"})
	require.NoError(t, err)
	a, ok := gen.(*Anthropic)
	require.True(t, ok)
	assert.Equal(t, defaultAnthropicModel, a.opts.Model)
	assert.Equal(t, "key", a.opts.APIKey)

	_, err = New(Options{Provider: "palm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "palm"`)
}

func TestGenerate_MissingKeyFailsAtCallTime(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{ProviderGemini, ProviderAnthropic} {
		gen, err := New(Options{Provider: provider})
		require.NoError(t, err, "construction must not require a key")

		_, err = gen.Generate(context.Background(), analysis.Request{Prompt: "p"})
		require.ErrorIs(t, err, ErrNoAPIKey)
	}
}

func TestToGenaiSchema(t *testing.T) {
	t.Parallel()

	s := toGenaiSchema(analysis.ResponseSchema("UK"))

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"isValidTerm", "suggestions", "analyses"}, s.Required)
	assert.Equal(t, []string{"isValidTerm", "suggestions", "analyses"}, s.PropertyOrdering)
	assert.Equal(t, genai.TypeBoolean, s.Properties["isValidTerm"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["suggestions"].Items.Type)

	item := s.Properties["analyses"].Items
	require.NotNil(t, item)
	assert.Equal(t, genai.TypeObject, item.Type)
	result := item.Properties["analysis"]
	assert.Equal(t, genai.TypeNumber, result.Properties["readingAge"].Type)
	assert.Len(t, result.Required, 5)
	assert.Contains(t, result.Properties["pearsonSyllabus"].Description, "Not Verifiable")

	assert.Nil(t, toGenaiSchema(nil))
}

func TestGemini_Generate(t *testing.T) {
	t.Parallel()

	var path atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path.Store(r.URL.Path)
		body := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": leverageJSON}},
					},
					"finishReason": "STOP",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	gen, err := New(Options{Provider: ProviderGemini, APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), analysis.Request{
		Prompt: "Analyze leverage",
		Schema: analysis.ResponseSchema("UK"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, leverageJSON, text)
	assert.True(t, strings.HasSuffix(path.Load().(string), "gemini-2.5-flash:generateContent"))
}

func TestAnthropic_Generate_ExtractsJSON(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		raw, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(raw, &req); err == nil && len(req.Messages) > 0 && len(req.Messages[0].Content) > 0 {
			gotPrompt = req.Messages[0].Content[0].Text
		}

		body := map[string]any{
			"id":            "msg_01",
			"type":          "message",
			"role":          "assistant",
			"model":         defaultAnthropicModel,
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"content": []any{
				map[string]any{"type": "text", "text": "Here is the analysis:\n" + leverageJSON + "\nHope this helps."},
			},
			"usage": map[string]any{"input_tokens": 10, "output_tokens": 20},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	gen, err := New(Options{Provider: ProviderAnthropic, APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), analysis.Request{
		Prompt: "Analyze leverage",
		Schema: analysis.ResponseSchema("UK"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, leverageJSON, text)
	assert.Contains(t, gotPrompt, "Analyze leverage")
	assert.Contains(t, gotPrompt, `"isValidTerm"`)
}

func TestAnthropic_Generate_SingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	gen, err := New(Options{Provider: ProviderAnthropic, APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), analysis.Request{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"a":1}`, extractJSON("prefix {\"a\":1} suffix"))
	assert.Equal(t, "no json here", extractJSON("no json here"))
	assert.Equal(t, "} {", extractJSON("} {"))
}
