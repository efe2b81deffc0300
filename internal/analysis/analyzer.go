package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/f3rmion/readage/internal/prompt"
)

// Request is one structured-output call to a generative model.
type Request struct {
	Prompt string
	Schema *Schema
}

// Generator is the external analysis service. Implementations send exactly
// one request per call and return the raw reply text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Analyzer turns a term into a parsed FullAnalysisResponse.
type Analyzer struct {
	gen     Generator
	prompts *prompt.Generator
	schema  *Schema
	log     *slog.Logger
}

// NewAnalyzer creates an Analyzer. The generator and prompt builder are fixed
// for the analyzer's lifetime.
func NewAnalyzer(gen Generator, prompts *prompt.Generator, logger *slog.Logger) *Analyzer {
	if prompts == nil {
		prompts = prompt.NewGenerator(DefaultLocale)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{
		gen:     gen,
		prompts: prompts,
		schema:  ResponseSchema(prompts.Locale()),
		log:     logger.With("component", "analyzer", "provider", gen.Name()),
	}
}

// Analyze requests the analysis of term. Blank terms fail with ErrEmptyInput
// without contacting the service.
func (a *Analyzer) Analyze(ctx context.Context, term string) (*FullAnalysisResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, EmptyInputError()
	}

	text, err := a.prompts.Generate(term)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	start := time.Now()
	reply, err := a.gen.Generate(ctx, Request{Prompt: text, Schema: a.schema})
	if err != nil {
		a.log.ErrorContext(ctx, "analysis request failed",
			slog.String("term", term),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, newServiceError(a.gen.Name(), err)
	}

	resp, err := ParseResponse(reply)
	if err != nil {
		a.log.ErrorContext(ctx, "analysis reply unparseable",
			slog.String("term", term),
			slog.Int("reply_bytes", len(reply)),
			slog.String("error", err.Error()),
		)
		return nil, newMalformedError(a.gen.Name(), err)
	}

	a.log.DebugContext(ctx, "analysis received",
		slog.String("term", term),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("valid", resp.IsValidTerm),
		slog.Int("suggestions", len(resp.Suggestions)),
		slog.Int("analyses", len(resp.Analyses)),
	)
	return resp, nil
}

// Run analyzes term and routes the reply to its Outcome.
func (a *Analyzer) Run(ctx context.Context, term string) (Outcome, error) {
	resp, err := a.Analyze(ctx, term)
	if err != nil {
		return Outcome{}, err
	}
	return Route(strings.TrimSpace(term), *resp)
}

// wire types mirror the reply with pointers so missing fields are detected.
type wireResult struct {
	ReadingAge      *float64 `json:"readingAge"`
	SchoolYear      *string  `json:"schoolYear"`
	AgeGroup        *string  `json:"ageGroup"`
	Profession      *string  `json:"profession"`
	PearsonSyllabus *string  `json:"pearsonSyllabus"`
}

type wireAnalysis struct {
	Definition *string     `json:"definition"`
	Analysis   *wireResult `json:"analysis"`
}

type wireResponse struct {
	IsValidTerm *bool           `json:"isValidTerm"`
	Suggestions *[]string       `json:"suggestions"`
	Analyses    *[]wireAnalysis `json:"analyses"`
}

// ParseResponse decodes reply text into a FullAnalysisResponse. The text
// must be exactly one JSON object carrying every required field.
func ParseResponse(text string) (*FullAnalysisResponse, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(strings.TrimSpace(text))))

	var w wireResponse
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding reply: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding reply: trailing data after JSON object")
	}

	switch {
	case w.IsValidTerm == nil:
		return nil, missingField("isValidTerm")
	case w.Suggestions == nil:
		return nil, missingField("suggestions")
	case w.Analyses == nil:
		return nil, missingField("analyses")
	}

	resp := &FullAnalysisResponse{
		IsValidTerm: *w.IsValidTerm,
		Suggestions: *w.Suggestions,
		Analyses:    make([]TermAnalysis, 0, len(*w.Analyses)),
	}
	for i, wa := range *w.Analyses {
		ta, err := wa.toTermAnalysis()
		if err != nil {
			return nil, fmt.Errorf("analyses[%d]: %w", i, err)
		}
		resp.Analyses = append(resp.Analyses, ta)
	}
	return resp, nil
}

func (wa wireAnalysis) toTermAnalysis() (TermAnalysis, error) {
	if wa.Definition == nil {
		return TermAnalysis{}, missingField("definition")
	}
	r := wa.Analysis
	switch {
	case r == nil:
		return TermAnalysis{}, missingField("analysis")
	case r.ReadingAge == nil:
		return TermAnalysis{}, missingField("analysis.readingAge")
	case r.SchoolYear == nil:
		return TermAnalysis{}, missingField("analysis.schoolYear")
	case r.AgeGroup == nil:
		return TermAnalysis{}, missingField("analysis.ageGroup")
	case r.Profession == nil:
		return TermAnalysis{}, missingField("analysis.profession")
	case r.PearsonSyllabus == nil:
		return TermAnalysis{}, missingField("analysis.pearsonSyllabus")
	}
	return TermAnalysis{
		Definition: *wa.Definition,
		Analysis: AnalysisResult{
			ReadingAge:      *r.ReadingAge,
			SchoolYear:      *r.SchoolYear,
			AgeGroup:        *r.AgeGroup,
			Profession:      *r.Profession,
			PearsonSyllabus: *r.PearsonSyllabus,
		},
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("required field %q missing", name)
}
