package analysis

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/f3rmion/readage/internal/prompt"
)

type fakeGenerator struct {
	reply string
	err   error

	calls   atomic.Int32
	lastReq Request
}

func (f *fakeGenerator) Name() string { return "Fake" }

func (f *fakeGenerator) Generate(_ context.Context, req Request) (string, error) {
	f.calls.Add(1)
	f.lastReq = req
	return f.reply, f.err
}

func newTestAnalyzer(t *testing.T, gen Generator) *Analyzer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAnalyzer(gen, prompt.NewGenerator("UK"), logger)
}
