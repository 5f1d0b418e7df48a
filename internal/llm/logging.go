package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ankivoice/ankivoice/internal/store"
)

// LoggingProvider decorates a Provider, recording every request as an
// event row. With a TUI on stdout, SQLite is the log.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.LLMEventRecorder
}

// WithLogging wraps a Provider with event logging. The provider name is
// recorded alongside the model since ModelID alone is ambiguous for
// OpenAI-compatible endpoints.
func WithLogging(p Provider, providerName string, events store.LLMEventRecorder) Provider {
	return &LoggingProvider{inner: p, provider: providerName, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed log write must not fail the request.
	if logErr := l.events.AppendLLMEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
