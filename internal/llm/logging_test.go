package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankivoice/ankivoice/internal/store"
)

// recordingEvents captures appended events in memory.
type recordingEvents struct {
	events []store.LLMEventData
	err    error
}

func (r *recordingEvents) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok": true}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 45},
	})
	rec := &recordingEvents{}
	p := WithLogging(mock, "mock", rec)

	ctx := WithPurpose(context.Background(), "question-gen")
	resp, err := p.Generate(ctx, Request{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, rec.events, 1)
	e := rec.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, "question-gen", e.Purpose)
	assert.Equal(t, 120, e.InputTokens)
	assert.Equal(t, 45, e.OutputTokens)
	assert.True(t, e.Success)
	assert.Empty(t, e.ErrorMessage)
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	rec := &recordingEvents{}
	p := WithLogging(mock, "mock", rec)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	e := rec.events[0]
	assert.False(t, e.Success)
	assert.NotEmpty(t, e.ErrorMessage)
	assert.Equal(t, "unknown", e.Purpose)
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &recordingEvents{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", rec)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}
