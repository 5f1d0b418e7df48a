package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ankivoice/ankivoice/ent"
	entevent "github.com/ankivoice/ankivoice/ent/llmrequestevent"
)

// llmEventRepo implements LLMEventRepo using the ent client.
type llmEventRepo struct {
	client *ent.Client
}

func (r *llmEventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetTimestamp(time.Now()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record llm event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Query(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(entevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMEventRecord, len(events))
	for i, e := range events {
		out[i] = LLMEventRecord{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			LLMEventData: LLMEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return out, nil
}

func (r *llmEventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	for _, e := range events {
		stats, ok := byPurpose[e.Purpose]
		if !ok {
			stats = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = stats
		}
		stats.Requests++
		stats.InputTokens += e.InputTokens
		stats.OutputTokens += e.OutputTokens
		if !e.Success {
			stats.Failures++
		}
	}

	out := make([]LLMUsageStats, 0, len(byPurpose))
	for _, stats := range byPurpose {
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}
