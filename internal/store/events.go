package store

import (
	"context"
	"time"

	"github.com/mathsinbites/bitesmith/ent"
	"github.com/mathsinbites/bitesmith/ent/genevent"
)

// GenEventData captures one generation attempt for the audit trail.
type GenEventData struct {
	ArtifactKind string
	TopicID      string
	SubtopicID   string
	Outcome      string // created, exists, or failed
	Detail       string
	LatencyMs    int64
}

// GenEvent is a stored generation attempt.
type GenEvent struct {
	ID        int
	Timestamp time.Time
	GenEventData
}

// LLMEventData captures one LLM provider request.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to the durable event tables.
type EventRepo interface {
	// AppendGenEvent records a generation attempt.
	AppendGenEvent(ctx context.Context, data GenEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMEventData) error

	// RecentGenEvents returns up to limit generation attempts, newest first.
	RecentGenEvents(ctx context.Context, limit int) ([]GenEvent, error)
}

type eventRepo struct {
	client *ent.Client
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendGenEvent(ctx context.Context, data GenEventData) error {
	return r.client.GenEvent.Create().
		SetArtifactKind(data.ArtifactKind).
		SetTopicID(data.TopicID).
		SetSubtopicID(data.SubtopicID).
		SetOutcome(data.Outcome).
		SetDetail(data.Detail).
		SetLatencyMs(data.LatencyMs).
		Exec(ctx)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMEventData) error {
	return r.client.LLMEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Exec(ctx)
}

func (r *eventRepo) RecentGenEvents(ctx context.Context, limit int) ([]GenEvent, error) {
	q := r.client.GenEvent.Query().Order(ent.Desc(genevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GenEvent, len(rows))
	for i, row := range rows {
		out[i] = GenEvent{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			GenEventData: GenEventData{
				ArtifactKind: row.ArtifactKind,
				TopicID:      row.TopicID,
				SubtopicID:   row.SubtopicID,
				Outcome:      row.Outcome,
				Detail:       row.Detail,
				LatencyMs:    row.LatencyMs,
			},
		}
	}
	return out, nil
}
