// Package completion computes live done/total progress for topics and
// learning paths. Counts always come from the store at call time, so a
// generation run finishing (or another session inserting content) is
// reflected on the next poll without any cache invalidation.
package completion

import (
	"context"
	"fmt"

	"github.com/mathsinbites/bitesmith/internal/store"
)

// Catalog is the read surface the aggregator needs.
type Catalog interface {
	ListTopics(ctx context.Context, pathID string) ([]store.Topic, error)
	ListSubtopics(ctx context.Context, topicID string) ([]store.Subtopic, error)
	HasLesson(ctx context.Context, subtopicID string) (bool, error)
	CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error)
}

// Progress is a done-out-of-total pair.
type Progress struct {
	Done  int
	Total int
}

// Complete reports whether every unit is done. An empty set is not
// complete; a topic with no subtopics always has work status unknown
// and should never be skipped as finished.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done >= p.Total
}

// Percent is Done/Total scaled to 0..100, 0 when Total is zero.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Done * 100 / p.Total
}

func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Done, p.Total)
}

// Aggregator answers progress queries against the catalog.
type Aggregator struct {
	catalog Catalog
}

func New(catalog Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// Topic returns the per-subtopic artifact progress for one topic.
func (a *Aggregator) Topic(ctx context.Context, kind store.ArtifactKind, topicID string) (Progress, error) {
	subs, err := a.catalog.ListSubtopics(ctx, topicID)
	if err != nil {
		return Progress{}, fmt.Errorf("list subtopics: %w", err)
	}
	p := Progress{Total: len(subs)}
	for _, sub := range subs {
		has, err := a.has(ctx, kind, sub.ID)
		if err != nil {
			return Progress{}, err
		}
		if has {
			p.Done++
		}
	}
	return p, nil
}

// Path sums subtopic progress across every topic in a learning path and
// also returns the per-topic breakdown keyed by topic ID.
func (a *Aggregator) Path(ctx context.Context, kind store.ArtifactKind, pathID string) (Progress, map[string]Progress, error) {
	topics, err := a.catalog.ListTopics(ctx, pathID)
	if err != nil {
		return Progress{}, nil, fmt.Errorf("list topics: %w", err)
	}
	var total Progress
	byTopic := make(map[string]Progress, len(topics))
	for _, topic := range topics {
		p, err := a.Topic(ctx, kind, topic.ID)
		if err != nil {
			return Progress{}, nil, err
		}
		byTopic[topic.ID] = p
		total.Done += p.Done
		total.Total += p.Total
	}
	return total, byTopic, nil
}

func (a *Aggregator) has(ctx context.Context, kind store.ArtifactKind, subtopicID string) (bool, error) {
	if kind == store.ArtifactPractice {
		n, err := a.catalog.CountPracticeQuestions(ctx, []string{subtopicID}, store.CategoryExtended)
		return n > 0, err
	}
	return a.catalog.HasLesson(ctx, subtopicID)
}
