package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/mathsinbites/bitesmith/internal/store"
)

type fakeCatalog struct {
	topics    map[string][]store.Topic
	subtopics map[string][]store.Subtopic
	lessons   map[string]bool
	extended  map[string]int
	lessonErr error
}

func (f *fakeCatalog) ListTopics(ctx context.Context, pathID string) ([]store.Topic, error) {
	return f.topics[pathID], nil
}

func (f *fakeCatalog) ListSubtopics(ctx context.Context, topicID string) ([]store.Subtopic, error) {
	return f.subtopics[topicID], nil
}

func (f *fakeCatalog) HasLesson(ctx context.Context, subtopicID string) (bool, error) {
	if f.lessonErr != nil {
		return false, f.lessonErr
	}
	return f.lessons[subtopicID], nil
}

func (f *fakeCatalog) CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error) {
	total := 0
	for _, id := range subtopicIDs {
		total += f.extended[id]
	}
	return total, nil
}

func subs(topicID string, ids ...string) []store.Subtopic {
	out := make([]store.Subtopic, len(ids))
	for i, id := range ids {
		out[i] = store.Subtopic{ID: id, TopicID: topicID}
	}
	return out
}

func TestTopicLessonProgress(t *testing.T) {
	catalog := &fakeCatalog{
		subtopics: map[string][]store.Subtopic{"t1": subs("t1", "s1", "s2", "s3")},
		lessons:   map[string]bool{"s1": true, "s3": true},
	}
	agg := New(catalog)

	p, err := agg.Topic(context.Background(), store.ArtifactLesson, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Done != 2 || p.Total != 3 {
		t.Errorf("progress = %s, want 2/3", p)
	}
	if p.Complete() {
		t.Error("2/3 must not report complete")
	}
	if p.Percent() != 66 {
		t.Errorf("Percent = %d, want 66", p.Percent())
	}
}

func TestTopicPracticeProgressCountsExtendedOnly(t *testing.T) {
	catalog := &fakeCatalog{
		subtopics: map[string][]store.Subtopic{"t1": subs("t1", "s1", "s2")},
		extended:  map[string]int{"s1": 30},
	}
	agg := New(catalog)

	p, err := agg.Topic(context.Background(), store.ArtifactPractice, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Done != 1 || p.Total != 2 {
		t.Errorf("progress = %s, want 1/2", p)
	}
}

func TestEmptyTopicNeverComplete(t *testing.T) {
	catalog := &fakeCatalog{subtopics: map[string][]store.Subtopic{}}
	agg := New(catalog)

	p, err := agg.Topic(context.Background(), store.ArtifactLesson, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Complete() {
		t.Error("a topic with no subtopics must not report complete")
	}
	if p.Percent() != 0 {
		t.Errorf("Percent = %d, want 0", p.Percent())
	}
}

func TestPathSumsTopics(t *testing.T) {
	catalog := &fakeCatalog{
		topics: map[string][]store.Topic{"p1": {{ID: "t1"}, {ID: "t2"}}},
		subtopics: map[string][]store.Subtopic{
			"t1": subs("t1", "s1", "s2"),
			"t2": subs("t2", "s3"),
		},
		lessons: map[string]bool{"s1": true, "s3": true},
	}
	agg := New(catalog)

	total, byTopic, err := agg.Path(context.Background(), store.ArtifactLesson, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if total.Done != 2 || total.Total != 3 {
		t.Errorf("path total = %s, want 2/3", total)
	}
	if p := byTopic["t2"]; !p.Complete() {
		t.Errorf("t2 = %s, want complete", p)
	}
}

func TestTopicPropagatesStoreError(t *testing.T) {
	catalog := &fakeCatalog{
		subtopics: map[string][]store.Subtopic{"t1": subs("t1", "s1")},
		lessonErr: errors.New("database is locked"),
	}
	agg := New(catalog)

	if _, err := agg.Topic(context.Background(), store.ArtifactLesson, "t1"); err == nil {
		t.Fatal("expected the store error to surface")
	}
}
