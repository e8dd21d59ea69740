package store

import (
	"context"
	"errors"
	"testing"
)

// seedPath creates one learning path with two topics of two subtopics each
// and returns (pathID, topicIDs, subtopicIDs in topic+sort order).
func seedPath(t *testing.T, repo CatalogRepo) (string, []string, []string) {
	t.Helper()
	ctx := context.Background()

	pathID, err := repo.UpsertLearningPath(ctx, "SS2", "SS2", "📚", 1)
	if err != nil {
		t.Fatalf("upsert path: %v", err)
	}

	var topicIDs, subIDs []string
	for ti, name := range []string{"Algebra", "Geometry"} {
		topicID, err := repo.UpsertTopic(ctx, pathID, name, "🔢", ti+1)
		if err != nil {
			t.Fatalf("upsert topic %s: %v", name, err)
		}
		topicIDs = append(topicIDs, topicID)
		for si, sub := range []string{name + " A", name + " B"} {
			subID, err := repo.UpsertSubtopic(ctx, topicID, sub, si+1)
			if err != nil {
				t.Fatalf("upsert subtopic %s: %v", sub, err)
			}
			subIDs = append(subIDs, subID)
		}
	}
	return pathID, topicIDs, subIDs
}

func TestCatalogListOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	pathID, topicIDs, _ := seedPath(t, repo)

	topics, err := repo.ListTopics(ctx, pathID)
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("len(topics) = %d, want 2", len(topics))
	}
	if topics[0].ID != topicIDs[0] || topics[1].ID != topicIDs[1] {
		t.Error("topics not in sort order")
	}

	subs, err := repo.ListSubtopics(ctx, topicIDs[0])
	if err != nil {
		t.Fatalf("list subtopics: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("len(subs) = %d, want 2", len(subs))
	}
	if subs[0].Name != "Algebra A" || subs[1].Name != "Algebra B" {
		t.Errorf("subtopics out of order: %q, %q", subs[0].Name, subs[1].Name)
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	pathID, topicIDs, _ := seedPath(t, repo)

	// Re-upsert the same topic with a new icon: same row, updated fields.
	again, err := repo.UpsertTopic(ctx, pathID, "Algebra", "📐", 5)
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	if again != topicIDs[0] {
		t.Errorf("re-upsert created a new row: %s != %s", again, topicIDs[0])
	}

	got, err := repo.GetTopic(ctx, topicIDs[0])
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	if got.Icon != "📐" || got.SortOrder != 5 {
		t.Errorf("topic not updated: icon=%q sort=%d", got.Icon, got.SortOrder)
	}
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	seedPath(t, repo)

	topic, err := repo.GetTopic(ctx, "no-such-topic")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTopic err = %v, want ErrNotFound", err)
	}
	if topic != nil {
		t.Errorf("GetTopic = %+v, want nil", topic)
	}

	sub, err := repo.GetSubtopic(ctx, "no-such-subtopic")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSubtopic err = %v, want ErrNotFound", err)
	}
	if sub != nil {
		t.Errorf("GetSubtopic = %+v, want nil", sub)
	}
}

func TestLessonLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	_, _, subIDs := seedPath(t, repo)
	subID := subIDs[0]

	has, err := repo.HasLesson(ctx, subID)
	if err != nil {
		t.Fatalf("has lesson (empty): %v", err)
	}
	if has {
		t.Fatal("expected no lesson yet")
	}

	_, err = repo.InsertLesson(ctx, Lesson{
		SubtopicID: subID,
		Title:      "Linear Equations",
		Content:    `{"intro":"..."}`,
	})
	if err != nil {
		t.Fatalf("insert lesson: %v", err)
	}

	has, err = repo.HasLesson(ctx, subID)
	if err != nil {
		t.Fatalf("has lesson: %v", err)
	}
	if !has {
		t.Fatal("expected lesson to exist")
	}

	// delete-then-regenerate path
	n, err := repo.DeleteLessons(ctx, []string{subID})
	if err != nil {
		t.Fatalf("delete lessons: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	has, _ = repo.HasLesson(ctx, subID)
	if has {
		t.Fatal("lesson still present after delete")
	}
}

func TestPracticeQuestionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	_, _, subIDs := seedPath(t, repo)

	qs := make([]PracticeQuestion, 3)
	for i := range qs {
		qs[i] = PracticeQuestion{
			SubtopicID: subIDs[0],
			Category:   CategoryExtended,
			Question:   "2 + 2 = ?",
			Options:    `["3","4","5","6"]`,
			Answer:     1,
		}
	}
	if _, err := repo.InsertPracticeQuestions(ctx, qs); err != nil {
		t.Fatalf("insert questions: %v", err)
	}

	count, err := repo.CountPracticeQuestions(ctx, subIDs[:2], CategoryExtended)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	// Category filter excludes quick-check rows.
	count, err = repo.CountPracticeQuestions(ctx, subIDs[:2], CategoryQuickCheck)
	if err != nil {
		t.Fatalf("count quick_check: %v", err)
	}
	if count != 0 {
		t.Errorf("quick_check count = %d, want 0", count)
	}

	// Empty id list short-circuits.
	count, err = repo.CountPracticeQuestions(ctx, nil, CategoryExtended)
	if err != nil {
		t.Fatalf("count empty: %v", err)
	}
	if count != 0 {
		t.Errorf("empty count = %d, want 0", count)
	}
}
