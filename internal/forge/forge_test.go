package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/llm"
	"github.com/mathsinbites/bitesmith/internal/store"
)

func openTestCatalog(t *testing.T) store.CatalogRepo {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.Catalog()
}

func seedSubtopic(t *testing.T, catalog store.CatalogRepo) string {
	t.Helper()
	ctx := context.Background()
	pathID, err := catalog.UpsertLearningPath(ctx, "GCSE Foundation", "10", "📘", 0)
	if err != nil {
		t.Fatal(err)
	}
	topicID, err := catalog.UpsertTopic(ctx, pathID, "Fractions", "➗", 0)
	if err != nil {
		t.Fatal(err)
	}
	subID, err := catalog.UpsertSubtopic(ctx, topicID, "Adding Fractions", 0)
	if err != nil {
		t.Fatal(err)
	}
	return subID
}

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Adding Fractions",
		"introduction": "Fractions show up whenever you share a pizza unevenly.",
		"explanation": "To add fractions you need a **common denominator**.\n\nOnce the denominators match, add the numerators.",
		"examples": [
			{"title": "Example 1", "problem": "1/4 + 1/4", "steps": ["Same denominator already", "1 + 1 = 2", "Answer: 2/4 = 1/2"]},
			{"title": "Example 2", "problem": "1/3 + 1/6", "steps": ["Common denominator is 6", "2/6 + 1/6 = 3/6", "Answer: 1/2"]}
		],
		"questions": [
			{"question": "What is 1/5 + 2/5?", "options": ["2/5", "3/5", "3/10", "1/5"], "answer": 1, "explanation": "Same denominator, add numerators."},
			{"question": "What is 1/2 + 1/4?", "options": ["2/6", "1/4", "3/4", "2/4"], "answer": 2, "explanation": "1/2 = 2/4, so 2/4 + 1/4 = 3/4."},
			{"question": "What is 1/3 + 1/3?", "options": ["2/3", "1/6", "2/6", "1/3"], "answer": 0, "explanation": "Same denominator, add numerators."}
		]
	}`)
}

func validPracticeJSON(n int) json.RawMessage {
	qs := make([]string, n)
	for i := range n {
		qs[i] = fmt.Sprintf(
			`{"question":"What is %d + %d?","options":["%d","%d","%d","%d"],"answer":1,"explanation":"Add the numbers."}`,
			i, i+1, 2*i, 2*i+1, 2*i+2, 2*i+3)
	}
	return json.RawMessage(fmt.Sprintf(`{"questions":[%s]}`, strings.Join(qs, ",")))
}

func TestGenerateLessonStoresLessonAndQuestions(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := New(catalog, mock, DefaultConfig())

	ctx := context.Background()
	res, err := svc.GenerateLesson(ctx, subID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != genclient.StatusCreated {
		t.Fatalf("status = %s, want created", res.Status)
	}
	if res.Inserted != 3 {
		t.Errorf("Inserted = %d, want 3 quick-check questions", res.Inserted)
	}

	has, err := catalog.HasLesson(ctx, subID)
	if err != nil || !has {
		t.Errorf("HasLesson = %v, %v; want true", has, err)
	}
	n, err := catalog.CountPracticeQuestions(ctx, []string{subID}, store.CategoryQuickCheck)
	if err != nil || n != 3 {
		t.Errorf("quick-check count = %d, %v; want 3", n, err)
	}
	// Extended questions are untouched by lesson generation.
	n, _ = catalog.CountPracticeQuestions(ctx, []string{subID}, store.CategoryExtended)
	if n != 0 {
		t.Errorf("extended count = %d, want 0", n)
	}

	req, ok := mock.LastRequest()
	if !ok {
		t.Fatal("model was never called")
	}
	if len(req.Messages) == 0 || !strings.Contains(req.Messages[0].Content, "Adding Fractions") {
		t.Error("prompt does not name the subtopic")
	}
}

func TestGenerateLessonSkipsExisting(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := New(catalog, mock, DefaultConfig())

	ctx := context.Background()
	if _, err := svc.GenerateLesson(ctx, subID); err != nil {
		t.Fatal(err)
	}

	res, err := svc.GenerateLesson(ctx, subID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != genclient.StatusExists {
		t.Fatalf("status = %s, want exists", res.Status)
	}
	if mock.CallCount() != 1 {
		t.Errorf("model called %d times, want 1", mock.CallCount())
	}
}

func TestGenerateLessonUnknownSubtopic(t *testing.T) {
	catalog := openTestCatalog(t)
	svc := New(catalog, llm.NewMockProvider(), DefaultConfig())

	_, err := svc.GenerateLesson(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestGenerateLessonProviderError(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	svc := New(catalog, mock, DefaultConfig())

	ctx := context.Background()
	if _, err := svc.GenerateLesson(ctx, subID); err == nil {
		t.Fatal("expected provider error to surface")
	}
	// Nothing was stored.
	if has, _ := catalog.HasLesson(ctx, subID); has {
		t.Error("failed generation must not leave a lesson behind")
	}
}

func TestGeneratePracticeStoresBatch(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPracticeJSON(5)})
	svc := New(catalog, mock, DefaultConfig())

	ctx := context.Background()
	res, err := svc.GeneratePractice(ctx, subID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != genclient.StatusCreated || res.Inserted != 5 {
		t.Fatalf("result = %+v, want 5 created", res)
	}

	n, err := catalog.CountPracticeQuestions(ctx, []string{subID}, store.CategoryExtended)
	if err != nil || n != 5 {
		t.Errorf("extended count = %d, %v; want 5", n, err)
	}
}

func TestGeneratePracticeSkipsWhenQuestionsExist(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPracticeJSON(3)})
	svc := New(catalog, mock, DefaultConfig())

	ctx := context.Background()
	if _, err := svc.GeneratePractice(ctx, subID, 3); err != nil {
		t.Fatal(err)
	}

	res, err := svc.GeneratePractice(ctx, subID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != genclient.StatusExists || res.Existing != 3 {
		t.Fatalf("result = %+v, want exists with 3", res)
	}
	if mock.CallCount() != 1 {
		t.Errorf("model called %d times, want 1", mock.CallCount())
	}
}

func TestGeneratePracticeEmptyBatchRejected(t *testing.T) {
	catalog := openTestCatalog(t)
	subID := seedSubtopic(t, catalog)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	svc := New(catalog, mock, DefaultConfig())

	if _, err := svc.GeneratePractice(context.Background(), subID, 3); err == nil {
		t.Fatal("expected error for an empty batch")
	}
}
