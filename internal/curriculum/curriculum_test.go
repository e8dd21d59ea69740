package curriculum

import (
	"context"
	"fmt"
	"testing"

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

const sampleFile = `[
	{"name": "Fractions", "icon": "➗", "subtopics": ["Adding Fractions", "Multiplying Fractions"]},
	{"name": "Algebra", "subtopics": ["Solving Equations"]}
]`

func TestParseValidFile(t *testing.T) {
	topics, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].Name != "Fractions" || topics[0].Icon != "➗" {
		t.Errorf("first topic = %+v", topics[0])
	}
	if len(topics[0].Subtopics) != 2 || topics[0].Subtopics[1] != "Multiplying Fractions" {
		t.Errorf("first topic subtopics = %v", topics[0].Subtopics)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"not an array", `{"name": "Fractions"}`},
		{"empty array", `[]`},
		{"missing name", `[{"subtopics": ["A"]}]`},
		{"missing subtopics", `[{"name": "Fractions"}]`},
		{"empty name", `[{"name": "", "subtopics": ["A"]}]`},
		{"non-string subtopic", `[{"name": "Fractions", "subtopics": [1]}]`},
		{"only blank subtopics", `[{"name": "Fractions", "subtopics": ["  "]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Errorf("Parse accepted %s", tt.name)
			}
		})
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	topics, err := Parse([]byte(`[{"name": " Fractions ", "subtopics": [" Adding ", "", "Multiplying"]}]`))
	if err != nil {
		t.Fatal(err)
	}
	if topics[0].Name != "Fractions" {
		t.Errorf("Name = %q, want trimmed", topics[0].Name)
	}
	if len(topics[0].Subtopics) != 2 || topics[0].Subtopics[0] != "Adding" {
		t.Errorf("Subtopics = %v, want blanks dropped and names trimmed", topics[0].Subtopics)
	}
}

func TestImportWritesCatalogInOrder(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()
	pathID, err := catalog.UpsertLearningPath(ctx, "GCSE Foundation", "10", "", 0)
	if err != nil {
		t.Fatal(err)
	}

	topics, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}

	sum, err := NewImporter(catalog).Import(ctx, pathID, topics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Topics != 2 || sum.Subtopics != 3 {
		t.Errorf("summary = %+v, want 2 topics / 3 subtopics", sum)
	}

	stored, err := catalog.ListTopics(ctx, pathID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0].Name != "Fractions" || stored[1].Name != "Algebra" {
		t.Errorf("stored topics = %+v, want file order preserved", stored)
	}

	subs, err := catalog.ListSubtopics(ctx, stored[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 2 || subs[0].Name != "Adding Fractions" {
		t.Errorf("subtopics = %+v", subs)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()
	pathID, err := catalog.UpsertLearningPath(ctx, "GCSE Foundation", "10", "", 0)
	if err != nil {
		t.Fatal(err)
	}

	topics, _ := Parse([]byte(sampleFile))
	im := NewImporter(catalog)
	if _, err := im.Import(ctx, pathID, topics); err != nil {
		t.Fatal(err)
	}
	if _, err := im.Import(ctx, pathID, topics); err != nil {
		t.Fatal(err)
	}

	stored, _ := catalog.ListTopics(ctx, pathID)
	if len(stored) != 2 {
		t.Errorf("re-import produced %d topics, want 2", len(stored))
	}
	subs, _ := catalog.ListSubtopics(ctx, stored[0].ID)
	if len(subs) != 2 {
		t.Errorf("re-import produced %d subtopics, want 2", len(subs))
	}
}
