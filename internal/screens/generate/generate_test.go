package generate

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/store"
)

// stubGen fails every call and inserts nothing, so store state only
// changes through the screen's own actions.
type stubGen struct{}

func (stubGen) GenerateLesson(context.Context, string) (genclient.Result, error) {
	return genclient.Result{Status: genclient.StatusFailed, Message: "unavailable"}, nil
}

func (stubGen) GeneratePractice(context.Context, string, int) (genclient.Result, error) {
	return genclient.Result{Status: genclient.StatusFailed, Message: "unavailable"}, nil
}

type fixture struct {
	screen  *GenerateScreen
	catalog store.CatalogRepo
	led     *ledger.Ledger
	topicID string
	subIDs  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	catalog := s.Catalog()

	pathID, err := catalog.UpsertLearningPath(ctx, "GCSE Foundation", "10", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	topicID, err := catalog.UpsertTopic(ctx, pathID, "Fractions", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	sub1, err := catalog.UpsertSubtopic(ctx, topicID, "Adding Fractions", 0)
	if err != nil {
		t.Fatal(err)
	}
	sub2, err := catalog.UpsertSubtopic(ctx, topicID, "Multiplying Fractions", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.InsertLesson(ctx, store.Lesson{
		ID:         "lesson-1",
		SubtopicID: sub1,
		Title:      "Adding Fractions",
		Content:    "body",
	}); err != nil {
		t.Fatal(err)
	}

	led := ledger.New()
	cfg := runner.Config{
		LessonDelay:   time.Millisecond,
		PracticeDelay: time.Millisecond,
		PausePoll:     time.Millisecond,
		PracticeCount: 3,
	}
	r := runner.New(catalog, stubGen{}, led, nil, cfg)
	ctrl := runner.NewController(r)

	scr := New(catalog, ctrl, completion.New(catalog), led, store.LearningPath{
		ID:   pathID,
		Name: "GCSE Foundation",
	})

	return &fixture{
		screen:  scr,
		catalog: catalog,
		led:     led,
		topicID: topicID,
		subIDs:  []string{sub1, sub2},
	}
}

func press(s *GenerateScreen, code rune) {
	s.handleKey(tea.KeyPressMsg{Code: code})
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestInitialProgress(t *testing.T) {
	f := newFixture(t)

	if got := f.screen.byTopic[f.topicID]; got.Done != 1 || got.Total != 2 {
		t.Errorf("expected topic progress 1/2, got %s", got)
	}
	if got := f.screen.pathProgress; got.Done != 1 || got.Total != 2 {
		t.Errorf("expected path progress 1/2, got %s", got)
	}
}

func TestKindToggleRecomputesProgress(t *testing.T) {
	f := newFixture(t)

	press(f.screen, tea.KeyTab)
	if f.screen.kind != store.ArtifactPractice {
		t.Fatalf("expected practice kind after tab, got %s", f.screen.kind)
	}
	// No practice questions seeded, so nothing counts as done.
	if got := f.screen.byTopic[f.topicID]; got.Done != 0 || got.Total != 2 {
		t.Errorf("expected practice progress 0/2, got %s", got)
	}

	press(f.screen, tea.KeyTab)
	if f.screen.kind != store.ArtifactLesson {
		t.Errorf("expected lesson kind after second tab, got %s", f.screen.kind)
	}
}

func TestExpandShowsChecklist(t *testing.T) {
	f := newFixture(t)

	press(f.screen, tea.KeyEnter)
	if !f.screen.expanded[f.topicID] {
		t.Fatal("expected topic expanded after enter")
	}
	list := f.screen.checklists[f.topicID]
	if len(list) != 2 {
		t.Fatalf("expected 2 checklist rows, got %d", len(list))
	}
	if !list[0].done || list[1].done {
		t.Errorf("expected only the first subtopic done, got %+v", list)
	}

	press(f.screen, tea.KeyEnter)
	if f.screen.expanded[f.topicID] {
		t.Error("expected topic collapsed after second enter")
	}
	if _, ok := f.screen.checklists[f.topicID]; ok {
		t.Error("expected checklist dropped on collapse")
	}
}

func TestForceRegenerateNeedsConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	press(f.screen, 'f')
	if !f.screen.confirmRegen {
		t.Fatal("expected confirmation prompt after f")
	}

	// Anything but y cancels.
	press(f.screen, 'n')
	if f.screen.confirmRegen {
		t.Error("expected prompt dismissed")
	}
	has, err := f.catalog.HasLesson(ctx, f.subIDs[0])
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Error("cancelled regenerate must not delete the lesson")
	}
}

func TestForceRegenerateDeletesOnConfirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	press(f.screen, 'f')
	press(f.screen, 'y')
	if f.screen.statusErr != nil {
		t.Fatalf("unexpected error: %v", f.screen.statusErr)
	}

	// The delete is synchronous; the stub generator never re-inserts.
	has, err := f.catalog.HasLesson(ctx, f.subIDs[0])
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("expected lesson deleted by confirmed regenerate")
	}

	// Let the background run finish before the store closes.
	waitFor(t, "run to finish", func() bool {
		snap := f.led.Snapshot(f.topicID)
		for _, e := range snap.Entries {
			if e.Kind == ledger.KindDone {
				return true
			}
		}
		return false
	})
}

func TestSelectionStaysInBounds(t *testing.T) {
	f := newFixture(t)

	press(f.screen, 'j')
	if f.screen.selected != 0 {
		t.Errorf("single topic: selection must stay 0, got %d", f.screen.selected)
	}
	press(f.screen, 'k')
	if f.screen.selected != 0 {
		t.Errorf("selection must not go negative, got %d", f.screen.selected)
	}
}
