package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/store"
)

// fakeCatalog is an in-memory Catalog for runner tests.
type fakeCatalog struct {
	mu        sync.Mutex
	topics    map[string][]store.Topic    // path ID -> topics in order
	subtopics map[string][]store.Subtopic // topic ID -> subtopics in order
	lessons   map[string]bool             // subtopic ID -> has lesson
	extended  map[string]int              // subtopic ID -> extended question count
	checkErr  map[string]error            // subtopic ID -> error from artifact checks

	deletedLessons  []string
	deletedPractice []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		topics:    make(map[string][]store.Topic),
		subtopics: make(map[string][]store.Subtopic),
		lessons:   make(map[string]bool),
		extended:  make(map[string]int),
		checkErr:  make(map[string]error),
	}
}

func (f *fakeCatalog) addTopic(pathID, topicID string, subIDs ...string) store.Topic {
	f.mu.Lock()
	defer f.mu.Unlock()
	topic := store.Topic{ID: topicID, LearningPathID: pathID, Name: "Topic " + topicID}
	f.topics[pathID] = append(f.topics[pathID], topic)
	for _, id := range subIDs {
		f.subtopics[topicID] = append(f.subtopics[topicID], store.Subtopic{
			ID: id, TopicID: topicID, Name: "Subtopic " + id,
		})
	}
	return topic
}

func (f *fakeCatalog) ListTopics(ctx context.Context, pathID string) ([]store.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Topic(nil), f.topics[pathID]...), nil
}

func (f *fakeCatalog) GetTopic(ctx context.Context, id string) (*store.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, topics := range f.topics {
		for _, t := range topics {
			if t.ID == id {
				topic := t
				return &topic, nil
			}
		}
	}
	return nil, fmt.Errorf("topic %s: %w", id, store.ErrNotFound)
}

func (f *fakeCatalog) ListSubtopics(ctx context.Context, topicID string) ([]store.Subtopic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Subtopic(nil), f.subtopics[topicID]...), nil
}

func (f *fakeCatalog) HasLesson(ctx context.Context, subtopicID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkErr[subtopicID]; err != nil {
		return false, err
	}
	return f.lessons[subtopicID], nil
}

func (f *fakeCatalog) CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, id := range subtopicIDs {
		if err := f.checkErr[id]; err != nil {
			return 0, err
		}
		if category == store.CategoryExtended {
			total += f.extended[id]
		}
	}
	return total, nil
}

func (f *fakeCatalog) DeleteLessons(ctx context.Context, subtopicIDs []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range subtopicIDs {
		if f.lessons[id] {
			n++
		}
		delete(f.lessons, id)
		f.deletedLessons = append(f.deletedLessons, id)
	}
	return n, nil
}

func (f *fakeCatalog) DeletePracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range subtopicIDs {
		n += f.extended[id]
		delete(f.extended, id)
		f.deletedPractice = append(f.deletedPractice, id)
	}
	return n, nil
}

// fakeGen scripts per-subtopic generation outcomes and records calls
// in order. A successful lesson call marks the lesson as present in
// the catalog, mirroring the real write path.
type fakeGen struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	calls   []string
	results map[string]genclient.Result
	errs    map[string]error
	started chan string   // if non-nil, receives each subtopic ID at call start
	release chan struct{} // if non-nil, each call blocks until it can receive
}

func newFakeGen(catalog *fakeCatalog) *fakeGen {
	return &fakeGen{
		catalog: catalog,
		results: make(map[string]genclient.Result),
		errs:    make(map[string]error),
	}
}

func (g *fakeGen) GenerateLesson(ctx context.Context, subtopicID string) (genclient.Result, error) {
	return g.generate(ctx, subtopicID)
}

func (g *fakeGen) GeneratePractice(ctx context.Context, subtopicID string, count int) (genclient.Result, error) {
	return g.generate(ctx, subtopicID)
}

func (g *fakeGen) generate(ctx context.Context, subtopicID string) (genclient.Result, error) {
	if g.started != nil {
		g.started <- subtopicID
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return genclient.Result{}, ctx.Err()
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, subtopicID)
	if err := g.errs[subtopicID]; err != nil {
		return genclient.Result{}, err
	}
	if res, ok := g.results[subtopicID]; ok {
		return res, nil
	}
	g.catalog.mu.Lock()
	g.catalog.lessons[subtopicID] = true
	g.catalog.mu.Unlock()
	return genclient.Result{Status: genclient.StatusCreated, Message: "created"}, nil
}

func (g *fakeGen) callList() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.LessonDelay = time.Millisecond
	cfg.PracticeDelay = time.Millisecond
	cfg.PausePoll = time.Millisecond
	return cfg
}

func newTestRunner(catalog *fakeCatalog, gen *fakeGen) (*Runner, *ledger.Ledger) {
	led := ledger.New()
	return New(catalog, gen, led, nil, testConfig()), led
}

func TestRunTopicGeneratesMissingInOrder(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2", "s3")
	gen := newFakeGen(catalog)
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	completed := r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if !completed {
		t.Fatal("run should report completion")
	}
	want := []string{"s1", "s2", "s3"}
	got := gen.callList()
	if len(got) != len(want) {
		t.Fatalf("got %d calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}

	snap := led.Snapshot("t1")
	if snap.OKCount != 3 || snap.SkipCount != 0 || snap.FailCount != 0 {
		t.Errorf("tallies = %d/%d/%d, want 3/0/0", snap.OKCount, snap.SkipCount, snap.FailCount)
	}
	last := snap.Entries[len(snap.Entries)-1]
	if last.Kind != ledger.KindDone {
		t.Errorf("last entry kind = %s, want done", last.Kind)
	}
	if !strings.Contains(last.Message, "3 generated · 0 skipped · 0 failed") {
		t.Errorf("unexpected summary: %q", last.Message)
	}
}

func TestRunTopicIdempotent(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2")
	catalog.lessons["s1"] = true
	catalog.lessons["s2"] = true
	gen := newFakeGen(catalog)
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if calls := gen.callList(); len(calls) != 0 {
		t.Fatalf("fully populated topic made %d generation calls", len(calls))
	}
	snap := led.Snapshot("t1")
	if snap.SkipCount != 2 || snap.OKCount != 0 || snap.FailCount != 0 {
		t.Errorf("tallies = %d/%d/%d, want 0 ok / 2 skip / 0 fail",
			snap.OKCount, snap.SkipCount, snap.FailCount)
	}
	last := snap.Entries[len(snap.Entries)-1]
	if !strings.Contains(last.Message, "0 generated · 2 skipped · 0 failed") {
		t.Errorf("unexpected summary: %q", last.Message)
	}
}

func TestRunTopicFailureDoesNotAbort(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2", "s3")
	gen := newFakeGen(catalog)
	gen.results["s2"] = genclient.Result{Status: genclient.StatusFailed, Message: "HTTP 500"}
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if calls := gen.callList(); len(calls) != 3 {
		t.Fatalf("got %d calls, want all 3 despite the failure", len(calls))
	}
	snap := led.Snapshot("t1")
	if snap.OKCount != 2 || snap.FailCount != 1 {
		t.Errorf("tallies = %d ok / %d fail, want 2/1", snap.OKCount, snap.FailCount)
	}
	last := snap.Entries[len(snap.Entries)-1]
	if !strings.Contains(last.Message, "2 generated · 0 skipped · 1 failed") {
		t.Errorf("unexpected summary: %q", last.Message)
	}
}

func TestRunTopicGeneratorErrorBecomesFailure(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1")
	gen := newFakeGen(catalog)
	gen.errs["s1"] = errors.New("connection refused")
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	completed := r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if !completed {
		t.Fatal("a failed item must not stop the run")
	}
	snap := led.Snapshot("t1")
	if snap.FailCount != 1 {
		t.Fatalf("FailCount = %d, want 1", snap.FailCount)
	}
	found := false
	for _, e := range snap.Entries {
		if e.Kind == ledger.KindError && strings.Contains(e.Message, "connection refused") {
			found = true
		}
	}
	if !found {
		t.Error("expected an error entry carrying the transport message")
	}
}

func TestRunTopicSkippedGeneratorResponse(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1")
	gen := newFakeGen(catalog)
	gen.results["s1"] = genclient.Result{Status: genclient.StatusExists, Message: "already has 30", Existing: 30}
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	r.RunTopic(context.Background(), NewControl(), store.ArtifactPractice, topic, subs)

	snap := led.Snapshot("t1")
	if snap.SkipCount != 1 || snap.OKCount != 0 || snap.FailCount != 0 {
		t.Errorf("tallies = %d/%d/%d, want 0 ok / 1 skip / 0 fail",
			snap.OKCount, snap.SkipCount, snap.FailCount)
	}
}

func TestRunTopicArtifactCheckErrorCountsAsFailure(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2")
	catalog.checkErr["s1"] = errors.New("database is locked")
	gen := newFakeGen(catalog)
	r, led := newTestRunner(catalog, gen)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if calls := gen.callList(); len(calls) != 1 || calls[0] != "s2" {
		t.Fatalf("calls = %v, want only s2", calls)
	}
	snap := led.Snapshot("t1")
	if snap.FailCount != 1 || snap.OKCount != 1 {
		t.Errorf("tallies = %d ok / %d fail, want 1/1", snap.OKCount, snap.FailCount)
	}
}

func TestRunTopicEmptySubtopics(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1")
	gen := newFakeGen(catalog)
	r, led := newTestRunner(catalog, gen)

	completed := r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, nil)

	if !completed {
		t.Fatal("an empty topic completes immediately")
	}
	snap := led.Snapshot("t1")
	if len(snap.Entries) != 1 || snap.Entries[0].Kind != ledger.KindSkip {
		t.Fatalf("entries = %+v, want a single skip entry", snap.Entries)
	}
}

func TestRunTopicStopBeforeFirstItem(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2")
	gen := newFakeGen(catalog)
	r, led := newTestRunner(catalog, gen)

	ctl := NewControl()
	ctl.Stop()
	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	completed := r.RunTopic(context.Background(), ctl, store.ArtifactLesson, topic, subs)

	if completed {
		t.Fatal("stopped run must not report completion")
	}
	if calls := gen.callList(); len(calls) != 0 {
		t.Fatalf("stopped run made %d generation calls", len(calls))
	}
	snap := led.Snapshot("t1")
	last := snap.Entries[len(snap.Entries)-1]
	if last.Kind != ledger.KindDone || !strings.Contains(last.Message, "Stopped") {
		t.Errorf("last entry = %+v, want a stopped marker", last)
	}
}

func TestRunTopicStopBetweenItems(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2", "s3")
	gen := newFakeGen(catalog)
	gen.started = make(chan string)
	gen.release = make(chan struct{})
	r, led := newTestRunner(catalog, gen)

	ctl := NewControl()
	done := make(chan bool)
	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	go func() {
		done <- r.RunTopic(context.Background(), ctl, store.ArtifactLesson, topic, subs)
	}()

	// Let the first item start, stop the run mid-flight, then let the
	// request finish. The in-flight item completes; s2 and s3 never run.
	<-gen.started
	ctl.Stop()
	gen.release <- struct{}{}

	if completed := <-done; completed {
		t.Fatal("stopped run must not report completion")
	}
	if calls := gen.callList(); len(calls) != 1 {
		t.Fatalf("calls after stop = %v, want just the in-flight item", calls)
	}
	snap := led.Snapshot("t1")
	if snap.OKCount != 1 {
		t.Errorf("OKCount = %d, want 1 for the in-flight item", snap.OKCount)
	}
}

func TestRunTopicPauseHoldsAtItemBoundary(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2")
	gen := newFakeGen(catalog)
	gen.started = make(chan string, 2)
	r, _ := newTestRunner(catalog, gen)

	ctl := NewControl()
	ctl.Pause()
	done := make(chan bool)
	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	go func() {
		done <- r.RunTopic(context.Background(), ctl, store.ArtifactLesson, topic, subs)
	}()

	select {
	case id := <-gen.started:
		t.Fatalf("paused run generated %s", id)
	case <-time.After(30 * time.Millisecond):
	}

	ctl.Resume()
	if completed := <-done; !completed {
		t.Fatal("resumed run should complete")
	}
	if calls := gen.callList(); len(calls) != 2 {
		t.Errorf("calls after resume = %v, want both items", calls)
	}
}

func TestRunTopicSkipsIncurNoDelay(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2", "s3", "s4")
	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		catalog.lessons[id] = true
	}
	gen := newFakeGen(catalog)
	led := ledger.New()
	cfg := testConfig()
	cfg.LessonDelay = 200 * time.Millisecond
	r := New(catalog, gen, led, nil, cfg)

	subs, _ := catalog.ListSubtopics(context.Background(), "t1")
	start := time.Now()
	r.RunTopic(context.Background(), NewControl(), store.ArtifactLesson, topic, subs)

	if elapsed := time.Since(start); elapsed >= cfg.LessonDelay {
		t.Errorf("all-skip run took %v, skips must not wait the inter-item delay", elapsed)
	}
}

func TestRunTopicContextCancel(t *testing.T) {
	catalog := newFakeCatalog()
	topic := catalog.addTopic("path1", "t1", "s1", "s2")
	gen := newFakeGen(catalog)
	r, _ := newTestRunner(catalog, gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	subs, _ := catalog.ListSubtopics(ctx, "t1")
	if completed := r.RunTopic(ctx, NewControl(), store.ArtifactLesson, topic, subs); completed {
		t.Fatal("canceled context must stop the run")
	}
	if calls := gen.callList(); len(calls) != 0 {
		t.Errorf("canceled run made %d calls", len(calls))
	}
}
