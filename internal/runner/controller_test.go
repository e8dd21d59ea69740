package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/store"
)

func newTestController(catalog *fakeCatalog, gen *fakeGen) (*Controller, *ledger.Ledger) {
	r, led := newTestRunner(catalog, gen)
	return NewController(r), led
}

// waitFor polls until the condition holds or the test deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestStartTopicRunsInBackground(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1", "s2")
	gen := newFakeGen(catalog)
	ctrl, led := newTestController(catalog, gen)

	if err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "run to finish", func() bool { return !ctrl.Running("t1") })

	snap := led.Snapshot("t1")
	if snap.OKCount != 2 {
		t.Errorf("OKCount = %d, want 2", snap.OKCount)
	}
}

func TestStartTopicWhileRunningIsNoop(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	gen := newFakeGen(catalog)
	gen.started = make(chan string)
	gen.release = make(chan struct{})
	ctrl, _ := newTestController(catalog, gen)

	if err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	<-gen.started

	// Second start while the first is mid-item must not spawn a run.
	if err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	gen.release <- struct{}{}
	waitFor(t, "run to finish", func() bool { return !ctrl.Running("t1") })

	if calls := gen.callList(); len(calls) != 1 {
		t.Errorf("calls = %v, want a single run's worth", calls)
	}
}

func TestStartTopicUnknownTopic(t *testing.T) {
	catalog := newFakeCatalog()
	gen := newFakeGen(catalog)
	ctrl, _ := newTestController(catalog, gen)

	err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
	if ctrl.Running("missing") {
		t.Error("no run should be launched for an unknown topic")
	}
}

func TestStartAllSkipsCompletedTopics(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	catalog.addTopic("path1", "t2", "s2", "s3")
	catalog.lessons["s1"] = true // t1 is fully done

	gen := newFakeGen(catalog)
	ctrl, led := newTestController(catalog, gen)

	if err := ctrl.StartAll(context.Background(), store.ArtifactLesson, "path1"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "run-all to finish", func() bool { return !ctrl.State().AllRunning })

	for _, id := range gen.callList() {
		if id == "s1" {
			t.Error("completed topic's subtopic was regenerated")
		}
	}
	// A skipped-over topic gets no log of its own.
	if entries := led.Snapshot("t1").Entries; len(entries) != 0 {
		t.Errorf("completed topic has %d log entries, want none", len(entries))
	}
	if led.Snapshot("t2").OKCount != 2 {
		t.Error("pending topic should have been generated")
	}
}

func TestStartAllStopsBetweenTopics(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	catalog.addTopic("path1", "t2", "s2")
	gen := newFakeGen(catalog)
	gen.started = make(chan string)
	gen.release = make(chan struct{})
	ctrl, _ := newTestController(catalog, gen)

	if err := ctrl.StartAll(context.Background(), store.ArtifactLesson, "path1"); err != nil {
		t.Fatal(err)
	}
	<-gen.started
	ctrl.Stop()
	gen.release <- struct{}{}
	waitFor(t, "run-all to finish", func() bool { return !ctrl.State().AllRunning })

	if calls := gen.callList(); len(calls) != 1 || calls[0] != "s1" {
		t.Errorf("calls = %v, want only the first topic's item", calls)
	}
}

func TestStartAllWhileActiveIsNoop(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	gen := newFakeGen(catalog)
	gen.started = make(chan string)
	gen.release = make(chan struct{})
	ctrl, _ := newTestController(catalog, gen)

	if err := ctrl.StartAll(context.Background(), store.ArtifactLesson, "path1"); err != nil {
		t.Fatal(err)
	}
	<-gen.started
	if err := ctrl.StartAll(context.Background(), store.ArtifactLesson, "path1"); err != nil {
		t.Fatal(err)
	}
	gen.release <- struct{}{}
	waitFor(t, "run-all to finish", func() bool { return !ctrl.State().AllRunning })

	if calls := gen.callList(); len(calls) != 1 {
		t.Errorf("calls = %v, want a single pass", calls)
	}
}

func TestPauseAppliesToNewRuns(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	gen := newFakeGen(catalog)
	gen.started = make(chan string, 1)
	ctrl, _ := newTestController(catalog, gen)

	ctrl.Pause()
	if err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}

	select {
	case <-gen.started:
		t.Fatal("run started under a paused controller generated an item")
	case <-time.After(30 * time.Millisecond):
	}
	if !ctrl.State().Paused {
		t.Error("controller should report paused")
	}

	ctrl.Resume()
	waitFor(t, "run to finish", func() bool { return !ctrl.Running("t1") })
	if calls := gen.callList(); len(calls) != 1 {
		t.Errorf("calls after resume = %v, want 1", calls)
	}
}

func TestForceRegenerateDeletesThenRuns(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1", "s2")
	catalog.lessons["s1"] = true
	catalog.lessons["s2"] = true
	gen := newFakeGen(catalog)
	ctrl, led := newTestController(catalog, gen)

	if err := ctrl.ForceRegenerate(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "run to finish", func() bool { return !ctrl.Running("t1") })

	catalog.mu.Lock()
	deleted := len(catalog.deletedLessons)
	catalog.mu.Unlock()
	if deleted != 2 {
		t.Errorf("deleted %d lessons, want 2", deleted)
	}
	if snap := led.Snapshot("t1"); snap.OKCount != 2 || snap.SkipCount != 0 {
		t.Errorf("tallies = %d ok / %d skip, want everything regenerated", snap.OKCount, snap.SkipCount)
	}
}

func TestForceRegenerateWhileRunningIsNoop(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addTopic("path1", "t1", "s1")
	catalog.lessons["s1"] = true
	gen := newFakeGen(catalog)
	gen.started = make(chan string)
	gen.release = make(chan struct{})
	ctrl, _ := newTestController(catalog, gen)

	// Delete the lesson so the normal run has work and blocks in-flight.
	catalog.mu.Lock()
	delete(catalog.lessons, "s1")
	catalog.mu.Unlock()
	if err := ctrl.StartTopic(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	<-gen.started

	if err := ctrl.ForceRegenerate(context.Background(), store.ArtifactLesson, "t1"); err != nil {
		t.Fatal(err)
	}
	gen.release <- struct{}{}
	waitFor(t, "run to finish", func() bool { return !ctrl.Running("t1") })

	catalog.mu.Lock()
	deleted := len(catalog.deletedLessons)
	catalog.mu.Unlock()
	if deleted != 0 {
		t.Error("force-regenerate on a running topic must not delete anything")
	}
}
