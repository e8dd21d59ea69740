package ledger

import (
	"fmt"
	"sync"
	"testing"
)

func TestTalliesMatchEntries(t *testing.T) {
	l := New()
	l.StartTopic("t1")

	entries := []Entry{
		{Kind: KindInfo, Message: "[1/4] working"},
		{Kind: KindOK, Message: "[1/4] done"},
		{Kind: KindSkip, Message: "[2/4] already exists"},
		{Kind: KindInfo, Message: "[3/4] working"},
		{Kind: KindError, Message: "[3/4] HTTP 500"},
		{Kind: KindOK, Message: "[4/4] done"},
		{Kind: KindDone, Message: "2 generated, 1 skipped, 1 failed"},
	}
	for _, e := range entries {
		l.Append("t1", e)
	}

	snap := l.Snapshot("t1")
	if len(snap.Entries) != len(entries) {
		t.Fatalf("len(entries) = %d, want %d", len(snap.Entries), len(entries))
	}
	if snap.OKCount != 2 || snap.SkipCount != 1 || snap.FailCount != 1 {
		t.Errorf("tallies = %d/%d/%d, want 2/1/1", snap.OKCount, snap.SkipCount, snap.FailCount)
	}

	// Order preserved.
	for i, e := range entries {
		if snap.Entries[i] != e {
			t.Errorf("entry %d = %+v, want %+v", i, snap.Entries[i], e)
		}
	}
}

func TestStartTopicClearsLog(t *testing.T) {
	l := New()
	l.Append("t1", Entry{Kind: KindOK, Message: "old"})
	l.StartTopic("t1")

	snap := l.Snapshot("t1")
	if len(snap.Entries) != 0 || snap.OKCount != 0 {
		t.Errorf("log not cleared: %+v", snap)
	}
}

func TestSnapshotUnknownTopic(t *testing.T) {
	l := New()
	snap := l.Snapshot("nope")
	if len(snap.Entries) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	l := New()
	l.Append("t1", Entry{Kind: KindOK, Message: "a"})

	snap := l.Snapshot("t1")
	snap.Entries[0].Message = "mutated"

	if got := l.Snapshot("t1").Entries[0].Message; got != "a" {
		t.Errorf("ledger mutated through snapshot: %q", got)
	}
}

func TestSnapshotAll(t *testing.T) {
	l := New()
	l.Append("t1", Entry{Kind: KindOK, Message: "a"})
	l.Append("t2", Entry{Kind: KindError, Message: "b"})

	all := l.SnapshotAll()
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all["t1"].OKCount != 1 || all["t2"].FailCount != 1 {
		t.Errorf("unexpected tallies: %+v", all)
	}
}

func TestConcurrentAppendAndSnapshot(t *testing.T) {
	l := New()
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.Append("t1", Entry{Kind: KindOK, Message: fmt.Sprintf("%d", i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = l.Snapshot("t1")
		}
	}()
	wg.Wait()

	if got := l.Snapshot("t1").OKCount; got != 200 {
		t.Errorf("ok count = %d, want 200", got)
	}
}
