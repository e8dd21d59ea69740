// Package ledger holds the in-memory, per-topic log of generation
// attempts and its derived tallies. It is the single source the
// operator surfaces read; it never persists across sessions.
package ledger

import "sync"

// Kind classifies a log entry.
type Kind string

const (
	KindInfo  Kind = "info"  // attempt in progress
	KindOK    Kind = "ok"    // artifact generated
	KindSkip  Kind = "skip"  // artifact already existed
	KindError Kind = "error" // attempt failed
	KindDone  Kind = "done"  // end-of-topic summary, or stop marker
)

// Entry is one append-only log line for a topic.
type Entry struct {
	Kind    Kind
	Message string
}

// Snapshot is a read-only copy of one topic's log and tallies.
type Snapshot struct {
	Entries   []Entry
	OKCount   int
	SkipCount int
	FailCount int
}

type topicLog struct {
	entries []Entry
	ok      int
	skip    int
	fail    int
}

// Ledger tracks per-topic generation logs. Safe for concurrent use:
// the run goroutine appends while presentation code takes snapshots.
type Ledger struct {
	mu     sync.Mutex
	topics map[string]*topicLog
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{topics: make(map[string]*topicLog)}
}

// StartTopic clears the topic's log and zeroes its tallies. A new run
// starts from a clean log rather than editing history from the last one.
func (l *Ledger) StartTopic(topicID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.topics[topicID] = &topicLog{}
}

// Append adds an entry to the topic's log and updates the tallies.
// The tallies are always derived from appended entries alone.
func (l *Ledger) Append(topicID string, e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tl := l.topics[topicID]
	if tl == nil {
		tl = &topicLog{}
		l.topics[topicID] = tl
	}
	tl.entries = append(tl.entries, e)
	switch e.Kind {
	case KindOK:
		tl.ok++
	case KindSkip:
		tl.skip++
	case KindError:
		tl.fail++
	}
}

// Snapshot returns a copy of the topic's log. Unknown topics yield an
// empty snapshot.
func (l *Ledger) Snapshot(topicID string) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshotLocked(l.topics[topicID])
}

// SnapshotAll returns copies of every topic's log keyed by topic id.
func (l *Ledger) SnapshotAll() map[string]Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]Snapshot, len(l.topics))
	for id, tl := range l.topics {
		out[id] = snapshotLocked(tl)
	}
	return out
}

func snapshotLocked(tl *topicLog) Snapshot {
	if tl == nil {
		return Snapshot{}
	}
	entries := make([]Entry, len(tl.entries))
	copy(entries, tl.entries)
	return Snapshot{
		Entries:   entries,
		OKCount:   tl.ok,
		SkipCount: tl.skip,
		FailCount: tl.fail,
	}
}
