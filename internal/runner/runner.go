// Package runner drives bulk content generation: a strictly sequential
// walk over a topic's subtopics, calling the generation endpoint one
// item at a time with a fixed inter-item delay, re-checking artifact
// existence live before every call, and honoring cooperative
// pause/stop signals at item boundaries only. One failed item never
// aborts the batch; it becomes a ledger entry and the walk moves on.
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/store"
)

// Catalog is the slice of the store the runner reads, plus the two
// destructive deletes used by force-regenerate.
type Catalog interface {
	ListTopics(ctx context.Context, pathID string) ([]store.Topic, error)
	GetTopic(ctx context.Context, id string) (*store.Topic, error)
	ListSubtopics(ctx context.Context, topicID string) ([]store.Subtopic, error)
	HasLesson(ctx context.Context, subtopicID string) (bool, error)
	CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error)
	DeleteLessons(ctx context.Context, subtopicIDs []string) (int, error)
	DeletePracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error)
}

// Generator produces one artifact per call. Satisfied by the remote
// HTTP client and by the in-process forge adapter.
type Generator interface {
	GenerateLesson(ctx context.Context, subtopicID string) (genclient.Result, error)
	GeneratePractice(ctx context.Context, subtopicID string, count int) (genclient.Result, error)
}

// Config holds the runner's pacing knobs.
type Config struct {
	// LessonDelay / PracticeDelay is the wait between consecutive
	// generation attempts within a topic. Protects the downstream
	// model provider's rate limit, not local resources.
	LessonDelay   time.Duration
	PracticeDelay time.Duration

	// PausePoll is how often a paused run re-checks its flags.
	PausePoll time.Duration

	// PracticeCount is the target extended-question count per subtopic.
	PracticeCount int
}

// DefaultConfig returns the documented pacing defaults.
func DefaultConfig() Config {
	return Config{
		LessonDelay:   700 * time.Millisecond,
		PracticeDelay: 800 * time.Millisecond,
		PausePoll:     300 * time.Millisecond,
		PracticeCount: 30,
	}
}

// WorkItem is one subtopic's pending generation task within a run.
type WorkItem struct {
	TopicID    string
	SubtopicID string
	Name       string
	Index      int // position within the topic, 0-based
	Total      int // subtopics in the topic
}

// Runner executes the per-topic generation loop.
type Runner struct {
	catalog Catalog
	gen     Generator
	ledger  *ledger.Ledger
	events  store.EventRepo // optional audit trail; may be nil
	cfg     Config
}

// New creates a Runner. events may be nil to skip the audit trail.
func New(catalog Catalog, gen Generator, led *ledger.Ledger, events store.EventRepo, cfg Config) *Runner {
	return &Runner{catalog: catalog, gen: gen, ledger: led, events: events, cfg: cfg}
}

// RunTopic walks the topic's subtopics in order, generating each
// missing artifact. It returns true if the topic ran to completion and
// false if it was stopped (by the control or context). The caller is
// expected to have called ledger.StartTopic beforehand for a clean log.
func (r *Runner) RunTopic(ctx context.Context, ctl *RunControl, kind store.ArtifactKind, topic store.Topic, subs []store.Subtopic) bool {
	if len(subs) == 0 {
		r.ledger.Append(topic.ID, ledger.Entry{
			Kind:    ledger.KindSkip,
			Message: "No subtopics found for this topic.",
		})
		return true
	}

	var ok, skip, fail int

	for i, sub := range subs {
		item := WorkItem{
			TopicID:    topic.ID,
			SubtopicID: sub.ID,
			Name:       sub.Name,
			Index:      i,
			Total:      len(subs),
		}

		// Pause blocks before this item; a request already in flight is
		// never interrupted because this is the only wait point.
		if !r.waitWhilePaused(ctx, ctl) {
			r.appendStopped(topic.ID)
			return false
		}
		if ctl.Stopped() || ctx.Err() != nil {
			r.appendStopped(topic.ID)
			return false
		}

		// Live check against the store, not a snapshot from run start.
		// Tolerates concurrent edits and makes re-running a topic cheap.
		exists, err := r.HasArtifact(ctx, kind, sub.ID)
		if err != nil {
			fail++
			r.ledger.Append(topic.ID, ledger.Entry{
				Kind:    ledger.KindError,
				Message: fmt.Sprintf("%s ❌ %s — %s", item.progress(), sub.Name, err),
			})
			continue
		}
		if exists {
			skip++
			r.ledger.Append(topic.ID, ledger.Entry{
				Kind:    ledger.KindSkip,
				Message: fmt.Sprintf("%s ⏭ Already exists: %s", item.progress(), sub.Name),
			})
			continue
		}

		r.ledger.Append(topic.ID, ledger.Entry{
			Kind:    ledger.KindInfo,
			Message: fmt.Sprintf("%s ⏳ %s…", item.progress(), sub.Name),
		})

		outcome := r.generateOne(ctx, kind, item)
		switch outcome {
		case genclient.StatusCreated:
			ok++
		case genclient.StatusExists:
			skip++
		default:
			fail++
		}

		if i < len(subs)-1 {
			if !sleepCtx(ctx, r.delay(kind)) {
				r.appendStopped(topic.ID)
				return false
			}
		}
	}

	r.ledger.Append(topic.ID, ledger.Entry{
		Kind:    ledger.KindDone,
		Message: fmt.Sprintf("✅ %d generated · %d skipped · %d failed", ok, skip, fail),
	})
	return true
}

// generateOne calls the generator for a single item, appends exactly
// one ok/skip/error entry, and records the audit event. Nothing from
// the generate call may escape and abort the loop.
func (r *Runner) generateOne(ctx context.Context, kind store.ArtifactKind, item WorkItem) genclient.Status {
	start := time.Now()

	var res genclient.Result
	var err error
	if kind == store.ArtifactPractice {
		res, err = r.gen.GeneratePractice(ctx, item.SubtopicID, r.cfg.PracticeCount)
	} else {
		res, err = r.gen.GenerateLesson(ctx, item.SubtopicID)
	}
	if err != nil {
		res = genclient.Result{Status: genclient.StatusFailed, Message: err.Error()}
	}

	latency := time.Since(start).Milliseconds()

	switch res.Status {
	case genclient.StatusCreated:
		msg := fmt.Sprintf("%s ✅ %s", item.progress(), item.Name)
		if res.Inserted > 0 {
			msg = fmt.Sprintf("%s +%d questions", msg, res.Inserted)
		}
		r.ledger.Append(item.TopicID, ledger.Entry{Kind: ledger.KindOK, Message: msg})
		r.recordEvent(ctx, kind, item, "created", res.Message, latency)
	case genclient.StatusExists:
		r.ledger.Append(item.TopicID, ledger.Entry{
			Kind:    ledger.KindSkip,
			Message: fmt.Sprintf("%s ⏭ %s — %s", item.progress(), item.Name, res.Message),
		})
		r.recordEvent(ctx, kind, item, "exists", res.Message, latency)
	default:
		r.ledger.Append(item.TopicID, ledger.Entry{
			Kind:    ledger.KindError,
			Message: fmt.Sprintf("%s ❌ %s — %s", item.progress(), item.Name, res.Message),
		})
		r.recordEvent(ctx, kind, item, "failed", res.Message, latency)
	}
	return res.Status
}

// HasArtifact is the live artifact check for one subtopic: a lesson row
// for lessons, at least one extended question for practice.
func (r *Runner) HasArtifact(ctx context.Context, kind store.ArtifactKind, subtopicID string) (bool, error) {
	if kind == store.ArtifactPractice {
		n, err := r.catalog.CountPracticeQuestions(ctx, []string{subtopicID}, store.CategoryExtended)
		return n > 0, err
	}
	return r.catalog.HasLesson(ctx, subtopicID)
}

// DeleteArtifacts removes every artifact of the given kind for the
// subtopics. Used only by the force-regenerate path; irreversible.
func (r *Runner) DeleteArtifacts(ctx context.Context, kind store.ArtifactKind, subtopicIDs []string) (int, error) {
	if kind == store.ArtifactPractice {
		return r.catalog.DeletePracticeQuestions(ctx, subtopicIDs, store.CategoryExtended)
	}
	return r.catalog.DeleteLessons(ctx, subtopicIDs)
}

// waitWhilePaused blocks while the control is paused, polling at the
// configured interval. Returns false if the run should stop instead.
func (r *Runner) waitWhilePaused(ctx context.Context, ctl *RunControl) bool {
	for ctl.Paused() {
		if ctl.Stopped() || ctx.Err() != nil {
			return false
		}
		if !sleepCtx(ctx, r.cfg.PausePoll) {
			return false
		}
	}
	return true
}

func (r *Runner) appendStopped(topicID string) {
	r.ledger.Append(topicID, ledger.Entry{Kind: ledger.KindDone, Message: "⏹ Stopped."})
}

func (r *Runner) delay(kind store.ArtifactKind) time.Duration {
	if kind == store.ArtifactPractice {
		return r.cfg.PracticeDelay
	}
	return r.cfg.LessonDelay
}

func (r *Runner) recordEvent(ctx context.Context, kind store.ArtifactKind, item WorkItem, outcome, detail string, latencyMs int64) {
	if r.events == nil {
		return
	}
	err := r.events.AppendGenEvent(ctx, store.GenEventData{
		ArtifactKind: string(kind),
		TopicID:      item.TopicID,
		SubtopicID:   item.SubtopicID,
		Outcome:      outcome,
		Detail:       detail,
		LatencyMs:    latencyMs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record generation event: %v\n", err)
	}
}

func (w WorkItem) progress() string {
	return fmt.Sprintf("[%d/%d]", w.Index+1, w.Total)
}

// sleepCtx sleeps for d, returning false if ctx is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
