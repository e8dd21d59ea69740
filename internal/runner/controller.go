package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/store"
)

// Controller owns run lifecycles: it starts per-topic and whole-path
// runs on background goroutines, tracks which topics are in flight,
// and fans pause/resume/stop out to the live controls. All methods are
// safe for concurrent use from the UI loop.
type Controller struct {
	runner *Runner

	mu      sync.Mutex
	running map[string]*RunControl // topic ID -> control for its active run
	allCtl  *RunControl            // non-nil while a run-all is active
	paused  bool
}

// NewController wraps a Runner.
func NewController(r *Runner) *Controller {
	return &Controller{
		runner:  r,
		running: make(map[string]*RunControl),
	}
}

// State is a point-in-time view of the controller for rendering.
type State struct {
	RunningTopics []string
	AllRunning    bool
	Paused        bool
}

// State reports which topics are running, whether a run-all is active,
// and whether the controller is paused.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := State{AllRunning: c.allCtl != nil, Paused: c.paused}
	for id := range c.running {
		s.RunningTopics = append(s.RunningTopics, id)
	}
	return s
}

// Running reports whether the given topic has an active run.
func (c *Controller) Running(topicID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.running[topicID]
	return ok
}

// StartTopic launches a generation run for one topic in the
// background. A topic already running is left alone. Setup errors
// (catalog reads before the loop starts) are returned synchronously;
// once the run is launched all outcomes land in the ledger.
func (c *Controller) StartTopic(ctx context.Context, kind store.ArtifactKind, topicID string) error {
	topic, err := c.runner.catalog.GetTopic(ctx, topicID)
	if err != nil {
		return fmt.Errorf("load topic: %w", err)
	}
	subs, err := c.runner.catalog.ListSubtopics(ctx, topicID)
	if err != nil {
		return fmt.Errorf("list subtopics: %w", err)
	}

	c.mu.Lock()
	if _, active := c.running[topicID]; active {
		c.mu.Unlock()
		return nil
	}
	ctl := NewControl()
	if c.paused {
		ctl.Pause()
	}
	c.running[topicID] = ctl
	c.mu.Unlock()

	c.runner.ledger.StartTopic(topicID)

	go func() {
		defer c.finish(topicID)
		c.runner.RunTopic(ctx, ctl, kind, *topic, subs)
	}()
	return nil
}

// StartAll launches a sequential run over every topic in the learning
// path that still has work, skipping fully completed topics without
// logging them. A second StartAll while one is active is a no-op.
func (c *Controller) StartAll(ctx context.Context, kind store.ArtifactKind, pathID string) error {
	topics, err := c.runner.catalog.ListTopics(ctx, pathID)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}

	c.mu.Lock()
	if c.allCtl != nil {
		c.mu.Unlock()
		return nil
	}
	ctl := NewControl()
	if c.paused {
		ctl.Pause()
	}
	c.allCtl = ctl
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.allCtl = nil
			c.mu.Unlock()
		}()
		for _, topic := range topics {
			if ctl.Stopped() || ctx.Err() != nil {
				return
			}
			done, err := c.topicComplete(ctx, kind, topic.ID)
			if err == nil && done {
				// Nothing to do; the topic never shows as running and
				// gets no log of its own.
				continue
			}
			c.runOne(ctx, ctl, kind, topic)
		}
	}()
	return nil
}

// runOne runs a single topic under the shared run-all control,
// registering it in the running set for the duration.
func (c *Controller) runOne(ctx context.Context, ctl *RunControl, kind store.ArtifactKind, topic store.Topic) {
	subs, err := c.runner.catalog.ListSubtopics(ctx, topic.ID)
	if err != nil {
		c.runner.ledger.StartTopic(topic.ID)
		c.runner.ledger.Append(topic.ID, errEntry(err))
		return
	}

	c.mu.Lock()
	if _, active := c.running[topic.ID]; active {
		c.mu.Unlock()
		return
	}
	c.running[topic.ID] = ctl
	c.mu.Unlock()
	defer c.finish(topic.ID)

	c.runner.ledger.StartTopic(topic.ID)
	c.runner.RunTopic(ctx, ctl, kind, topic, subs)
}

// ForceRegenerate deletes the topic's existing artifacts of the given
// kind and then runs it fresh. The delete happens synchronously so a
// returned nil means the destructive part already succeeded.
func (c *Controller) ForceRegenerate(ctx context.Context, kind store.ArtifactKind, topicID string) error {
	if c.Running(topicID) {
		return nil
	}
	subs, err := c.runner.catalog.ListSubtopics(ctx, topicID)
	if err != nil {
		return fmt.Errorf("list subtopics: %w", err)
	}
	ids := make([]string, len(subs))
	for i, s := range subs {
		ids[i] = s.ID
	}
	if _, err := c.runner.DeleteArtifacts(ctx, kind, ids); err != nil {
		return fmt.Errorf("delete existing artifacts: %w", err)
	}
	return c.StartTopic(ctx, kind, topicID)
}

// Pause suspends every active run at its next item boundary. In-flight
// generation requests complete normally. New runs started while paused
// begin in the paused state.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
	for _, ctl := range c.running {
		ctl.Pause()
	}
	if c.allCtl != nil {
		c.allCtl.Pause()
	}
}

// Resume lets paused runs continue.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	for _, ctl := range c.running {
		ctl.Resume()
	}
	if c.allCtl != nil {
		c.allCtl.Resume()
	}
}

// Stop halts every active run at its next item boundary and clears the
// paused state so stopped runs can observe the stop promptly.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	for _, ctl := range c.running {
		ctl.Stop()
	}
	if c.allCtl != nil {
		c.allCtl.Stop()
	}
}

// topicComplete reports whether every subtopic of the topic already
// has its artifact. Errors are treated as "not complete" by callers so
// the run surfaces them per item.
func (c *Controller) topicComplete(ctx context.Context, kind store.ArtifactKind, topicID string) (bool, error) {
	subs, err := c.runner.catalog.ListSubtopics(ctx, topicID)
	if err != nil {
		return false, err
	}
	if len(subs) == 0 {
		return false, nil
	}
	for _, s := range subs {
		has, err := c.runner.HasArtifact(ctx, kind, s.ID)
		if err != nil {
			return false, err
		}
		if !has {
			return false, nil
		}
	}
	return true, nil
}

func (c *Controller) finish(topicID string) {
	c.mu.Lock()
	delete(c.running, topicID)
	c.mu.Unlock()
}

func errEntry(err error) ledger.Entry {
	return ledger.Entry{Kind: ledger.KindError, Message: "❌ " + err.Error()}
}
