// Package generate is the operator dashboard for one learning path:
// per-topic progress, run controls, and the live generation log.
package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/screen"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/mathsinbites/bitesmith/internal/ui/components"
	"github.com/mathsinbites/bitesmith/internal/ui/layout"
	"github.com/mathsinbites/bitesmith/internal/ui/theme"
)

// pollInterval drives the progress/ledger refresh while the screen is
// visible. Runs live on their own goroutines; the screen only reads.
const pollInterval = 500 * time.Millisecond

// maxLogLines caps how many entries an expanded topic log shows.
const maxLogLines = 8

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// GenerateScreen drives bulk generation for one learning path.
type GenerateScreen struct {
	catalog store.CatalogRepo
	ctrl    *runner.Controller
	agg     *completion.Aggregator
	led     *ledger.Ledger

	path   store.LearningPath
	topics []store.Topic
	kind   store.ArtifactKind

	selected int
	expanded map[string]bool

	pathProgress completion.Progress
	byTopic      map[string]completion.Progress
	logs         map[string]ledger.Snapshot
	checklists   map[string][]subtopicState
	state        runner.State

	spin spinner.Model

	confirmRegen bool
	statusErr    error
	loadErr      error
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates the dashboard for a learning path.
func New(catalog store.CatalogRepo, ctrl *runner.Controller, agg *completion.Aggregator, led *ledger.Ledger, path store.LearningPath) *GenerateScreen {
	s := &GenerateScreen{
		catalog:    catalog,
		ctrl:       ctrl,
		agg:        agg,
		led:        led,
		path:       path,
		kind:       store.ArtifactLesson,
		expanded:   make(map[string]bool),
		byTopic:    make(map[string]completion.Progress),
		logs:       make(map[string]ledger.Snapshot),
		checklists: make(map[string][]subtopicState),
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}

	topics, err := catalog.ListTopics(context.Background(), path.ID)
	if err != nil {
		s.loadErr = err
		return s
	}
	s.topics = topics
	s.refresh()
	return s
}

func (s *GenerateScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(), s.spin.Tick)
}

// refresh re-reads completion counts, ledger snapshots, and run state.
func (s *GenerateScreen) refresh() {
	ctx := context.Background()
	total, byTopic, err := s.agg.Path(ctx, s.kind, s.path.ID)
	if err == nil {
		s.pathProgress = total
		s.byTopic = byTopic
	}
	s.logs = s.led.SnapshotAll()
	s.state = s.ctrl.State()

	for id := range s.expanded {
		if s.expanded[id] {
			s.checklists[id] = s.loadChecklist(ctx, id)
		} else {
			delete(s.checklists, id)
		}
	}
}

// subtopicState is one checklist row of an expanded topic.
type subtopicState struct {
	name string
	done bool
}

func (s *GenerateScreen) loadChecklist(ctx context.Context, topicID string) []subtopicState {
	subs, err := s.catalog.ListSubtopics(ctx, topicID)
	if err != nil {
		return nil
	}
	out := make([]subtopicState, 0, len(subs))
	for _, sub := range subs {
		var done bool
		if s.kind == store.ArtifactPractice {
			n, err := s.catalog.CountPracticeQuestions(ctx, []string{sub.ID}, store.CategoryExtended)
			done = err == nil && n > 0
		} else {
			done, _ = s.catalog.HasLesson(ctx, sub.ID)
		}
		out = append(out, subtopicState{name: sub.Name, done: done})
	}
	return out
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.refresh()
		return s, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GenerateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loadErr != nil {
		return s, nil
	}

	// A pending force-regenerate confirmation swallows everything
	// except its yes/no answer.
	if s.confirmRegen {
		switch msg.String() {
		case "y", "Y":
			s.confirmRegen = false
			s.statusErr = s.ctrl.ForceRegenerate(context.Background(), s.kind, s.currentTopic().ID)
		default:
			s.confirmRegen = false
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.topics)-1 {
			s.selected++
		}
	case "tab", "t":
		if s.kind == store.ArtifactLesson {
			s.kind = store.ArtifactPractice
		} else {
			s.kind = store.ArtifactLesson
		}
		s.refresh()
	case "enter", "l":
		if t := s.currentTopic(); t != nil {
			s.expanded[t.ID] = !s.expanded[t.ID]
			if s.expanded[t.ID] {
				s.checklists[t.ID] = s.loadChecklist(context.Background(), t.ID)
			} else {
				delete(s.checklists, t.ID)
			}
		}
	case "g":
		if t := s.currentTopic(); t != nil {
			s.statusErr = s.ctrl.StartTopic(context.Background(), s.kind, t.ID)
		}
	case "a":
		s.statusErr = s.ctrl.StartAll(context.Background(), s.kind, s.path.ID)
	case "p":
		s.ctrl.Pause()
		s.state = s.ctrl.State()
	case "r":
		s.ctrl.Resume()
		s.state = s.ctrl.State()
	case "s":
		s.ctrl.Stop()
		s.state = s.ctrl.State()
	case "f":
		if t := s.currentTopic(); t != nil && !s.ctrl.Running(t.ID) {
			s.confirmRegen = true
		}
	}
	return s, nil
}

func (s *GenerateScreen) currentTopic() *store.Topic {
	if s.selected < 0 || s.selected >= len(s.topics) {
		return nil
	}
	return &s.topics[s.selected]
}

func (s *GenerateScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.LogError.Render(fmt.Sprintf("Failed to load topics: %v", s.loadErr)))
	}

	innerWidth := width - 6
	if innerWidth < 40 {
		innerWidth = 40
	}

	var b strings.Builder

	b.WriteString(s.renderToolbar(innerWidth))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Path %s", s.pathProgress.String()),
		float64(s.pathProgress.Percent())/100,
		true, innerWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if len(s.topics) == 0 {
		b.WriteString(theme.Hint.Render("This path has no topics."))
	}
	for i, topic := range s.topics {
		b.WriteString(s.renderTopic(i, topic, innerWidth))
		b.WriteString("\n")
	}

	if s.confirmRegen {
		if t := s.currentTopic(); t != nil {
			b.WriteString("\n")
			b.WriteString(theme.LogError.Render(fmt.Sprintf(
				"Delete all %s for %q and regenerate? (y/N)", artifactNoun(s.kind), t.Name)))
		}
	}
	if s.statusErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.LogError.Render("✗ " + s.statusErr.Error()))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

// renderToolbar shows the artifact-kind toggle and overall run state.
func (s *GenerateScreen) renderToolbar(width int) string {
	lessonTab := "Lessons"
	practiceTab := "Practice"
	if s.kind == store.ArtifactLesson {
		lessonTab = theme.Selected.Render("[" + lessonTab + "]")
		practiceTab = theme.Hint.Render(" " + practiceTab + " ")
	} else {
		lessonTab = theme.Hint.Render(" " + lessonTab + " ")
		practiceTab = theme.Selected.Render("[" + practiceTab + "]")
	}

	status := theme.Hint.Render("idle")
	switch {
	case s.state.Paused:
		status = theme.Paused.Render("⏸ paused")
	case len(s.state.RunningTopics) > 0 || s.state.AllRunning:
		status = theme.Running.Render(s.spin.View() + " generating")
	}

	left := lessonTab + " " + practiceTab
	gap := width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + status
}

func (s *GenerateScreen) renderTopic(i int, topic store.Topic, width int) string {
	p := s.byTopic[topic.ID]
	running := s.contains(s.state.RunningTopics, topic.ID)

	cursor := "  "
	nameStyle := theme.Unselected
	if i == s.selected {
		cursor = theme.Selected.Render("▸ ")
		nameStyle = theme.Selected
	}

	name := topic.Name
	if topic.Icon != "" {
		name = topic.Icon + " " + name
	}

	marker := "  "
	switch {
	case running && s.state.Paused:
		marker = theme.Paused.Render("⏸ ")
	case running:
		marker = s.spin.View() + " "
	case p.Complete():
		marker = theme.LogOK.Render("✓ ")
	}

	barWidth := width - 28
	if barWidth < 12 {
		barWidth = 12
	}
	bar := components.NewProgressBar("", float64(p.Percent())/100, false, barWidth)

	line := fmt.Sprintf("%s%s%s  %s %s",
		cursor, marker, nameStyle.Render(name), bar.View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.String()))

	if s.expanded[topic.ID] {
		for _, sub := range s.checklists[topic.ID] {
			mark := theme.Hint.Render("○")
			if sub.done {
				mark = theme.LogOK.Render("✓")
			}
			line += fmt.Sprintf("\n      %s %s", mark, theme.Hint.Render(sub.name))
		}
	}

	snap := s.logs[topic.ID]
	if (s.expanded[topic.ID] || running) && len(snap.Entries) > 0 {
		line += "\n" + s.renderLog(snap, width)
	}
	return line
}

// renderLog shows the tail of a topic's log, color-coded by outcome.
func (s *GenerateScreen) renderLog(snap ledger.Snapshot, width int) string {
	entries := snap.Entries
	if len(entries) > maxLogLines {
		entries = entries[len(entries)-maxLogLines:]
	}

	var lines []string
	for _, e := range entries {
		style := theme.LogInfo
		switch e.Kind {
		case ledger.KindOK:
			style = theme.LogOK
		case ledger.KindSkip:
			style = theme.LogSkip
		case ledger.KindError:
			style = theme.LogError
		case ledger.KindDone:
			style = theme.LogDone
		}
		msg := e.Message
		if lipgloss.Width(msg) > width-8 {
			msg = truncate(msg, width-8)
		}
		lines = append(lines, "      "+style.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func (s *GenerateScreen) contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func (s *GenerateScreen) Title() string {
	return s.path.Name
}

func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	if s.confirmRegen {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "G", Description: "Generate"},
		{Key: "A", Description: "All"},
		{Key: "P/R", Description: "Pause/Resume"},
		{Key: "S", Description: "Stop"},
		{Key: "F", Description: "Regenerate"},
		{Key: "Tab", Description: "Kind"},
		{Key: "Enter", Description: "Log"},
		{Key: "Esc", Description: "Back"},
	}
}

func artifactNoun(kind store.ArtifactKind) string {
	if kind == store.ArtifactPractice {
		return "practice questions"
	}
	return "lessons"
}

func truncate(s string, max int) string {
	if max <= 1 {
		return "…"
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
