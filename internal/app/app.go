package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/router"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/screen"
	"github.com/mathsinbites/bitesmith/internal/screens/paths"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/mathsinbites/bitesmith/internal/ui/layout"
)

// Options carries the services the console runs on.
type Options struct {
	Catalog    store.CatalogRepo
	Controller *runner.Controller
	Aggregator *completion.Aggregator
	Ledger     *ledger.Ledger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *runner.Controller
	width  int
	height int
}

// newAppModel creates a new AppModel with the path picker on top.
func newAppModel(opts Options) AppModel {
	picker := paths.New(opts.Catalog, opts.Controller, opts.Aggregator, opts.Ledger)
	return AppModel{
		router: router.New(picker),
		ctrl:   opts.Controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.runStatus(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// runStatus summarizes the controller state for the header.
func (m AppModel) runStatus() string {
	if m.ctrl == nil {
		return ""
	}
	st := m.ctrl.State()
	switch {
	case st.Paused:
		return "⏸ paused"
	case st.AllRunning:
		return "▶ generating all"
	case len(st.RunningTopics) == 1:
		return "▶ generating"
	case len(st.RunningTopics) > 1:
		return fmt.Sprintf("▶ generating %d topics", len(st.RunningTopics))
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
