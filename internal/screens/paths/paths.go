// Package paths shows the learning-path picker, the entry screen of
// the console. Selecting a path opens its generation dashboard.
package paths

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/router"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/screen"
	genscreen "github.com/mathsinbites/bitesmith/internal/screens/generate"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/mathsinbites/bitesmith/internal/ui/components"
	"github.com/mathsinbites/bitesmith/internal/ui/theme"
)

// PathsScreen lists the available learning paths.
type PathsScreen struct {
	menu    components.Menu
	loadErr error
	empty   bool
}

var _ screen.Screen = (*PathsScreen)(nil)

// New creates the picker. The catalog is read once up front; paths
// change rarely enough that a fresh screen push is the refresh.
func New(catalog store.CatalogRepo, ctrl *runner.Controller, agg *completion.Aggregator, led *ledger.Ledger) *PathsScreen {
	paths, err := catalog.ListLearningPaths(context.Background())
	if err != nil {
		return &PathsScreen{loadErr: err}
	}
	if len(paths) == 0 {
		return &PathsScreen{empty: true}
	}

	items := make([]components.MenuItem, 0, len(paths))
	for _, p := range paths {
		p := p
		label := p.Name
		if p.Icon != "" {
			label = p.Icon + "  " + label
		}
		desc := p.Grade
		if !p.Active {
			desc = "inactive"
		}
		items = append(items, components.MenuItem{
			Label:       label,
			Description: desc,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: genscreen.New(catalog, ctrl, agg, led, p),
					}
				}
			},
		})
	}

	return &PathsScreen{menu: components.NewMenu(items)}
}

func (s *PathsScreen) Init() tea.Cmd {
	return nil
}

func (s *PathsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PathsScreen) View(width, height int) string {
	var body string
	switch {
	case s.loadErr != nil:
		body = theme.LogError.Render(fmt.Sprintf("Failed to load learning paths: %v", s.loadErr))
	case s.empty:
		body = theme.Hint.Render("No learning paths yet. Import a curriculum with `bitesmith import`.")
	default:
		body = theme.Subtitle.Render("Choose a learning path") + "\n\n" + s.menu.View()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *PathsScreen) Title() string {
	return "Learning Paths"
}
