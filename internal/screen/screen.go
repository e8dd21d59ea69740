// Package screen defines the contract every TUI screen implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mathsinbites/bitesmith/internal/ui/layout"
)

// Screen is one full-terminal view managed by the router.
type Screen interface {
	// Init returns the screen's startup command.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content region between header and footer.
	View(width, height int) string

	// Title names the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
