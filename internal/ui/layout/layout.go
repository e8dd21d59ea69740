// Package layout renders the chrome shared by every screen: the header
// bar, the key-hint footer and the frame that stacks them around the
// screen content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathsinbites/bitesmith/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small.\n\nNeed at least %d x %d,\ncurrently %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the header bar: brand and screen title on the
// left, run status (running / paused / idle) on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Bitesmith")
	left := brand + "  " + lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(status)

	// Borders eat two columns on each side.
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bar(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the key-hint footer bar.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer to fill the terminal,
// padding the content region to keep the footer pinned to the bottom.
func RenderFrame(header, content, footer string, width, height int) string {
	region := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if region < 0 {
		region = 0
	}
	body := lipgloss.NewStyle().
		Width(width).
		Height(region).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
