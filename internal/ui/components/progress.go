package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathsinbites/bitesmith/internal/ui/theme"
)

// ProgressBar is a horizontal completion bar with an optional label on
// the left and percentage on the right.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. The track spans whatever width the label and
// percentage leave over, never less than four cells.
func (p ProgressBar) View() string {
	var left, right string
	if p.Label != "" {
		left = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		right = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	track := p.Width - lipgloss.Width(left) - 6*boolToInt(p.ShowPercent)
	if track < 4 {
		track = 4
	}
	filled := min(max(int(float64(track)*p.Percent), 0), track)

	return left +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		right
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
