package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette of the EsportiVai brand: a blue primary with neutral greys.
// Colours adapt to light and dark terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#007bff", Dark: "#4da3ff"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#343a40", Dark: "#f8f9fa"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6c757d", Dark: "#adb5bd"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#dddddd", Dark: "#6c757d"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#dc3545", Dark: "#ff6b6b"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#28a745", Dark: "#51cf66"}
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func box(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
}

// Styles are shared by every screen and modal.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Section      lipgloss.Style // marker of the focused dashboard list

	Box       lipgloss.Style // form modal
	BoxDanger lipgloss.Style // delete confirmation
	HelpBox   lipgloss.Style // leader hints

	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Key      lipgloss.Style
	Empty    lipgloss.Style
	Label    lipgloss.Style

	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
	Footer      lipgloss.Style
}{
	Title:        fg(ColorPrimary).Bold(true),
	TitleWarning: fg(ColorDanger).Bold(true),
	Section:      fg(ColorPrimary).Bold(true),

	Box:       box(ColorPrimary),
	BoxDanger: box(ColorDanger),
	HelpBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1).MarginTop(1),

	Selected: fg(ColorPrimary).Bold(true),
	Normal:   fg(ColorText),
	Muted:    fg(ColorMuted),
	Hint:     fg(ColorMuted),
	Key:      fg(ColorPrimary).Bold(true),
	Empty:    fg(ColorMuted).Italic(true),
	Label:    fg(ColorText).Bold(true),

	StatusOK:    fg(ColorSuccess),
	StatusError: fg(ColorDanger).Bold(true),
	Footer:      fg(ColorMuted).Italic(true),
}

// NewCompactListDelegate returns a list delegate without row spacing.
// withDesc adds the detail line under each title.
func NewCompactListDelegate(withDesc bool) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = withDesc
	d.Styles.SelectedTitle = Styles.Selected.Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Bold(false).Foreground(ColorMuted)
	d.Styles.NormalTitle = Styles.Normal.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}
