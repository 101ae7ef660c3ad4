package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// RenderKeybindHelp draws the hint bar shown while a leader sequence is
// pending: the typed prefix, then every key that can follow it in mode.
// cancel describes esc.
func RenderKeybindHelp(h *KeyHandler, mode AppMode, cancel string) string {
	if h == nil {
		return ""
	}
	bindings := leaderKeyMap{handler: h, mode: mode, cancel: cancel}.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	hm := help.New()
	hm.ShortSeparator = "  "
	hm.Styles.ShortKey = Styles.Key
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint

	typed := "SPC"
	if len(h.Buffer) > 0 {
		typed = strings.Join(h.Buffer, " ")
	}
	return Styles.HelpBox.Render(Styles.Hint.Render(typed+" ›") + " " + hm.ShortHelpView(bindings))
}
