package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

func (b binding) activeIn(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps key sequences to commands. Sequences use
// spacemacs-style notation: "SPC g e" is space, then g, then e; single keys
// are written as Bubble Tea reports them ("q", "ctrl+c").
type KeybindRegistry struct {
	bindings map[string]binding
	submenus map[string]string // first key after SPC -> label, e.g. "g" -> "Ir para"
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		submenus: make(map[string]string),
	}
}

// BindWithDesc registers seq for every mode.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq for the given modes only.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// BindSubmenu labels a key under SPC that only leads to more keys.
func (r *KeybindRegistry) BindSubmenu(k, label string) {
	r.submenus[k] = label
}

// LookupForMode returns the command bound to seq if it is active in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.activeIn(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer sequence starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns, for every key that may follow currentSeq ("" means
// SPC) in mode, its description. Keys opening a submenu show its label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.activeIn(mode) || !strings.HasPrefix(seq, prefix) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		switch {
		case r.HasPrefix(prefix + next):
			if label, ok := r.submenus[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq rewrites space in any spelling to "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	if seq == " " {
		return "SPC"
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks the leader state and resolves keys against a registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // sequence typed so far, starting with "SPC"
}

// NewKeyHandler creates a handler with space as the leader key.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle resolves msg in mode. A consumed key must not reach the screens.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	part := seqPart(msg.String())

	switch {
	case part == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil

	case part == "SPC" && !h.LeaderWaiting:
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil

	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, part)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupForMode(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.LookupForMode(part, mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// seqPart converts a tea key string to registry notation.
func seqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// leaderKeyMap exposes the pending leader hints as a help.KeyMap.
type leaderKeyMap struct {
	handler *KeyHandler
	mode    AppMode
	cancel  string
}

var _ help.KeyMap = leaderKeyMap{}

// ShortHelp returns one binding per next key, sorted, then esc.
func (km leaderKeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(strings.Join(km.handler.Buffer, " "), km.mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", km.cancel)))
}

// FullHelp implements help.KeyMap.
func (km leaderKeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
