package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/crud"
)

// inputCursorMode is the cursor mode of every text input.
var inputCursorMode = cursor.CursorBlink

// newInput returns a text input using inputCursorMode.
func newInput() textinput.Model {
	ti := textinput.New()
	_ = ti.Cursor.SetMode(inputCursorMode)
	return ti
}

// FormModal edits a crud form: one text input per field, Tab to move,
// Enter to save, Esc to cancel. Every keystroke is written through to the
// controller's form so validation sees exactly what is on screen. A blocked
// save moves focus to the first blank field.
type FormModal struct {
	Title  string
	Hint   string
	host   formHost
	fields []crud.Field
	inputs []textinput.Model
	index  map[string]int
	focus  FocusManager
}

// Ensure FormModal implements View.
var _ View = (*FormModal)(nil)

// NewFormModal builds inputs from host's form. label resolves field labels.
func NewFormModal(title, hint string, host formHost, label func(id string) string) *FormModal {
	form := host.Form()
	fields := form.Fields()
	m := &FormModal{
		Title:  title,
		Hint:   hint,
		host:   host,
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	order := make([]string, len(fields))
	for i, f := range fields {
		ti := newInput()
		ti.Prompt = ""
		ti.Placeholder = label(f.Label)
		ti.Width = 40
		ti.CharLimit = 120
		ti.SetValue(form.Get(f.Key))
		m.inputs[i] = ti
		m.index[f.Key] = i
		order[i] = f.Key
	}
	m.focus = NewFocusManager(order...)
	m.focus.OnChange = m.moveFocus
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m *FormModal) moveFocus(from, to string) {
	if i, ok := m.index[from]; ok {
		m.inputs[i].Blur()
	}
	if i, ok := m.index[to]; ok {
		m.inputs[i].Focus()
	}
}

// Focused returns the key of the focused field.
func (m *FormModal) Focused() string {
	return m.focus.Current
}

// Value returns the text currently in the input for key.
func (m *FormModal) Value(key string) string {
	if i, ok := m.index[key]; ok {
		return m.inputs[i].Value()
	}
	return ""
}

// Visible reports whether the owning controller still shows the form.
func (m *FormModal) Visible() bool {
	return m.host.Visible()
}

// Init implements View.
func (m *FormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *FormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.host.Cancel()
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "down":
			m.focus.Next()
			return m, nil
		case "shift+tab", "up":
			m.focus.Prev()
			return m, nil
		case "enter":
			cmd := m.host.Submit()
			if missing := m.host.Form().Missing(); cmd == nil && len(missing) > 0 {
				m.focus.SetFocus(missing[0].Key)
			}
			return m, cmd
		}
	}

	i := m.focus.Index()
	if i < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	m.host.Form().Set(m.fields[i].Key, m.inputs[i].Value())
	return m, cmd
}

// View implements View.
func (m *FormModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.Title) + "\n\n")
	for i, f := range m.fields {
		label := m.inputs[i].Placeholder
		if f.Key == m.focus.Current {
			b.WriteString(Styles.Selected.Render("› "+label) + "\n")
		} else {
			b.WriteString(Styles.Muted.Render("  "+label) + "\n")
		}
		b.WriteString("  " + m.inputs[i].View() + "\n")
	}
	if m.Hint != "" {
		b.WriteString("\n" + Styles.Hint.Render(m.Hint))
	}
	return Styles.Box.Render(b.String())
}
