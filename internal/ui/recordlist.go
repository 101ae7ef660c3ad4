package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/crud"
	"esportivai/internal/ui/textutil"
)

// row adapts one record to list.Item.
type row struct {
	title string
	desc  string
}

func (r row) FilterValue() string { return r.title }
func (r row) Title() string       { return r.title }
func (r row) Description() string { return r.desc }

// recordList shows a controller's Items in a bubbles list.
type recordList[T any] struct {
	list   list.Model
	ctrl   *crud.Controller[T]
	render func(T) (title, desc string)
}

func newRecordList[T any](title string, ctrl *crud.Controller[T], render func(T) (string, string)) recordList[T] {
	l := list.New(nil, NewCompactListDelegate(true), 80, 10)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	r := recordList[T]{list: l, ctrl: ctrl, render: render}
	r.sync()
	return r
}

// sync rebuilds the rows from ctrl.Items, keeping the cursor in range.
func (r *recordList[T]) sync() {
	width := r.list.Width()
	if width <= 0 {
		width = 80
	}
	items := make([]list.Item, len(r.ctrl.Items))
	for i, it := range r.ctrl.Items {
		title, desc := r.render(it)
		items[i] = row{
			title: textutil.Truncate(title, width-4),
			desc:  textutil.Truncate(desc, width-4),
		}
	}
	idx := r.list.Index()
	r.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		r.list.Select(idx)
	}
}

// selected returns the record under the cursor.
func (r *recordList[T]) selected() (T, bool) {
	var zero T
	idx := r.list.Index()
	if idx < 0 || idx >= len(r.ctrl.Items) {
		return zero, false
	}
	return r.ctrl.Items[idx], true
}

func (r *recordList[T]) setSize(w, h int) {
	r.list.SetSize(w, h)
	r.sync()
}

func (r *recordList[T]) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	return cmd
}

func (r *recordList[T]) view(empty string) string {
	if len(r.ctrl.Items) == 0 {
		return Styles.Title.Render(r.list.Title) + "\n" + Styles.Empty.Render(empty)
	}
	return r.list.View()
}
