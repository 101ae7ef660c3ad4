package ui

// FocusManager tracks and rotates focus across named targets: form fields
// in a modal or the lists on the dashboard.
type FocusManager struct {
	Current  string   // ID of the focused target
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first id in order.
func NewFocusManager(order ...string) FocusManager {
	f := FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next target in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous target in order, wrapping around.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.Index()
	next := (idx + step) % len(f.Order)
	if next < 0 {
		next += len(f.Order)
	}
	if idx < 0 && step < 0 {
		next = len(f.Order) - 1
	}
	f.set(f.Order[next])
	return f.Current
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
