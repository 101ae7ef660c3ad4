package ui

// ViewStack holds the screen navigation history; the top screen is shown.
type ViewStack struct {
	Stack []Screen
}

// Push adds a screen to the top of the stack.
func (s *ViewStack) Push(v Screen) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() Screen {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

// Peek returns the top screen without removing it.
func (s *ViewStack) Peek() Screen {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Len returns the number of screens in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}

// Reset replaces the whole history with v.
func (s *ViewStack) Reset(v Screen) {
	s.Stack = []Screen{v}
}

// PopTo pops screens until one with mode is on top. It returns false and
// leaves the stack untouched when no such screen exists.
func (s *ViewStack) PopTo(mode AppMode) bool {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i].Mode() == mode {
			s.Stack = s.Stack[:i+1]
			return true
		}
	}
	return false
}

// replaceTop swaps the top screen for v (after an Update returned a new value).
func (s *ViewStack) replaceTop(v View) {
	if len(s.Stack) == 0 {
		return
	}
	if sc, ok := v.(Screen); ok {
		s.Stack[len(s.Stack)-1] = sc
	}
}
