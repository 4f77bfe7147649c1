package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal (bar picker, reset confirmation) drawn below the
// loadout screen. Dismiss closes it without sending a message.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey reports whether key closes o.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack holds the open modals. Only the top one sees keys, and mouse
// input is dropped while any is open.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o above the current modals.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the top modal.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top modal.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len is the number of open modals.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the top modal, keeping the View it returns.
// Reports false when no modal is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	var cmd tea.Cmd
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}
