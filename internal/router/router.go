// Package router drives navigation as a stack of screens: pushing
// drills in, popping backs out, and the root screen can never be
// popped.
package router

import (
	"github.com/mathsinbites/bitesmith/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to drill into a new screen.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to back out of the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the current screen in place,
// without growing the stack.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router holds the screen stack. The top of the stack is what the
// user sees.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push puts s on top and starts it.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop backs out of the top screen. The root screen stays put.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s and starts it.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return s.Init()
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages itself and forwards everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
