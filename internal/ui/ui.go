// Package ui defines the minimal contracts shared by every component in the
// kit. Components render to plain strings; composition happens by joining
// rendered fragments, never by mutating shared state.
package ui

// Renderable is any component that can render itself to a string.
type Renderable interface {
	View() string
}
