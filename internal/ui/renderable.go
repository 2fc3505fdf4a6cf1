// Package ui holds the contracts shared by terminal UI packages.
package ui

// Renderable is anything that can draw itself as a string.
type Renderable interface {
	View() string
}
