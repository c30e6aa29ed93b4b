// Package ui draws the viewer's parameter panel. Everything except this file
// requires the ebiten build tag.
package ui
