package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayChart      OverlayID = "chart"
	OverlayGlyphs     OverlayID = "glyphs"
	OverlayPopulation OverlayID = "population"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID // Unique identifier
	Name     string    // Display name
	Key      int32     // Keyboard key to toggle (0 = no key)
	KeyLabel string    // Key label for display (e.g., "C")
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays, all enabled.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.Register(OverlayDescriptor{ID: OverlayChart, Name: "Chart", Key: rl.KeyC, KeyLabel: "C"})
	reg.Register(OverlayDescriptor{ID: OverlayGlyphs, Name: "Labels", Key: rl.KeyL, KeyLabel: "L"})
	reg.Register(OverlayDescriptor{ID: OverlayPopulation, Name: "Population", Key: rl.KeyP, KeyLabel: "P"})
	for _, d := range reg.descriptors {
		reg.enabled[d.ID] = true
	}
	return reg
}

// Register adds an overlay, disabled.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, exists := r.byID[desc.ID]; exists {
		return
	}
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// DrawKeyHints draws one "[K] Name" line per overlay, dimmed when disabled.
func (r *OverlayRegistry) DrawKeyHints(x, y int32) {
	theme := DefaultTheme()
	for _, desc := range r.descriptors {
		color := rl.Color{R: 100, G: 100, B: 100, A: 255}
		if r.enabled[desc.ID] {
			color = theme.LabelColor
		}
		rl.DrawText("["+desc.KeyLabel+"] "+desc.Name, x, y, theme.FontSize, color)
		y += theme.LineHeight
	}
}
