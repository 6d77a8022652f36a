// Package canvas provides a retained drawing surface for the simulation.
//
// The game draws into a Surface the way a browser script draws into a
// canvas element: commands accumulate until the next Clear, so whatever
// was drawn last (including the winner banner) stays visible after the
// loop stops. Front ends read the display list and present it.
package canvas

import (
	"sync"

	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
)

// Sprite is one entity draw command.
type Sprite struct {
	Type rules.Type
	X, Y float32
}

// Surface is a retained display list plus a stats line.
// It is safe for one writer and concurrent readers.
type Surface struct {
	mu sync.RWMutex

	width, height int
	sprites       []Sprite
	banner        string

	stats    systems.Counts
	hasStats bool
	version  uint64
}

// NewSurface creates an empty surface with the given arena dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size returns the arena dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Clear empties the display list, including any banner.
func (s *Surface) Clear() {
	s.mu.Lock()
	s.sprites = s.sprites[:0]
	s.banner = ""
	s.version++
	s.mu.Unlock()
}

// DrawEntity records an entity at (x, y).
func (s *Surface) DrawEntity(t rules.Type, x, y float32) {
	s.mu.Lock()
	s.sprites = append(s.sprites, Sprite{Type: t, X: x, Y: y})
	s.version++
	s.mu.Unlock()
}

// DrawBanner overlays centred text until the next Clear.
func (s *Surface) DrawBanner(text string) {
	s.mu.Lock()
	s.banner = text
	s.version++
	s.mu.Unlock()
}

// ShowStats replaces the stats line.
func (s *Surface) ShowStats(c systems.Counts) {
	s.mu.Lock()
	s.stats = c
	s.hasStats = true
	s.version++
	s.mu.Unlock()
}

// ClearStats blanks the stats line.
func (s *Surface) ClearStats() {
	s.mu.Lock()
	s.stats = systems.Counts{}
	s.hasStats = false
	s.version++
	s.mu.Unlock()
}

// Sprites returns a copy of the current display list in draw order.
func (s *Surface) Sprites() []Sprite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Sprite, len(s.sprites))
	copy(out, s.sprites)
	return out
}

// Banner returns the banner text, empty if none.
func (s *Surface) Banner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.banner
}

// Stats returns the displayed counts. ok is false when the stats line is blank.
func (s *Surface) Stats() (c systems.Counts, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.hasStats
}

// StatsText returns the stats line as shown to the user.
func (s *Surface) StatsText() string {
	c, ok := s.Stats()
	if !ok {
		return ""
	}
	return c.String()
}

// Version increases on every mutation. terminal.Refresh compares it to skip redraws.
func (s *Surface) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
