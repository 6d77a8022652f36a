// Package terminal presents the simulation in a text terminal using tcell.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/rpsls/canvas"
	"github.com/pthm-cable/rpsls/game"
	"github.com/pthm-cable/rpsls/rules"
)

// Rows reserved above the arena for the status and stats lines.
const headerRows = 2

// Terminal maps the arena onto the screen's cell grid and turns keys into commands.
type Terminal struct {
	screen  tcell.Screen
	surface *canvas.Surface
	game    *game.Game
	sched   *game.FrameScheduler
	setup   game.Setup

	styles [rules.NumTypes]tcell.Style
	status tcell.Style
	banner tcell.Style

	// What the screen last showed, for Refresh
	drawn        bool
	drawnVersion uint64
	drawnState   game.State
}

// New creates a terminal front end. The screen must already be initialised.
func New(screen tcell.Screen, surface *canvas.Surface, g *game.Game, sched *game.FrameScheduler, setup game.Setup) *Terminal {
	t := &Terminal{
		screen:  screen,
		surface: surface,
		game:    g,
		sched:   sched,
		setup:   setup,
		status:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
		banner:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}
	for _, typ := range rules.All {
		r, gr, b := typ.Color()
		t.styles[typ] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b))).Bold(true)
	}
	return t
}

// HandleEvent applies one input event. It returns false when the user quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			t.game.Start(t.setup)
		case 'r':
			t.game.Reset()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// cell converts arena coordinates to a screen cell below the header.
func (t *Terminal) cell(x, y float32) (col, row int) {
	sw, sh := t.screen.Size()
	aw, ah := t.surface.Size()
	rows := sh - headerRows
	if sw <= 0 || rows <= 0 || aw <= 0 || ah <= 0 {
		return -1, -1
	}

	col = int(x / float32(aw) * float32(sw))
	row = int(y / float32(ah) * float32(rows))
	col = min(max(col, 0), sw-1)
	row = min(max(row, 0), rows-1)
	return col, row + headerRows
}

// Refresh redraws only if the surface or the game state changed since the
// last Draw. It reports whether it drew.
func (t *Terminal) Refresh() bool {
	if t.drawn && t.surface.Version() == t.drawnVersion && t.game.State() == t.drawnState {
		return false
	}
	t.Draw()
	return true
}

// Draw paints the surface onto the screen.
func (t *Terminal) Draw() {
	t.drawn = true
	t.drawnVersion = t.surface.Version()
	t.drawnState = t.game.State()

	t.screen.Clear()
	sw, sh := t.screen.Size()

	t.drawText(0, 0, "rpsls  [s]tart [r]eset [q]uit  "+t.game.State().String(), t.status)
	if c, ok := t.surface.Stats(); ok {
		t.drawText(0, 1, c.Label(), t.status)
	}

	for _, s := range t.surface.Sprites() {
		col, row := t.cell(s.X, s.Y)
		if col < 0 {
			continue
		}
		t.screen.SetContent(col, row, s.Type.Glyph(), nil, t.styles[s.Type])
	}

	if text := t.surface.Banner(); text != "" {
		row := headerRows + (sh-headerRows)/2
		for x := 0; x < sw; x++ {
			t.screen.SetContent(x, row, ' ', nil, t.banner)
		}
		t.drawText((sw-len(text))/2, row, text, t.banner)
	}

	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run drives the game one frame per interval until ctx ends or the user quits.
func (t *Terminal) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(t.screen, eventChan, done)

	t.game.Start(t.setup)
	t.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !t.HandleEvent(ev) {
				return nil
			}
			t.Draw()

		case <-ticker.C:
			t.sched.RunFrame()
			t.game.Perf().RecordFrame()
			t.Refresh()
		}
	}
}

// forwardEvents copies screen events to events until the screen is
// finalised or done is closed.
func forwardEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
