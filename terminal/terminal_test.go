package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/rpsls/canvas"
	"github.com/pthm-cable/rpsls/config"
	"github.com/pthm-cable/rpsls/game"
	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
)

func newTestTerminal(t *testing.T, setup game.Setup) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	cfg, err := config.LoadBytes(nil)
	if err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 27)

	surface := canvas.NewSurface(cfg.Arena.Width, cfg.Arena.Height)
	sched := game.NewFrameScheduler()
	g := game.NewGame(game.Options{
		Config:    cfg,
		Seed:      1,
		Clock:     game.NewTickClock(cfg.Derived.TickDuration),
		Scheduler: sched,
		Renderer:  surface,
		Stats:     surface,
	})
	return New(screen, surface, g, sched, setup), screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestStartKeyDrawsEntities(t *testing.T) {
	term, screen := newTestTerminal(t, game.Setup{Counts: systems.Counts{4, 4, 4, 4, 4}, Speed: 2})

	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)) {
		t.Fatal("'s' should not quit")
	}
	term.Draw()

	if term.game.State() != game.Running {
		t.Fatalf("state = %s, want running", term.game.State())
	}

	glyphs := 0
	_, h := screen.Size()
	for y := headerRows; y < h; y++ {
		for _, r := range rowText(screen, y) {
			for _, typ := range rules.All {
				if r == typ.Glyph() {
					glyphs++
				}
			}
		}
	}
	// Entities can share a cell, so only require some to be visible
	if glyphs == 0 {
		t.Error("no entity glyphs drawn")
	}

	stats := rowText(screen, 1)
	for _, typ := range rules.All {
		if !strings.Contains(stats, typ.String()+" ") {
			t.Errorf("stats line %q missing %s", stats, typ)
		}
	}
}

func TestWinnerBannerDrawn(t *testing.T) {
	term, screen := newTestTerminal(t, game.Setup{Counts: systems.Counts{rules.Paper: 3}, Speed: 1})

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	term.Draw()

	_, h := screen.Size()
	row := headerRows + (h-headerRows)/2
	if !strings.Contains(rowText(screen, row), "PAPER WINS!") {
		t.Errorf("banner row = %q", rowText(screen, row))
	}
}

func TestResetKeyClearsArena(t *testing.T) {
	term, screen := newTestTerminal(t, game.Setup{Counts: systems.Counts{2, 2, 2, 2, 2}, Speed: 2})

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	term.Draw()

	if term.game.State() != game.Idle {
		t.Errorf("state = %s, want idle", term.game.State())
	}
	if strings.TrimSpace(rowText(screen, 1)) != "" {
		t.Errorf("stats line not cleared: %q", rowText(screen, 1))
	}
	if n := len(term.surface.Sprites()); n != 0 {
		t.Errorf("%d sprites after reset", n)
	}
}

func TestQuitKeys(t *testing.T) {
	term, _ := newTestTerminal(t, game.Setup{})

	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if term.HandleEvent(tt.ev) {
				t.Errorf("%s should quit", tt.name)
			}
		})
	}
}

func TestCellMapping(t *testing.T) {
	term, _ := newTestTerminal(t, game.Setup{})

	col, row := term.cell(0, 0)
	if col != 0 || row != headerRows {
		t.Errorf("origin maps to (%d, %d)", col, row)
	}
	// 800x500 arena onto 80x25 arena rows
	col, row = term.cell(400, 250)
	if col != 40 || row != headerRows+12 {
		t.Errorf("centre maps to (%d, %d), want (40, %d)", col, row, headerRows+12)
	}
	col, row = term.cell(10000, 10000)
	if col != 79 || row != 26 {
		t.Errorf("out of range maps to (%d, %d), want clamped (79, 26)", col, row)
	}
}

func TestRefreshSkipsUnchangedSurface(t *testing.T) {
	term, _ := newTestTerminal(t, game.Setup{Counts: systems.Counts{rules.Paper: 3}, Speed: 1})

	if !term.Refresh() {
		t.Fatal("first refresh should draw")
	}
	if term.Refresh() {
		t.Error("refresh with nothing changed should not draw")
	}

	// The run ends on its first tick and nothing is scheduled after it
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if !term.Refresh() {
		t.Error("refresh after start should draw")
	}
	term.sched.RunFrame()
	if term.Refresh() {
		t.Error("ended run should not redraw")
	}

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if !term.Refresh() {
		t.Error("refresh after reset should draw")
	}
}

func TestForwardEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	// Nobody reads events, so the first forwarded event blocks
	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		forwardEvents(screen, events, done)
		close(finished)
	}()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardEvents still blocked after done was closed")
	}
}
