package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rpsls/canvas"
	"github.com/pthm-cable/rpsls/config"
	"github.com/pthm-cable/rpsls/game"
	"github.com/pthm-cable/rpsls/renderer"
	"github.com/pthm-cable/rpsls/telemetry"
	"github.com/pthm-cable/rpsls/terminal"
	"github.com/pthm-cable/rpsls/ui"
)

// Screen layout for the windowed front end.
const (
	arenaX     = 10
	arenaY     = 40
	panelWidth = 290
	chartH     = 190
)

func main() {
	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env supplies flag defaults; flags still win
	if err := config.LoadEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	envSeed, err := config.EnvInt64(config.EnvSeed, 0)
	if err != nil {
		slog.Error("invalid environment", "error", err)
		os.Exit(1)
	}

	// CLI flags
	configPath := flag.String("config", config.EnvString(config.EnvConfigPath, ""), "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	term := flag.Bool("terminal", false, "Run in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output samples and run summary via slog")
	outputDir := flag.String("output-dir", config.EnvString(config.EnvOutputDir, ""), "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", envSeed, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	outputManager, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer outputManager.Close()
	if err := outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	surface := canvas.NewSurface(cfg.Arena.Width, cfg.Arena.Height)
	sched := game.NewFrameScheduler()

	// Build game options
	opts := game.Options{
		Seed:      rngSeed,
		Scheduler: sched,
		Renderer:  surface,
		Stats:     surface,
		Output:    outputManager,
		LogStats:  *logStats,
	}

	switch {
	case *headless:
		// Headless runs are reproducible from the seed alone
		opts.Clock = game.NewTickClock(cfg.Derived.TickDuration)
		opts.Renderer, opts.Stats = nil, nil
		g := game.NewGame(opts)

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		g.Start(game.DefaultSetup(cfg))
		if !game.RunUntilEnded(g, sched, *maxTicks) {
			slog.Info("max ticks reached", "frame", g.Frame(), "counts", g.Counts().Label())
		}

	case *term:
		if err := runTerminal(cfg, opts, sched, surface); err != nil {
			slog.Error("terminal failed", "error", err)
			os.Exit(1)
		}

	default:
		runWindow(cfg, opts, sched, surface, *maxTicks)
	}
}

func runTerminal(cfg *config.Config, opts game.Options, sched *game.FrameScheduler, surface *canvas.Surface) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// slog to stdout would corrupt the screen
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.NewGame(opts)
	t := terminal.New(screen, surface, g, sched, game.DefaultSetup(cfg))

	interval := time.Second / time.Duration(max(cfg.Screen.TargetFPS, 1))
	if err := t.Run(ctx, interval); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func runWindow(cfg *config.Config, opts game.Options, sched *game.FrameScheduler, surface *canvas.Surface, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Rock Paper Scissors Lizard Spock")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(opts)

	arenaW, arenaH := int32(cfg.Arena.Width), int32(cfg.Arena.Height)
	panelX := arenaX + arenaW + 10

	arena := renderer.NewArenaView(surface, arenaX, arenaY, cfg.Derived.Radius32)
	chart := renderer.NewChart(arenaX, arenaY+arenaH+10, arenaW, chartH)
	controls := ui.NewControlsPanel(panelX, arenaY, panelWidth, game.DefaultSetup(cfg), cfg.Derived.Margin32)
	hud := ui.NewHUD(panelX, arenaY+430, panelWidth)
	overlays := ui.NewOverlayRegistry()

	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			overlays.HandleKeyPress(key)
		}

		sched.RunFrame()
		g.Perf().RecordFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 10, G: 12, B: 16, A: 255})

		arena.Draw(overlays.IsEnabled(ui.OverlayGlyphs))
		if overlays.IsEnabled(ui.OverlayChart) {
			chart.Draw(g.Series())
		}

		counts, shown := surface.Stats()
		data := ui.HUDData{
			Title:  "RPSLS",
			State:  g.State().String(),
			Run:    g.Run(),
			Frame:  g.Frame(),
			FPS:    rl.GetFPS(),
			Counts: counts,
			Shown:  shown && overlays.IsEnabled(ui.OverlayPopulation),
		}
		if g.State() == game.Ended {
			summary := g.Summary()
			data.Summary = &summary
		}
		hudBottom := hud.Draw(data)
		overlays.DrawKeyHints(panelX+10, hudBottom+10)

		switch controls.Draw() {
		case ui.CommandStart:
			g.Start(controls.Setup())
		case ui.CommandReset:
			g.Reset()
		}

		rl.EndDrawing()

		if maxTicks > 0 && g.Frame() >= maxTicks {
			break
		}
	}
}
