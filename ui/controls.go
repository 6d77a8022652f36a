package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rpsls/game"
	"github.com/pthm-cable/rpsls/rules"
)

// Slider limits.
const (
	MaxCount = 100
	MinSpeed = 0.5
	MaxSpeed = 10
)

// Command is a button press from the controls panel.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandReset
)

// ControlsPanel renders the count and speed sliders with Start and Reset buttons.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	minSpeed float32
	maxSpeed float32
	setup    game.Setup
}

// NewControlsPanel creates a controls panel seeded with initial values.
// The speed slider stops at the lower of MaxSpeed and bounceMargin.
func NewControlsPanel(x, y, width int32, initial game.Setup, bounceMargin float32) *ControlsPanel {
	c := &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		maxSpeed: min(MaxSpeed, bounceMargin),
	}
	c.minSpeed = min(MinSpeed, c.maxSpeed)
	c.SetSetup(initial)
	return c
}

// Setup returns the values currently selected.
func (c *ControlsPanel) Setup() game.Setup {
	return c.setup
}

// SetSetup replaces the selected values, clamped to slider limits.
func (c *ControlsPanel) SetSetup(s game.Setup) {
	for _, t := range rules.All {
		s.Counts[t] = min(max(s.Counts[t], 0), MaxCount)
	}
	s.Speed = float32(math.Min(math.Max(float64(s.Speed), float64(c.minSpeed)), float64(c.maxSpeed)))
	c.setup = s
}

// Draw renders the panel and returns the button pressed this frame, if any.
func (c *ControlsPanel) Draw() Command {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	rowHeight := lineHeight + 20

	panelHeight := padding*3 + lineHeight + rowHeight*int32(rules.NumTypes+1) + 40
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := float32(c.x + padding)
	y := c.y + padding
	sliderWidth := float32(c.width - padding*2 - 40)

	y = r.DrawSectionHeader(c.x+padding, y, "Initial population")

	for _, t := range rules.All {
		rl.DrawText(t.String(), int32(x), y, r.Theme.FontSize, TypeColor(t.Color()))
		y += lineHeight
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 14},
			"", "",
			float32(c.setup.Counts[t]), 0, MaxCount,
		)
		c.setup.Counts[t] = int(math.Round(float64(v)))
		rl.DrawText(fmt.Sprintf("%d", c.setup.Counts[t]), int32(x+sliderWidth+6), y, r.Theme.FontSize, r.Theme.ValueColor)
		y += rowHeight - lineHeight
	}

	rl.DrawText("speed", int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	c.setup.Speed = gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 14},
		"", "",
		c.setup.Speed, c.minSpeed, c.maxSpeed,
	)
	rl.DrawText(fmt.Sprintf("%.1f", c.setup.Speed), int32(x+sliderWidth+6), y, r.Theme.FontSize, r.Theme.ValueColor)
	y += rowHeight - lineHeight + padding

	buttonWidth := (float32(c.width) - float32(padding)*3) / 2
	cmd := CommandNone
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: buttonWidth, Height: 30}, "Start") {
		cmd = CommandStart
	}
	if gui.Button(rl.Rectangle{X: x + buttonWidth + float32(padding), Y: float32(y), Width: buttonWidth, Height: 30}, "Reset") {
		cmd = CommandReset
	}

	return cmd
}
