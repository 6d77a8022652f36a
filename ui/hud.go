package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
	"github.com/pthm-cable/rpsls/telemetry"
)

// HUDData holds all the data needed to render the heads-up display.
type HUDData struct {
	Title  string
	State  string
	Run    int
	Frame  int
	FPS    int32
	Counts systems.Counts
	Shown  bool // false when the stats line has been cleared

	// Summary of the run that just ended, nil while one is in progress
	Summary *telemetry.Summary
}

// HUD renders the title line and the population panel.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a HUD whose population panel sits at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the HUD and returns the y coordinate below its last panel.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer

	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Run: %d | Frame: %d | FPS: %d | %s", data.Run, data.Frame, data.FPS, data.State),
		200, 14, 16, rl.LightGray,
	)

	padding := r.Theme.Padding
	panelHeight := padding*2 + r.Theme.LineHeight + (r.Theme.LineHeight+2)*int32(rules.NumTypes)
	r.DrawPanel(h.x, h.y, h.width, panelHeight)
	bottom := h.y + panelHeight

	y := r.DrawSectionHeader(h.x+padding, h.y+padding, "Population")
	if data.Shown {
		total := data.Counts.Total()
		for _, t := range rules.All {
			y = r.DrawCountBar(h.x+padding, y, t.String(), data.Counts[t], total, TypeColor(t.Color()), h.width-padding*2)
		}
	}

	if data.Summary != nil {
		bottom = h.drawSummary(bottom+6, data.Summary)
	}
	return bottom
}

func (h *HUD) drawSummary(top int32, s *telemetry.Summary) int32 {
	r := h.renderer
	padding := r.Theme.Padding
	panelHeight := padding*2 + r.Theme.LineHeight*4
	r.DrawPanel(h.x, top, h.width, panelHeight)

	winner := s.Winner
	if winner == "" {
		winner = "none"
	}
	y := r.DrawSectionHeader(h.x+padding, top+padding, fmt.Sprintf("Run %d summary", s.Run))
	y = r.DrawLabelValue(h.x+padding, y, "Winner", winner)
	y = r.DrawLabelValue(h.x+padding, y, "Frames", fmt.Sprintf("%d", s.Frames))
	fell := "-"
	if ts, ok := s.FirstExtinct(); ok {
		fell = fmt.Sprintf("%s @ %d", ts.Type, ts.ExtinctAt)
	}
	r.DrawLabelValue(h.x+padding, y, "Fell first", fell)
	return top + panelHeight
}
