package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/telemetry"
)

// Chart draws one line per type from a sampled population series.
type Chart struct {
	x, y, width, height int32
	colors              [rules.NumTypes]rl.Color
}

// NewChart creates a chart occupying the given screen rectangle.
func NewChart(x, y, width, height int32) *Chart {
	c := &Chart{x: x, y: y, width: width, height: height}
	for _, t := range rules.All {
		r, g, b := t.Color()
		c.colors[t] = rl.NewColor(r, g, b, 255)
	}
	return c
}

// Draw renders the axes, legend and series.
func (c *Chart) Draw(series *telemetry.Series) {
	const legendHeight = 18
	plotY := c.y + legendHeight
	plotH := c.height - legendHeight - 14

	rl.DrawRectangle(c.x, c.y, c.width, c.height, rl.Color{R: 20, G: 25, B: 30, A: 240})
	rl.DrawRectangleLines(c.x, c.y, c.width, c.height, rl.Color{R: 60, G: 70, B: 80, A: 255})

	// Legend
	lx := c.x + 8
	for _, t := range rules.All {
		rl.DrawRectangle(lx, c.y+5, 10, 10, c.colors[t])
		rl.DrawText(t.String(), lx+14, c.y+4, 12, rl.LightGray)
		lx += 14 + rl.MeasureText(t.String(), 12) + 16
	}

	n := series.Len()
	if n == 0 {
		return
	}

	peak := series.Peak()
	if peak == 0 {
		peak = 1
	}
	rl.DrawText(fmt.Sprintf("%d", peak), c.x+4, plotY, 10, rl.Gray)

	labels := series.Labels()
	rl.DrawText(fmt.Sprintf("frame %d", labels[n-1]), c.x+c.width-80, c.y+c.height-12, 10, rl.Gray)

	point := func(i, v int) (int32, int32) {
		px := c.x
		if n > 1 {
			px += int32(float32(i) / float32(n-1) * float32(c.width-1))
		}
		py := plotY + plotH - int32(float32(v)/float32(peak)*float32(plotH))
		return px, py
	}

	for _, t := range rules.All {
		data := series.Data(t)
		if n == 1 {
			px, py := point(0, data[0])
			rl.DrawCircle(px, py, 2, c.colors[t])
			continue
		}
		for i := 1; i < n; i++ {
			x0, y0 := point(i-1, data[i-1])
			x1, y1 := point(i, data[i])
			rl.DrawLine(x0, y0, x1, y1, c.colors[t])
		}
	}
}
