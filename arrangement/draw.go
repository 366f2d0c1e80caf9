package arrangement

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 16

// WritePNG renders the arrangement for inspection: obstacles filled,
// arrangement edges stroked over them, intersection points as dots. Scale is
// pixels per unit, so the unit square comes out scale×scale plus padding.
func (a *Arrangement) WritePNG(path string, scale float64) error {
	width := int(scale) + drawPadding*2
	height := int(scale) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	for _, obstacle := range a.Obstacles {
		if len(obstacle.Vertices) == 0 {
			continue
		}
		c.MoveTo(obstacle.Vertices[0].X, obstacle.Vertices[0].Y)
		for _, v := range obstacle.Vertices[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0.5, 0, 0)
	c.Fill()

	c.SetLineWidth(2)
	edges := a.Graph.Edges()
	for edges.Next() {
		e := edges.Edge()
		p := a.Points[e.From().ID()]
		q := a.Points[e.To().ID()]
		c.DrawLine(p.X, p.Y, q.X, q.Y)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, p := range a.Points {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.SetRGB(1, 1, 0)
	c.Fill()

	return c.SavePNG(path)
}

// dbgDraw dumps the arrangement to the terminal. Debugging only.
func (a *Arrangement) dbgDraw(scale float64) {
	if err := a.WritePNG("/tmp/arrangement.png", scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/arrangement.png", os.Stdout)
}
