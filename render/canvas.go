package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vape/vmath"
)

// Canvas presents a frame of draw commands
type Canvas interface {
	Present(projection vmath.Mat3, list *DrawList) error
}

// circleAlpha is the rim opacity of filled circles
const circleAlpha = 0.45

// TerminalCanvas rasterizes draw commands into terminal cells
// Points map through the projection to NDC, then onto the screen grid
type TerminalCanvas struct {
	screen tcell.Screen
	buffer *Buffer
}

func NewTerminalCanvas(screen tcell.Screen) *TerminalCanvas {
	w, h := screen.Size()
	return &TerminalCanvas{
		screen: screen,
		buffer: NewBuffer(w, h),
	}
}

// Buffer exposes the last composed frame
func (c *TerminalCanvas) Buffer() *Buffer {
	return c.buffer
}

func (c *TerminalCanvas) Present(projection vmath.Mat3, list *DrawList) error {
	cols, rows := c.screen.Size()
	if w, h := c.buffer.Size(); w != cols || h != rows {
		c.buffer.Resize(cols, rows)
	} else {
		c.buffer.Clear()
	}

	toCell := func(p vmath.Vec2) (int, int) {
		return ToCell(projection.Apply(p), cols, rows)
	}

	for _, cmd := range list.Commands() {
		switch cmd.Kind {
		case CmdSprite:
			x, y := toCell(cmd.Model.Apply(vmath.Vec2{}))
			c.buffer.SetFg(x, y, cmd.Glyph, cmd.Color)

		case CmdPoint:
			x, y := toCell(cmd.From)
			c.buffer.SetFg(x, y, cmd.Glyph, cmd.Color)

		case CmdLine:
			a := c.cellPoint(projection, cmd.From, cols, rows)
			b := c.cellPoint(projection, cmd.To, cols, rows)
			vmath.Traverse(a.X, a.Y, b.X, b.Y, func(x, y int) bool {
				c.buffer.SetFg(x, y, cmd.Glyph, cmd.Color)
				return true
			})

		case CmdCircle:
			c.circle(projection, cmd, cols, rows)

		case CmdText:
			x, y := int(cmd.From.X), int(cmd.From.Y)
			switch {
			case !cmd.Screen:
				x, y = toCell(cmd.From)
			case y < 0:
				// Negative rows count up from the bottom edge
				y += rows
			}
			c.buffer.Text(x, y, cmd.Text, cmd.Color)
		}
	}

	c.buffer.Flush(c.screen)
	c.screen.Show()
	return nil
}

// cellPoint returns p in fractional cell units
func (c *TerminalCanvas) cellPoint(projection vmath.Mat3, p vmath.Vec2, cols, rows int) vmath.Vec2 {
	ndc := projection.Apply(p)
	return vmath.V((ndc.X+1)/2*float64(cols), (1-ndc.Y)/2*float64(rows))
}

// circle tints the cells inside a world circle, which is an ellipse in cell space
func (c *TerminalCanvas) circle(projection vmath.Mat3, cmd Command, cols, rows int) {
	center := c.cellPoint(projection, cmd.From, cols, rows)
	edge := c.cellPoint(projection, cmd.From.Add(vmath.V(cmd.Radius, cmd.Radius)), cols, rows)
	rx, ry := edge.X-center.X, edge.Y-center.Y
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}

	for y := floor(center.Y - ry); y <= floor(center.Y+ry); y++ {
		for x := floor(center.X - rx); x <= floor(center.X+rx); x++ {
			dx, dy := float64(x)+0.5-center.X, float64(y)+0.5-center.Y
			if !vmath.EllipseContains(dx, dy, rx, ry) {
				continue
			}
			alpha := max(vmath.EllipseAlpha(dx, dy, rx, ry, circleAlpha), 0.15)
			c.buffer.SetBg(x, y, cmd.Color, BlendAlpha, alpha)
		}
	}
}
