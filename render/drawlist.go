package render

import "github.com/lixenwraith/vape/vmath"

// CommandKind selects the primitive a Command draws
type CommandKind uint8

const (
	CmdSprite CommandKind = iota
	CmdLine
	CmdPoint
	CmdCircle
	CmdText
)

// Command is one draw call in world coordinates
// Sprite uses Model and Glyph, Line uses From/To, Point and Text use From,
// Circle uses From as center with Radius
type Command struct {
	Kind  CommandKind
	Layer int
	Color RGB
	Glyph rune

	Model  vmath.Mat3
	From   vmath.Vec2
	To     vmath.Vec2
	Radius float64
	Text   string

	// Text is anchored in screen cells rather than projected
	Screen bool

	index int // submission order for stable sort
}

// DrawList collects a frame of commands and orders them back to front
type DrawList struct {
	cmds  []Command
	count int
}

// NewDrawList creates an empty list with room for n commands
func NewDrawList(n int) *DrawList {
	return &DrawList{cmds: make([]Command, 0, n)}
}

// Reset empties the list, keeping capacity
func (l *DrawList) Reset() {
	l.cmds = l.cmds[:0]
	l.count = 0
}

// Add inserts c keeping layer order; equal layers stay in submission order
func (l *DrawList) Add(c Command) {
	c.index = l.count
	l.count++

	pos := len(l.cmds)
	for i := len(l.cmds) - 1; i >= 0 && l.cmds[i].Layer > c.Layer; i-- {
		pos = i
	}

	l.cmds = append(l.cmds, Command{})
	copy(l.cmds[pos+1:], l.cmds[pos:])
	l.cmds[pos] = c
}

func (l *DrawList) Sprite(layer int, model vmath.Mat3, glyph rune, color RGB) {
	l.Add(Command{Kind: CmdSprite, Layer: layer, Model: model, Glyph: glyph, Color: color})
}

func (l *DrawList) Line(layer int, from, to vmath.Vec2, glyph rune, color RGB) {
	l.Add(Command{Kind: CmdLine, Layer: layer, From: from, To: to, Glyph: glyph, Color: color})
}

func (l *DrawList) Point(layer int, at vmath.Vec2, glyph rune, color RGB) {
	l.Add(Command{Kind: CmdPoint, Layer: layer, From: at, Glyph: glyph, Color: color})
}

func (l *DrawList) Circle(layer int, center vmath.Vec2, radius float64, color RGB) {
	l.Add(Command{Kind: CmdCircle, Layer: layer, From: center, Radius: radius, Color: color})
}

// Text places s at a world position
func (l *DrawList) Text(layer int, at vmath.Vec2, s string, color RGB) {
	l.Add(Command{Kind: CmdText, Layer: layer, From: at, Text: s, Color: color})
}

// Label places s at a cell position, for HUD and menus
// A negative row counts from the bottom of the screen
func (l *DrawList) Label(layer, col, row int, s string, color RGB) {
	l.Add(Command{Kind: CmdText, Layer: layer, From: vmath.V(float64(col), float64(row)), Text: s, Color: color, Screen: true})
}

// Commands returns the ordered commands; the slice is reused after Reset
func (l *DrawList) Commands() []Command {
	return l.cmds
}

// Len returns the number of queued commands
func (l *DrawList) Len() int {
	return len(l.cmds)
}
