package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestDrawList_BackToFront(t *testing.T) {
	l := NewDrawList(8)
	l.Point(parameter.LayerPlayer, vmath.V(1, 1), 'p', RGBPlayer)
	l.Point(parameter.LayerEnemy, vmath.V(1, 1), 'a', RGBEnemy)
	l.Point(parameter.LayerUI, vmath.V(1, 1), 'u', RGBText)
	l.Point(parameter.LayerEnemy, vmath.V(1, 1), 'b', RGBEnemy)
	l.Point(parameter.LayerBackground, vmath.V(1, 1), 'g', RGBBlack)

	var got []rune
	for _, c := range l.Commands() {
		got = append(got, c.Glyph)
	}
	assert.Equal(t, []rune{'g', 'a', 'b', 'p', 'u'}, got, "stable within a layer")

	l.Reset()
	assert.Zero(t, l.Len())
}

func TestProjection(t *testing.T) {
	p := Projection(800, 600)

	tests := []struct {
		world    vmath.Vec2
		col, row int
	}{
		{vmath.V(0, 0), 0, 0},
		{vmath.V(400, 300), 40, 12},
		{vmath.V(799, 599), 79, 23},
		{vmath.V(-10, 300), -1, 12},
	}
	for _, tt := range tests {
		col, row := ToCell(p.Apply(tt.world), 80, 24)
		assert.Equal(t, tt.col, col, "col for %v", tt.world)
		assert.Equal(t, tt.row, row, "row for %v", tt.world)
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestTerminalCanvas_Present(t *testing.T) {
	screen := newScreen(t)
	canvas := NewTerminalCanvas(screen)
	proj := Projection(800, 600)

	l := NewDrawList(16)
	l.Sprite(parameter.LayerPlayer, vmath.Model(vmath.V(400, 300), 0, vmath.V(1, 1)), 'A', RGBPlayer)
	l.Line(parameter.LayerEnemy, vmath.V(0, 55), vmath.V(790, 55), '=', RGBLaserBeam)
	l.Point(parameter.LayerParticle, vmath.V(0, 0), '.', RGBHighlight)
	l.Label(parameter.LayerUI, 2, 20, "HP", RGBText)
	l.Label(parameter.LayerUI, 5, -2, "go", RGBText)
	l.Circle(parameter.LayerVamp, vmath.V(200, 450), 60, RGBVamp)

	require.NoError(t, canvas.Present(proj, l))

	assert.Equal(t, 'A', runeAt(screen, 40, 12))
	assert.Equal(t, '.', runeAt(screen, 0, 0))
	assert.Equal(t, 'H', runeAt(screen, 2, 20))
	assert.Equal(t, 'P', runeAt(screen, 3, 20))
	assert.Equal(t, 'g', runeAt(screen, 5, 22), "negative rows anchor to the bottom")
	for x := 0; x < 79; x++ {
		assert.Equal(t, '=', runeAt(screen, x, 2), "beam cell %d", x)
	}

	buf := canvas.Buffer()
	assert.NotEqual(t, RGBBackground, buf.At(20, 18).Bg, "circle tints its center")
	_, _, style, _ := screen.GetContent(70, 18)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcellColor(RGBBackground), bg, "untouched cells get the default background")
}

func TestTerminalCanvas_LayerOverwrite(t *testing.T) {
	screen := newScreen(t)
	canvas := NewTerminalCanvas(screen)

	l := NewDrawList(4)
	l.Point(parameter.LayerPlayer, vmath.V(400, 300), 'p', RGBPlayer)
	l.Point(parameter.LayerEnemy, vmath.V(400, 300), 'e', RGBEnemy)
	require.NoError(t, canvas.Present(Projection(800, 600), l))

	assert.Equal(t, 'p', runeAt(screen, 40, 12), "higher layer drawn last")
}

func TestTerminalCanvas_Resize(t *testing.T) {
	screen := newScreen(t)
	canvas := NewTerminalCanvas(screen)
	screen.SetSize(40, 12)

	l := NewDrawList(1)
	l.Point(parameter.LayerPlayer, vmath.V(400, 300), 'p', RGBPlayer)
	require.NoError(t, canvas.Present(Projection(800, 600), l))

	w, h := canvas.Buffer().Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)
	assert.Equal(t, 'p', runeAt(screen, 20, 6))
}

func TestRGB_Blend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, a, a.Blend(b, 0))
	assert.Equal(t, b, a.Blend(b, 1))
	assert.Equal(t, RGB{100, 50, 25}, a.Blend(b, 0.5))
	assert.Equal(t, RGB{255, 200, 100}, RGB{100, 100, 50}.Add(RGB{200, 100, 50}))
	assert.Equal(t, RGB{200, 100, 60}, RGB{10, 20, 60}.Max(b))
}
