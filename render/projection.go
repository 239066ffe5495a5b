package render

import "github.com/lixenwraith/vape/vmath"

// Projection maps a y-down screen of width x height world units onto NDC [-1,1], y up
func Projection(width, height float64) vmath.Mat3 {
	return vmath.Ortho(0, width, height, 0)
}

// ToCell converts a projected NDC point into a cell on a cols x rows grid
func ToCell(ndc vmath.Vec2, cols, rows int) (int, int) {
	x := (ndc.X + 1) / 2 * float64(cols)
	y := (1 - ndc.Y) / 2 * float64(rows)
	return floor(x), floor(y)
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
