package vmath

import "math"

// Mat3 is a row-major 2D affine matrix
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
type Mat3 [9]float64

func Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Translation(v Vec2) Mat3 {
	return Mat3{1, 0, v.X, 0, 1, v.Y, 0, 0, 1}
}

func Scaling(s Vec2) Mat3 {
	return Mat3{s.X, 0, 0, 0, s.Y, 0, 0, 0, 1}
}

// Rotation rotates by r radians, counter-clockwise in a y-up frame
func Rotation(r float64) Mat3 {
	c, s := math.Cos(r), math.Sin(r)
	return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
}

// Mul returns m*n
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return out
}

// Apply transforms a point
func (m Mat3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Ortho builds the orthographic projection mapping [left,right]x[bottom,top] onto [-1,1]
func Ortho(left, right, bottom, top float64) Mat3 {
	sx := 2 / (right - left)
	sy := 2 / (top - bottom)
	tx := -(right + left) / (right - left)
	ty := -(top + bottom) / (top - bottom)
	return Mat3{sx, 0, tx, 0, sy, ty, 0, 0, 1}
}

// Model composes translate * rotate * scale for a sprite
func Model(pos Vec2, rotation float64, scale Vec2) Mat3 {
	return Translation(pos).Mul(Rotation(rotation)).Mul(Scaling(scale))
}
