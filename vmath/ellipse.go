package vmath

// Ellipse helpers for drawing world circles on non-square terminal cells

// EllipseDistSq returns the normalized squared distance of (dx, dy) from an ellipse center
// Result <= 1 means the point is inside
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 2
	}
	nx, ny := dx/rx, dy/ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if (dx, dy) is inside or on the ellipse boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// EllipseAlpha returns opacity for a rim-weighted fill: 0 at center, maxAlpha at the edge, 0 outside
func EllipseAlpha(dx, dy, rx, ry, maxAlpha float64) float64 {
	d := EllipseDistSq(dx, dy, rx, ry)
	if d > 1 {
		return 0
	}
	return d * maxAlpha
}
