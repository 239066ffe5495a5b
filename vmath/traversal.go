package vmath

import "math"

// GridTraverser is a zero-allocation iterator over every grid cell a segment crosses
// Supercover DDA: no cell touched by the segment is skipped
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from (x1, y1) to (x2, y2) in cell units
func NewGridTraverser(x1, y1, x2, y2 float64) GridTraverser {
	t := GridTraverser{
		currX: int(math.Floor(x1)), currY: int(math.Floor(y1)),
		targetX: int(math.Floor(x2)), targetY: int(math.Floor(y2)),
		stepX: 1, stepY: 1,
	}

	dx, dy := x2-x1, y2-y1
	fx, fy := x1-math.Floor(x1), y1-math.Floor(y1)
	if dx < 0 {
		t.stepX = -1
		dx = -dx
		fx = 1 - fx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
		fy = 1 - fy
	}

	if dx == 0 {
		t.tMaxX = math.Inf(1)
	} else {
		t.tDeltaX = 1 / dx
		t.tMaxX = (1 - fx) * t.tDeltaX
	}
	if dy == 0 {
		t.tMaxY = math.Inf(1)
	} else {
		t.tDeltaY = 1 / dy
		t.tMaxY = (1 - fy) * t.tDeltaY
	}
	return t
}

// Next advances to the next cell
// Returns true if a valid cell is available via Pos
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.currX != t.targetX {
			t.stepAlongX()
		} else {
			t.stepAlongY()
		}
	case t.tMaxX > t.tMaxY:
		if t.currY != t.targetY {
			t.stepAlongY()
		} else {
			t.stepAlongX()
		}
	default:
		if t.currX != t.targetX {
			t.stepAlongX()
		}
		if t.currY != t.targetY {
			t.stepAlongY()
		}
	}
	return true
}

func (t *GridTraverser) stepAlongX() {
	t.currX += t.stepX
	t.tMaxX += t.tDeltaX
}

func (t *GridTraverser) stepAlongY() {
	t.currY += t.stepY
	t.tMaxY += t.tDeltaY
}

// Pos returns the current cell
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// Traverse visits every cell crossed by the segment until callback returns false
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	t := NewGridTraverser(x1, y1, x2, y2)
	for t.Next() {
		if !callback(t.Pos()) {
			return
		}
	}
}
