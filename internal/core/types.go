package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses one cell of a grid.
type Point struct {
	X int
	Y int
}

// Add returns p offset by o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Manhattan returns the 4-connected distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Adjacent reports whether p and o share a side.
func (p Point) Adjacent(o Point) bool { return p.Manhattan(o) == 1 }

// Rect is a half-open cell rectangle [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

// Centered returns a w x h rectangle centred inside a grid of the given size.
// The rectangle is clamped to the grid.
func Centered(size Size, w, h int) Rect {
	if w > size.W {
		w = size.W
	}
	if h > size.H {
		h = size.H
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: (size.W - w) / 2, Y: (size.H - h) / 2, W: w, H: h}
}

// Border lists the cells on the edge of r, without duplicates, row by row.
func (r Rect) Border() []Point {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	var out []Point
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if y == r.Y || y == r.Y+r.H-1 || x == r.X || x == r.X+r.W-1 {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
