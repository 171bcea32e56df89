package core

// Direction offsets for 4-connected neighbours, in side order N, E, S, W.
// Y grows downward, so north is y-1.
var Sides = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid describes the geometry of a fixed W x H row-major cell array. It owns
// no cell data; storage types embed it for indexing.
type Grid struct {
	W, H int
}

// NewGrid returns grid geometry with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// InBounds reports whether p addresses a cell of the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// Index returns the linear slice index for p. Callers must check InBounds.
func (g Grid) Index(p Point) int { return p.Y*g.W + p.X }

// Point converts a linear index back to coordinates.
func (g Grid) Point(idx int) Point { return Point{X: idx % g.W, Y: idx / g.W} }

// Neighbors4 appends the in-bounds side neighbours of p to dst in side order.
// Off-grid neighbours are skipped, never reported.
func (g Grid) Neighbors4(dst []Point, p Point) []Point {
	for _, d := range Sides {
		n := p.Add(d)
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
