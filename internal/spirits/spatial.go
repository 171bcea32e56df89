package spirits

import (
	"math"

	"charon/pkg/vec"
)

// spatialHash buckets agent indices on a uniform grid with cells one
// separation radius wide, covering the bounding box of the agents.
type spatialHash struct {
	size       float64
	originX    float64
	originY    float64
	cols, rows int
	buckets    [][]int
}

func newSpatialHash(size float64) spatialHash {
	if size <= 0 {
		size = 1
	}
	return spatialHash{size: size}
}

func (h *spatialHash) rebuild(agents []Agent) {
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
	if len(agents) == 0 {
		h.cols, h.rows = 0, 0
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range agents {
		p := agents[i].Pos
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	h.originX, h.originY = minX, minY
	h.cols = int((maxX-minX)/h.size) + 1
	h.rows = int((maxY-minY)/h.size) + 1
	if n := h.cols * h.rows; n > len(h.buckets) {
		h.buckets = append(h.buckets, make([][]int, n-len(h.buckets))...)
	}
	for i := range agents {
		bx, by := h.cell(agents[i].Pos)
		idx := by*h.cols + bx
		h.buckets[idx] = append(h.buckets[idx], i)
	}
}

func (h *spatialHash) cell(p vec.Vec2) (int, int) {
	bx := clamp(int((p.X-h.originX)/h.size), 0, h.cols-1)
	by := clamp(int((p.Y-h.originY)/h.size), 0, h.rows-1)
	return bx, by
}

// pairs calls fn once for every unordered pair of agents closer than the
// bucket size, lower index first.
func (h *spatialHash) pairs(agents []Agent, fn func(i, j int, dist float64)) {
	r2 := h.size * h.size
	for i := range agents {
		bx, by := h.cell(agents[i].Pos)
		for dy := -1; dy <= 1; dy++ {
			y := by + dy
			if y < 0 || y >= h.rows {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				x := bx + dx
				if x < 0 || x >= h.cols {
					continue
				}
				for _, j := range h.buckets[y*h.cols+x] {
					if j <= i {
						continue
					}
					d2 := agents[j].Pos.Sub(agents[i].Pos).LengthSquared()
					if d2 < r2 {
						fn(i, j, math.Sqrt(d2))
					}
				}
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
