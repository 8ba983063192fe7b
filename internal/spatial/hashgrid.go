// Package spatial provides the broad-phase neighbor index used by the flock.
package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cell addresses one cube of the grid. Coordinates may be negative for
// positions outside the configured bounds.
type Cell struct {
	X, Y, Z int
}

// HashGrid is a uniform 3D grid mapping cells to the indices of the items
// inside them. It is rebuilt wholesale every tick and treated as read-only
// between rebuilds.
type HashGrid struct {
	half     mgl64.Vec3
	cellSize float64
	cells    map[Cell][]int
	count    int
}

// NewHashGrid creates an index over the box of the given half extents.
func NewHashGrid(half mgl64.Vec3, cellSize float64) *HashGrid {
	g := &HashGrid{half: half, cells: make(map[Cell][]int)}
	g.SetCellSize(cellSize)
	return g
}

// SetCellSize changes the cell edge length and drops the current contents.
// Callers must Rebuild before the next Query.
func (g *HashGrid) SetCellSize(size float64) {
	if size <= 0 || math.IsNaN(size) {
		size = 1
	}
	g.cellSize = size
	g.Clear()
}

// CellSize reports the cell edge length.
func (g *HashGrid) CellSize() float64 { return g.cellSize }

// HalfExtents reports the bounds the cell coordinates are offset by.
func (g *HashGrid) HalfExtents() mgl64.Vec3 { return g.half }

// Len reports how many items were indexed by the last Rebuild.
func (g *HashGrid) Len() int { return g.count }

// Clear empties every cell while keeping allocated capacity.
func (g *HashGrid) Clear() {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
	g.count = 0
}

// CellOf returns the cell containing p.
func (g *HashGrid) CellOf(p mgl64.Vec3) Cell {
	return Cell{
		X: g.coord(p[0], 0),
		Y: g.coord(p[1], 1),
		Z: g.coord(p[2], 2),
	}
}

func (g *HashGrid) coord(v float64, axis int) int {
	return int(math.Floor((v + g.half[axis]) / g.cellSize))
}

// Rebuild clears the grid and inserts every position under its slice index.
func (g *HashGrid) Rebuild(positions []mgl64.Vec3) {
	g.Clear()
	for i, p := range positions {
		c := g.CellOf(p)
		g.cells[c] = append(g.cells[c], i)
	}
	g.count = len(positions)
}

// Query returns the indices stored in every cell overlapping the cube of
// half-width radius around center. The result may contain items farther than
// radius; callers filter by exact distance.
func (g *HashGrid) Query(center mgl64.Vec3, radius float64) []int {
	return g.QueryBuf(center, radius, nil)
}

// QueryBuf appends the Query result to buf and returns the extended slice,
// avoiding per-call allocation.
func (g *HashGrid) QueryBuf(center mgl64.Vec3, radius float64, buf []int) []int {
	if g.count == 0 {
		return buf
	}
	if radius < 0 {
		radius = -radius
	}
	r := mgl64.Vec3{radius, radius, radius}
	lo := g.CellOf(center.Sub(r))
	hi := g.CellOf(center.Add(r))
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				if items := g.cells[Cell{x, y, z}]; len(items) > 0 {
					buf = append(buf, items...)
				}
			}
		}
	}
	return buf
}
