package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clamp pins coordinates to the nearest cell inside the grid.
func (g *ByteGrid) Clamp(x, y int) (int, int) {
	return min(max(x, 0), g.W-1), min(max(y, 0), g.H-1)
}

// Max returns the largest cell value.
func (g *ByteGrid) Max() uint8 {
	var m uint8
	for _, v := range g.data {
		m = max(m, v)
	}
	return m
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
