package spatial

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"boidflock/pkg/core"
)

func TestCellOfOffsetsByBounds(t *testing.T) {
	g := NewHashGrid(mgl64.Vec3{200, 200, 200}, 50)
	if got := g.CellOf(mgl64.Vec3{-200, 0, 199}); got != (Cell{0, 4, 7}) {
		t.Fatalf("unexpected cell %+v", got)
	}
	if got := g.CellOf(mgl64.Vec3{-201, 0, 0}); got.X != -1 {
		t.Fatalf("expected negative cell for out-of-bounds position, got %+v", got)
	}
}

func TestRebuildPlacesEachItemOnce(t *testing.T) {
	g := NewHashGrid(mgl64.Vec3{100, 100, 100}, 25)
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 1, 1}, {-90, 40, 10}, {99, -99, 0}}
	g.Rebuild(positions)

	seen := map[int]int{}
	for _, items := range g.cells {
		for _, i := range items {
			seen[i]++
		}
	}
	for i := range positions {
		if seen[i] != 1 {
			t.Fatalf("item %d indexed %d times", i, seen[i])
		}
		if !slices.Contains(g.cells[g.CellOf(positions[i])], i) {
			t.Fatalf("item %d missing from its own cell", i)
		}
	}

	g.Rebuild(positions[:1])
	if got := g.Query(mgl64.Vec3{99, -99, 0}, 1); len(got) != 0 {
		t.Fatalf("stale entries survived rebuild: %v", got)
	}
}

func TestQueryEmptyIndex(t *testing.T) {
	g := NewHashGrid(mgl64.Vec3{10, 10, 10}, 5)
	if got := g.Query(mgl64.Vec3{}, 100); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestQueryIsSupersetOfExactNeighbors(t *testing.T) {
	half := mgl64.Vec3{200, 200, 200}
	rng := core.NewRNG(42)
	positions := make([]mgl64.Vec3, 400)
	for i := range positions {
		positions[i] = rng.InBox(half)
	}
	// a few positions slightly outside bounds must still be found
	positions = append(positions, mgl64.Vec3{205, 0, 0}, mgl64.Vec3{-203, -201, 0})

	for _, cellSize := range []float64{10, 50, 120} {
		g := NewHashGrid(half, cellSize)
		g.Rebuild(positions)
		for q := 0; q < 50; q++ {
			center := rng.InBox(half.Mul(1.05))
			radius := rng.Range(1, 160)
			got := g.Query(center, radius)
			for i, p := range positions {
				if p.Sub(center).Len() <= radius && !slices.Contains(got, i) {
					t.Fatalf("cell=%v radius=%v: item %d at %v missing for center %v", cellSize, radius, i, p, center)
				}
			}
		}
	}
}

func TestSetCellSizeDropsContents(t *testing.T) {
	g := NewHashGrid(mgl64.Vec3{10, 10, 10}, 5)
	g.Rebuild([]mgl64.Vec3{{0, 0, 0}})
	g.SetCellSize(2)
	if g.Len() != 0 || len(g.Query(mgl64.Vec3{}, 1)) != 0 {
		t.Fatal("expected cell size change to drop indexed items")
	}
	if g.CellSize() != 2 {
		t.Fatalf("expected cell size 2, got %v", g.CellSize())
	}
	g.SetCellSize(0)
	if g.CellSize() != 1 {
		t.Fatalf("expected non-positive cell size to fall back to 1, got %v", g.CellSize())
	}
}

func TestQueryBufAppends(t *testing.T) {
	g := NewHashGrid(mgl64.Vec3{10, 10, 10}, 5)
	g.Rebuild([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}})
	buf := []int{99}
	buf = g.QueryBuf(mgl64.Vec3{}, 1, buf)
	if len(buf) != 3 || buf[0] != 99 {
		t.Fatalf("expected QueryBuf to append, got %v", buf)
	}
}
