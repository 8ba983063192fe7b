//go:build ebiten

package render

import (
	"image/color"

	"boidflock/internal/sims/flock"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	boidColor      = color.RGBA{R: 238, G: 238, B: 255, A: 255}
	boundsColor    = color.RGBA{R: 68, G: 68, B: 68, A: 255}
	attractorColor = color.RGBA{R: 0, G: 255, B: 170, A: 200}
	blastColor     = color.RGBA{R: 255, G: 140, B: 60, A: 255}
)

const (
	boidLength   = 8.0
	blastFrames  = 12
	attractorRad = 8.0
)

// DensityPainter uploads a byte raster into a single image through a palette.
type DensityPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewDensityPainter allocates a painter for a raster of size w*h.
func NewDensityPainter(w, h int) *DensityPainter {
	return &DensityPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit draws cells stretched over the dstW x dstH rectangle at (x, y).
func (dp *DensityPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, x, y, dstW, dstH int) {
	if len(cells) != dp.w*dp.h {
		return
	}
	fillPaletteRGBA(dp.buf, cells, palette)
	dp.img.WritePixels(dp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dstW)/float64(dp.w), float64(dstH)/float64(dp.h))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(dp.img, op)
}

// FlockPainter draws the boids, the world box, the attractor and recent
// explosions through a Camera.
type FlockPainter struct{}

// Draw renders one frame of w.
func (FlockPainter) Draw(dst *ebiten.Image, cam Camera, w *flock.World) {
	half := w.Params().HalfExtents()
	drawBox(dst, cam, half)

	near, far := cam.Distance-half.Len(), cam.Distance+half.Len()
	for _, b := range w.Boids() {
		tail := b.Position.Sub(b.Heading().Mul(boidLength))
		x0, y0, depth, ok0 := cam.Project(tail)
		x1, y1, _, ok1 := cam.Project(b.Position)
		if !ok0 || !ok1 {
			continue
		}
		clr := depthShade(boidColor, depth, near, far)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, clr, true)
		vector.DrawFilledCircle(dst, float32(x1), float32(y1), 1.5, clr, true)
	}

	if pos, visible := w.Attractor(); visible {
		if x, y, depth, ok := cam.Project(pos); ok {
			r := float32(attractorRad * cam.Focal / depth)
			vector.DrawFilledCircle(dst, float32(x), float32(y), r, attractorColor, true)
			if w.Perturbation().AttractionActive() {
				vector.StrokeCircle(dst, float32(x), float32(y), r*1.8, 1, attractorColor, true)
			}
		}
	}

	stats := w.Stats()
	if age := stats.Tick - stats.LastExplosionTick; stats.Explosions > 0 && age < blastFrames {
		if x, y, depth, ok := cam.Project(stats.LastEpicenter); ok {
			reach := w.Params().ExplosionRadius * float64(age+1) / blastFrames
			r := float32(reach * cam.Focal / depth)
			vector.StrokeCircle(dst, float32(x), float32(y), r, 2, blastColor, true)
		}
	}
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func drawBox(dst *ebiten.Image, cam Camera, half mgl64.Vec3) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = mgl64.Vec3{
			sign(i&1) * half[0],
			sign(i&2) * half[1],
			sign(i&4) * half[2],
		}
	}
	for _, e := range boxEdges {
		x0, y0, _, ok0 := cam.Project(corners[e[0]])
		x1, y1, _, ok1 := cam.Project(corners[e[1]])
		if ok0 && ok1 {
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, boundsColor, true)
		}
	}
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}
