//go:build ebiten

package app

import (
	"image/color"
	"time"

	"boidflock/internal/render"
	"boidflock/internal/sims/flock"
	"boidflock/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	orbitStep = 0.03
	zoomStep  = 1.1
)

var background = color.RGBA{R: 17, G: 24, B: 39, A: 255}

// Game adapts the flock to the ebiten.Game interface.
type Game struct {
	world   *flock.World
	tracker *flock.Tracker
	camera  render.Camera
	painter render.FlockPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	w, h int
	seed int64
}

// New constructs a Game for the world with a w x h view plus an optional
// HUD panel of hudWidth pixels.
func New(world *flock.World, w, h, hudWidth int, seed int64) *Game {
	p := world.Params()
	return &Game{
		world:   world,
		tracker: flock.NewTracker(world.Perturbation(), flock.ThresholdsFrom(p)),
		camera:  render.NewCamera(w, h, p.HalfExtents().Len()/1.7),
		hud:     ui.NewHUD(world, hudWidth),
		overlay: ui.NewOverlay(world),
		w:       w,
		h:       h,
		seed:    seed,
	}
}

// Reset reinitializes the population with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.updateCamera()

	g.tracker.SetThresholds(flock.ThresholdsFrom(g.world.Params()))
	g.tracker.Observe(poseFromPointer(g.pointer(), g.camera))

	g.overlay.Update()
	g.hud.Update(g.w)
	g.world.Step()
	return nil
}

func (g *Game) updateCamera() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Orbit(0, -orbitStep)
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.camera.Zoom(1 / zoomStep)
	} else if dy < 0 {
		g.camera.Zoom(zoomStep)
	}
}

func (g *Game) pointer() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{
		X:       x,
		Y:       y,
		Inside:  x >= 0 && y >= 0 && x < g.w && y < g.h,
		Attract: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Scatter: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.painter.Draw(screen, g.camera, g.world)
	g.overlay.Draw(screen, g.w, g.h)
	g.hud.Draw(screen, g.w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w + g.hud.Width(), g.h
}
