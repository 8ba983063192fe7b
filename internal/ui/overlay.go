//go:build ebiten

package ui

import (
	"fmt"

	"boidflock/internal/core"
	"boidflock/internal/render"
	"boidflock/internal/sims/flock"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const densityCells = 64

// Overlay draws optional debugging visuals on top of the flock view.
type Overlay struct {
	world       *flock.World
	showDensity bool
	showInfo    bool
	density     *core.ByteGrid
	painter     *render.DensityPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *flock.World) *Overlay {
	return &Overlay{
		world:   world,
		density: core.NewByteGrid(densityCells, densityCells),
		painter: render.NewDensityPainter(densityCells, densityCells),
	}
}

// Update toggles layers: 1 density map, 2 perturbation readout.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDensity = !o.showDensity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the enabled layers into the w x h simulation view.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	if o.showDensity {
		o.world.ProjectDensity(o.density)
		side := min(w, h) / 3
		o.painter.Blit(screen, o.density.Cells(), render.DensityPalette, w-side, 0, side, side)
	}
	if o.showInfo {
		pert := o.world.Perturbation()
		pos := pert.Attractor()
		line := fmt.Sprintf("attractor (%.0f, %.0f, %.0f) visible=%v attracting=%v pending=%v",
			pos[0], pos[1], pos[2], pert.Visible(), pert.AttractionActive(), pert.ExplosionPending())
		text.Draw(screen, line, basicfont.Face7x13, panelPadding, h-panelPadding, mutedColor)
	}
}
