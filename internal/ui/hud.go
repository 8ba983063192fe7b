//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"boidflock/internal/core"
	"boidflock/internal/sims/flock"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	world  *flock.World
	width  int
	panel  *ebiten.Image
	offset int

	controls []controlState
}

// NewHUD constructs a HUD for the flock and panel width.
func NewHUD(world *flock.World, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{world: world, width: width, controls: newControlStates(world.ParameterControls(), width)}
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes values and applies clicks on the -/+ buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	snap := h.world.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(snap)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offset
	for i := range h.controls {
		s := &h.controls[i]
		switch {
		case pointInRect(px, my, s.minusRect):
			h.apply(s, -1)
		case pointInRect(px, my, s.plusRect):
			h.apply(s, 1)
		}
	}
}

func (h *HUD) apply(s *controlState, direction int) {
	next, ok := s.target(direction)
	if !ok {
		return
	}
	applied := false
	switch s.control.Type {
	case core.ParamTypeInt:
		applied = h.world.SetIntParameter(s.control.Key, int(next))
	case core.ParamTypeFloat:
		applied = h.world.SetFloatParameter(s.control.Key, next)
	}
	if applied {
		s.number = next
		s.value = formatValue(s.control, next)
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	state := "running"
	if h.world.Paused() {
		state = "paused"
	}
	text.Draw(h.panel, fmt.Sprintf("Flock Controls (%s)", state), face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i := range h.controls {
		s := &h.controls[i]
		y := s.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !s.hasValue {
			valueColor = mutedColor
		}
		w := text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, s.minusRect.Min.X-buttonGap-w, y, valueColor)
		_, canDown := s.target(-1)
		_, canUp := s.target(1)
		h.drawButton(s.minusRect, "-", canDown)
		h.drawButton(s.plusRect, "+", canUp)
	}

	stats := h.world.Stats()
	lines := []string{
		fmt.Sprintf("tick        %d", stats.Tick),
		fmt.Sprintf("mean speed  %.2f", stats.MeanSpeed),
		fmt.Sprintf("polarity    %.2f", stats.Polarization),
		fmt.Sprintf("neighbors   %.1f / %.1f", stats.MeanFlockmates, stats.MeanCandidates),
		fmt.Sprintf("explosions  %d", stats.Explosions),
		"space pause  n step  r reset",
	}
	top := height - panelPadding - statsLines*16
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, top+i*16+labelBaseline, mutedColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = disabledColor, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
