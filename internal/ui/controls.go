package ui

import (
	"image"
	"math"
	"strconv"

	"boidflock/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statsLines     = 6
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// newControlStates lays out one row per control inside a panel of width w.
func newControlStates(controls []core.ParameterControl, w int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(w-panelPadding-buttonSize, buttonY, w-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refresh copies current values out of the snapshot.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	s.number = parsed
	s.hasValue = true
	s.value = formatValue(s.control, parsed)
}

// target returns the value one step in direction, or false when the step is
// blocked by the control bounds.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 0.05
		if s.control.Type == core.ParamTypeInt {
			step = 1
		}
	}
	next := s.control.Clamp(s.number + float64(direction)*step)
	if s.control.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	if math.Abs(next-s.number) < 1e-9 {
		return 0, false
	}
	return next, true
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
