package render

import "image/color"

// DensityPalette ramps from transparent (empty) through blue to hot white
// over 256 entries.
var DensityPalette = buildDensityPalette()

func buildDensityPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := 1; i < len(palette); i++ {
		t := min(float64(i)/24, 1)
		palette[i] = color.RGBA{
			R: uint8(40 + 215*t),
			G: uint8(60 + 160*t*t),
			B: uint8(160 + 60*(1-t)),
			A: uint8(90 + 120*t),
		}
	}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// depthShade dims c linearly with depth between near and far.
func depthShade(c color.RGBA, depth, near, far float64) color.RGBA {
	if far <= near {
		return c
	}
	t := (depth - near) / (far - near)
	t = 1 - 0.7*max(0, min(1, t))
	return color.RGBA{R: uint8(float64(c.R) * t), G: uint8(float64(c.G) * t), B: uint8(float64(c.B) * t), A: c.A}
}
