package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{0, 0, 0, 0}, {10, 20, 30, 40}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{0, 0, 0, 0, 10, 20, 30, 40, 10, 20, 30, 40}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected empty palette to clear the buffer, byte %d = %d", i, b)
		}
	}
}

func TestDensityPaletteEmptyIsTransparent(t *testing.T) {
	if DensityPalette[0].A != 0 {
		t.Fatal("expected empty cells to be transparent")
	}
	if DensityPalette[255].A == 0 {
		t.Fatal("expected dense cells to be visible")
	}
}

func TestDepthShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := depthShade(c, 0, 10, 100); got != c {
		t.Fatalf("expected near objects unshaded, got %v", got)
	}
	far := depthShade(c, 1000, 10, 100)
	if far.R >= c.R || far.A != c.A {
		t.Fatalf("expected far objects dimmed, got %v", far)
	}
}
