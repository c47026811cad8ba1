package heart

import (
	"image"
	"image/color"
	"testing"
)

func TestNewSprite(t *testing.T) {
	fill := color.RGBA{R: 0xea, G: 0x80, B: 0xb0, A: 0xff}
	img, err := NewSprite(64, fill)
	if err != nil {
		t.Fatalf("NewSprite() error: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Fatalf("bounds = %v, want 64x64", img.Bounds())
	}

	// 曲线原点映射到 (size/3, size/3)，位于心形内部
	inside := img.RGBAAt(21, 21)
	if inside.A < 0xf0 {
		t.Errorf("pixel at curve origin alpha = %d, want filled", inside.A)
	}
	if inside.R != fill.R || inside.G != fill.G || inside.B != fill.B {
		t.Errorf("pixel at curve origin = %v, want %v", inside, fill)
	}

	for _, pt := range []image.Point{{0, 0}, {63, 63}, {63, 0}} {
		if a := img.RGBAAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want transparent", pt, a)
		}
	}
}

func TestNewSprite_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := NewSprite(size, color.White); err == nil {
			t.Errorf("NewSprite(%d) expected error", size)
		}
	}
}

func TestBounds(t *testing.T) {
	img, err := NewSprite(64, color.White)
	if err != nil {
		t.Fatalf("NewSprite() error: %v", err)
	}

	b := Bounds(img)
	if b.Empty() {
		t.Fatal("sprite has no opaque pixels")
	}
	if !b.In(img.Bounds()) {
		t.Errorf("Bounds() = %v outside image %v", b, img.Bounds())
	}
	if !image.Pt(21, 21).In(b) {
		t.Errorf("Bounds() = %v does not contain the curve origin", b)
	}

	empty := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if got := Bounds(empty); !got.Empty() {
		t.Errorf("Bounds(transparent) = %v, want empty", got)
	}
}
