package heart

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// spriteScale maps curve units into sprite pixels (curve width ≈ 320 units).
const spriteScale = 550.0

// NewSprite rasterizes a filled heart into a size×size RGBA image.
//
// Each outline point is mapped to (size/3 + x·size/550, size/3 − y·size/550),
// so the shape sits slightly off center and the Y axis is flipped into image
// coordinates. The image is generated once at startup and reused for every
// particle.
func NewSprite(size int, fill color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sprite size must be > 0, got %d", size)
	}

	s := float32(size)
	to := func(x, y float64) (float32, float32) {
		return s/3 + float32(x)*s/spriteScale, s/3 - float32(y)*s/spriteScale
	}

	// create the path
	r := vector.NewRasterizer(size, size)
	outline := Outline()
	r.MoveTo(to(outline[0].X, outline[0].Y))
	for _, p := range outline[1:] {
		r.LineTo(to(p.X, p.Y))
	}
	r.ClosePath()

	// create the fill
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})

	return dst, nil
}

// Bounds returns the smallest rectangle containing all non-transparent
// pixels of img. It is empty when the image is fully transparent.
func Bounds(img image.Image) image.Rectangle {
	var out image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			out = out.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return out
}
