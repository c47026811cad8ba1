// Package render provides Surface implementations for the heart effect:
// an ebiten image surface for desktop/mobile and a tcell cell surface for
// terminals.
package render

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingSprite is returned when a surface is created without a sprite.
// A missing sprite is a startup configuration problem, never a per-frame one.
var ErrMissingSprite = errors.New("particle sprite is missing")

// EbitenSurface draws particles onto an ebiten screen image.
//
// The target screen changes every frame, so the host calls SetTarget from
// its Draw callback before rendering.
type EbitenSurface struct {
	screen     *ebiten.Image
	sprite     *ebiten.Image
	spriteSize float64

	// 复用绘制参数，避免每个粒子分配
	op ebiten.DrawImageOptions
}

// NewEbitenSurface creates a surface that blits sprite for every particle.
func NewEbitenSurface(sprite *ebiten.Image) (*EbitenSurface, error) {
	if sprite == nil {
		return nil, ErrMissingSprite
	}
	return &EbitenSurface{
		sprite:     sprite,
		spriteSize: float64(sprite.Bounds().Dx()),
	}, nil
}

// NewEbitenSurfaceFromImage uploads a CPU-side sprite image (see heart.NewSprite).
func NewEbitenSurfaceFromImage(img image.Image) (*EbitenSurface, error) {
	if img == nil {
		return nil, ErrMissingSprite
	}
	return NewEbitenSurface(ebiten.NewImageFromImage(img))
}

// SetTarget sets the image subsequent calls draw onto.
func (s *EbitenSurface) SetTarget(screen *ebiten.Image) {
	s.screen = screen
}

// Size implements systems.Surface.
func (s *EbitenSurface) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements systems.Surface.
func (s *EbitenSurface) Clear() {
	if s.screen != nil {
		s.screen.Clear()
	}
}

// DrawSprite implements systems.Surface. Fully transparent or zero-sized
// particles are skipped.
func (s *EbitenSurface) DrawSprite(centerX, centerY, size, alpha float64) {
	if s.screen == nil || size <= 0 || alpha <= 0 {
		return
	}

	scale := size / s.spriteSize

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(scale, scale)
	s.op.GeoM.Translate(centerX-size/2, centerY-size/2)
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleAlpha(float32(alpha))
	s.op.Filter = ebiten.FilterLinear

	s.screen.DrawImage(s.sprite, &s.op)
}
