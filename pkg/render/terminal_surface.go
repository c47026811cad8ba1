package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// 终端单元格对应的虚拟像素尺寸（字符约为 1:2 宽高比）
const (
	DefaultCellWidth  = 4.0
	DefaultCellHeight = 8.0
)

// CellScreen is the part of tcell.Screen the terminal surface uses.
type CellScreen interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// TerminalSurface renders particles as colored glyphs on a terminal.
//
// The surface exposes a virtual pixel space of cellWidth×cellHeight pixels
// per cell so that the emitter geometry stays the same as on a window. Each
// particle lights one cell; overlapping particles in the same cell are
// alpha-composited over the black background.
type TerminalSurface struct {
	screen     CellScreen
	fill       color.RGBA
	spriteSize float64
	cellWidth  float64
	cellHeight float64

	// 自适应：非零时按终端尺寸缩放单元格，使该范围完整可见
	fitWidth, fitHeight float64

	cols, rows int
	alpha      []float64
	size       []float64
}

// NewTerminalSurface creates a surface drawing onto screen.
// spriteSize is the configured full-grown particle size in virtual pixels.
func NewTerminalSurface(screen CellScreen, fill color.RGBA, spriteSize int) (*TerminalSurface, error) {
	if spriteSize <= 0 {
		return nil, ErrMissingSprite
	}
	return &TerminalSurface{
		screen:     screen,
		fill:       fill,
		spriteSize: float64(spriteSize),
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
	}, nil
}

// FitExtent makes the surface rescale its cells on every resize so that a
// width×height region of virtual pixels fits the terminal. Cells keep a 1:2
// aspect ratio and never shrink below the default cell size.
func (s *TerminalSurface) FitExtent(width, height float64) {
	s.fitWidth, s.fitHeight = width, height
	s.cols, s.rows = 0, 0
}

// CellSize returns the virtual pixel size of one terminal cell.
func (s *TerminalSurface) CellSize() (float64, float64) {
	return s.cellWidth, s.cellHeight
}

// Size implements systems.Surface in virtual pixels.
func (s *TerminalSurface) Size() (int, int) {
	s.refresh()
	return int(float64(s.cols) * s.cellWidth), int(float64(s.rows) * s.cellHeight)
}

// Clear implements systems.Surface.
func (s *TerminalSurface) Clear() {
	s.screen.Clear()
	if !s.refresh() {
		clear(s.alpha)
		clear(s.size)
	}
}

// refresh picks up terminal resizes and reports whether the cell buffers
// were reallocated.
func (s *TerminalSurface) refresh() bool {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows && s.alpha != nil {
		return false
	}

	s.cols, s.rows = cols, rows
	s.fit()
	s.alpha = make([]float64, cols*rows)
	s.size = make([]float64, cols*rows)
	return true
}

// DrawSprite implements systems.Surface.
func (s *TerminalSurface) DrawSprite(centerX, centerY, size, alpha float64) {
	if size <= 0 || alpha <= 0 || centerX < 0 || centerY < 0 {
		return
	}

	x := int(centerX / s.cellWidth)
	y := int(centerY / s.cellHeight)
	if x >= s.cols || y >= s.rows {
		return
	}

	i := y*s.cols + x
	s.alpha[i] += alpha * (1 - s.alpha[i])
	s.size[i] = max(s.size[i], size)

	s.screen.SetContent(x, y, s.glyph(s.size[i]), nil, tcell.StyleDefault.Foreground(s.color(s.alpha[i])))
}

func (s *TerminalSurface) fit() {
	if s.fitWidth <= 0 || s.fitHeight <= 0 || s.cols <= 0 || s.rows <= 0 {
		return
	}
	cell := max(DefaultCellWidth, s.fitWidth/float64(s.cols), s.fitHeight/(2*float64(s.rows)))
	s.cellWidth = cell
	s.cellHeight = 2 * cell
}

// glyph picks a character by how grown the particle is.
func (s *TerminalSurface) glyph(size float64) rune {
	switch t := size / s.spriteSize; {
	case t < 0.35:
		return '·'
	case t < 0.7:
		return '•'
	default:
		return '♥'
	}
}

func (s *TerminalSurface) color(alpha float64) tcell.Color {
	alpha = min(alpha, 1)
	return tcell.NewRGBColor(
		int32(float64(s.fill.R)*alpha),
		int32(float64(s.fill.G)*alpha),
		int32(float64(s.fill.B)*alpha),
	)
}
