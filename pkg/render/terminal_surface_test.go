package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// cell 记录一个单元格的内容
type cell struct {
	r     rune
	style tcell.Style
}

// fakeScreen 测试用终端屏幕
type fakeScreen struct {
	cols, rows int
	clears     int
	cells      map[[2]int]cell
}

func newFakeScreen(cols, rows int) *fakeScreen {
	return &fakeScreen{cols: cols, rows: rows, cells: make(map[[2]int]cell)}
}

func (s *fakeScreen) Size() (int, int) { return s.cols, s.rows }

func (s *fakeScreen) Clear() {
	s.clears++
	clear(s.cells)
}

func (s *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

var testFill = color.RGBA{R: 200, G: 100, B: 40, A: 255}

func newTestTerminalSurface(t *testing.T, screen *fakeScreen) *TerminalSurface {
	t.Helper()
	surface, err := NewTerminalSurface(screen, testFill, 10)
	if err != nil {
		t.Fatalf("NewTerminalSurface() error: %v", err)
	}
	return surface
}

func TestNewTerminalSurface_InvalidSize(t *testing.T) {
	if _, err := NewTerminalSurface(newFakeScreen(10, 10), testFill, 0); !errors.Is(err, ErrMissingSprite) {
		t.Errorf("expected ErrMissingSprite, got %v", err)
	}
}

func TestTerminalSurface_Size(t *testing.T) {
	screen := newFakeScreen(80, 24)
	surface := newTestTerminalSurface(t, screen)

	w, h := surface.Size()
	if w != 320 || h != 192 {
		t.Errorf("Size() = %dx%d, want 320x192", w, h)
	}

	// 终端尺寸变化后立即生效
	screen.cols, screen.rows = 40, 10
	w, h = surface.Size()
	if w != 160 || h != 80 {
		t.Errorf("Size() after resize = %dx%d, want 160x80", w, h)
	}
}

func TestTerminalSurface_DrawSprite(t *testing.T) {
	screen := newFakeScreen(80, 24)
	surface := newTestTerminalSurface(t, screen)
	surface.Clear()

	surface.DrawSprite(10, 20, 2, 0.5)

	got, ok := screen.cells[[2]int{2, 2}]
	if !ok {
		t.Fatal("expected cell (2, 2) to be drawn")
	}
	if got.r != '·' {
		t.Errorf("glyph = %q, want '·'", got.r)
	}
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 50, 20))
	if got.style != want {
		t.Errorf("style = %v, want %v", got.style, want)
	}

	// 同一单元格叠加：0.5 over 0.5 = 0.75，尺寸取较大者
	surface.DrawSprite(11, 21, 9, 0.5)
	got = screen.cells[[2]int{2, 2}]
	if got.r != '♥' {
		t.Errorf("glyph after overlap = %q, want '♥'", got.r)
	}
	want = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 75, 30))
	if got.style != want {
		t.Errorf("composited style = %v, want %v", got.style, want)
	}
}

func TestTerminalSurface_Glyphs(t *testing.T) {
	tests := []struct {
		size float64
		want rune
	}{
		{1, '·'},
		{3.4, '·'},
		{5, '•'},
		{6.9, '•'},
		{7, '♥'},
		{10, '♥'},
	}

	for _, tt := range tests {
		screen := newFakeScreen(10, 10)
		surface := newTestTerminalSurface(t, screen)
		surface.Clear()

		surface.DrawSprite(1, 1, tt.size, 1)
		if got := screen.cells[[2]int{0, 0}].r; got != tt.want {
			t.Errorf("size %v: glyph = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestTerminalSurface_SkipsInvisible(t *testing.T) {
	screen := newFakeScreen(10, 10)
	surface := newTestTerminalSurface(t, screen)
	surface.Clear()

	surface.DrawSprite(5, 5, 0, 1)   // 零尺寸
	surface.DrawSprite(5, 5, 5, 0)   // 全透明
	surface.DrawSprite(-1, 5, 5, 1)  // 左侧越界
	surface.DrawSprite(500, 5, 5, 1) // 右侧越界
	surface.DrawSprite(5, 500, 5, 1) // 底部越界

	if len(screen.cells) != 0 {
		t.Errorf("expected no cells drawn, got %v", screen.cells)
	}
}

func TestTerminalSurface_ClearResetsComposite(t *testing.T) {
	screen := newFakeScreen(10, 10)
	surface := newTestTerminalSurface(t, screen)

	surface.Clear()
	surface.DrawSprite(1, 1, 10, 0.5)
	surface.Clear()
	surface.DrawSprite(1, 1, 2, 0.5)

	if screen.clears != 2 {
		t.Errorf("screen cleared %d times, want 2", screen.clears)
	}
	got := screen.cells[[2]int{0, 0}]
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 50, 20))
	if got.r != '·' || got.style != want {
		t.Errorf("cell after Clear = %q %v, want fresh composite", got.r, got.style)
	}
}

func TestTerminalSurface_FitExtent(t *testing.T) {
	screen := newFakeScreen(80, 24)
	surface := newTestTerminalSurface(t, screen)
	surface.FitExtent(640, 480)

	w, h := surface.Size()
	cw, ch := surface.CellSize()
	if cw != 10 || ch != 20 {
		t.Errorf("CellSize() = %vx%v, want 10x20", cw, ch)
	}
	if w != 800 || h != 480 {
		t.Errorf("Size() = %dx%d, want 800x480", w, h)
	}

	// 大终端不缩小到默认单元格以下
	screen.cols, screen.rows = 400, 200
	surface.Size()
	if cw, ch := surface.CellSize(); cw != DefaultCellWidth || ch != DefaultCellHeight {
		t.Errorf("CellSize() on large terminal = %vx%v, want default", cw, ch)
	}
}

// TestTerminalSurface_SimulationScreen 使用 tcell 模拟屏幕
func TestTerminalSurface_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	var _ CellScreen = screen

	surface, err := NewTerminalSurface(screen, testFill, 10)
	if err != nil {
		t.Fatalf("NewTerminalSurface() error: %v", err)
	}

	if w, h := surface.Size(); w != 320 || h != 192 {
		t.Errorf("Size() = %dx%d, want 320x192", w, h)
	}

	surface.Clear()
	surface.DrawSprite(10, 20, 10, 1)
	surface.DrawSprite(1e6, 1e6, 10, 1)
	screen.Show()
}
