package systems

// spriteDraw 记录一次 DrawSprite 调用
type spriteDraw struct {
	X, Y, Size, Alpha float64
}

// fakeSurface 测试用绘制表面，只记录调用
type fakeSurface struct {
	width, height int
	clears        int
	draws         []spriteDraw
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{width: width, height: height}
}

func (s *fakeSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.draws = s.draws[:0]
}

func (s *fakeSurface) DrawSprite(centerX, centerY, size, alpha float64) {
	s.draws = append(s.draws, spriteDraw{X: centerX, Y: centerY, Size: size, Alpha: alpha})
}
