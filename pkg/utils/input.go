// Package utils 提供跨平台辅助函数：平台检测、存储目录准备和指针输入
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JustTapped 返回本帧新按下的指针位置（逻辑屏幕坐标）
// 触摸优先于鼠标左键；多点触摸时只取第一个
func JustTapped() (image.Point, bool) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return image.Pt(x, y), true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return image.Pt(ebiten.CursorPosition()), true
	}

	return image.Point{}, false
}
