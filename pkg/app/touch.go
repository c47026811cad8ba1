package app

import "github.com/decker502/heartfx/pkg/config"

// tapAction 移动端触摸调节动作
type tapAction int

const (
	tapNone tapAction = iota
	tapEffectDown
	tapEffectUp
	tapVelocityDown
	tapVelocityUp
	tapToggleDebug
	tapReset
)

// tapActionAt 将点击位置映射为调节动作
//
// 屏幕分成 3 列 × 2 行：
//
//	effect-   | debug | effect+
//	velocity- | reset | velocity+
//
// 移动端没有键盘，用它代替 [ ] - = D R 热键。
func tapActionAt(x, y, width, height int) tapAction {
	if width <= 0 || height <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return tapNone
	}

	col := x * 3 / width
	top := y < height/2

	switch {
	case col == 0 && top:
		return tapEffectDown
	case col == 0:
		return tapVelocityDown
	case col == 2 && top:
		return tapEffectUp
	case col == 2:
		return tapVelocityUp
	case top:
		return tapToggleDebug
	default:
		return tapReset
	}
}

// applyTap 执行触摸调节动作
func (a *App) applyTap(action tapAction) {
	switch action {
	case tapEffectDown:
		a.AdjustEffect(-config.EffectStep)
	case tapEffectUp:
		a.AdjustEffect(config.EffectStep)
	case tapVelocityDown:
		a.AdjustVelocity(-config.VelocityStep)
	case tapVelocityUp:
		a.AdjustVelocity(config.VelocityStep)
	case tapToggleDebug:
		a.ToggleDebug()
	case tapReset:
		a.ResetSettings()
	}
}
