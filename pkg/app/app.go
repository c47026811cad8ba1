// Package app 提供爱心粒子效果的 ebiten 应用包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/heartfx/pkg/config"
	"github.com/decker502/heartfx/pkg/embedded"
	"github.com/decker502/heartfx/pkg/game"
	"github.com/decker502/heartfx/pkg/heart"
	"github.com/decker502/heartfx/pkg/render"
	"github.com/decker502/heartfx/pkg/systems"
	"github.com/decker502/heartfx/pkg/utils"
)

// DefaultConfigPath 嵌入的默认效果配置
const DefaultConfigPath = "data/heart.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的效果配置文件，为空则使用嵌入的默认配置
	ConfigPath string
	// NoPersist 不读写 gdata 设置（降级模式）
	NoPersist bool
}

// App 是效果应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg      *config.EffectConfig
	effect   *systems.Effect
	surface  *render.EbitenSurface
	settings *game.SettingsManager

	// 启动延迟：等窗口尺寸稳定后再开始发射
	createdAt time.Time
	running   bool
	now       func() time.Time

	// 当前表面尺寸（由 Layout 更新）
	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化效果应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effectConfig, err := LoadEffectConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("效果配置加载失败: %w", err)
	}

	var gdataManager *gdata.Manager
	if !cfg.NoPersist {
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		gdataManager, err = gdata.Open(gdata.Config{AppName: "heartfx"})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
			gdataManager = nil
		}
	}

	settingsManager, err := game.NewSettingsManager(gdataManager, effectConfig)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	settingsManager.Apply(effectConfig)

	return newApp(effectConfig, settingsManager, time.Now)
}

// newApp 组装效果管线（测试可注入时钟）
func newApp(effectConfig *config.EffectConfig, settingsManager *game.SettingsManager, now func() time.Time) (*App, error) {
	sprite, err := heart.NewSprite(effectConfig.Particles.Size, effectConfig.FillColor())
	if err != nil {
		return nil, fmt.Errorf("粒子贴图生成失败: %w", err)
	}

	surface, err := render.NewEbitenSurfaceFromImage(sprite)
	if err != nil {
		return nil, err
	}

	effect, err := systems.NewEffect(effectConfig, nil)
	if err != nil {
		return nil, err
	}

	log.Printf("[App] Effect initialized: capacity=%d duration=%.2fs velocity=%.0f effect=%.2f",
		effectConfig.Particles.Length, effectConfig.Particles.Duration,
		effectConfig.Particles.Velocity, effectConfig.Particles.Effect)

	return &App{
		cfg:       effectConfig,
		effect:    effect,
		surface:   surface,
		settings:  settingsManager,
		createdAt: now(),
		now:       now,
		width:     effectConfig.Window.Width,
		height:    effectConfig.Window.Height,
	}, nil
}

// LoadEffectConfig 加载效果配置
// path 为空时读取嵌入的 data/heart.yaml
func LoadEffectConfig(path string) (*config.EffectConfig, error) {
	if path != "" {
		return config.LoadEffectConfig(path)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultConfigPath, err)
	}
	return config.ParseEffectConfig(data)
}

// Update 更新效果逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.handleWindow()
	a.handleTweaks()

	now := a.now()
	if !a.running {
		if now.Sub(a.createdAt) < a.cfg.StartupDelay {
			return nil
		}
		a.running = true
		log.Printf("[App] Render loop started (%dx%d)", a.width, a.height)
	}

	a.effect.Step(now, a.width, a.height)
	return nil
}

// handleWindow 处理全屏切换
func (a *App) handleWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
		a.saveSettings()
	}
}

// handleTweaks 处理参数调节热键
func (a *App) handleTweaks() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		a.AdjustEffect(-config.EffectStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		a.AdjustEffect(config.EffectStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		a.AdjustVelocity(-config.VelocityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		a.AdjustVelocity(config.VelocityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.ResetSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		a.ToggleDebug()
	}

	// 移动端没有键盘，用触摸区域代替热键
	if utils.IsMobile() {
		if pt, ok := utils.JustTapped(); ok {
			a.applyTap(tapActionAt(pt.X, pt.Y, a.width, a.height))
		}
	}
}

// ToggleDebug 切换调试信息显示
func (a *App) ToggleDebug() {
	a.settings.SetShowDebug(!a.settings.GetSettings().ShowDebug)
	a.saveSettings()
}

// AdjustEffect 调整加速度系数，只影响之后发射的粒子
func (a *App) AdjustEffect(delta float64) {
	a.settings.SetEffect(a.settings.GetSettings().Effect + delta)
	a.settings.Apply(a.cfg)
	a.saveSettings()
}

// AdjustVelocity 调整发射速度，只影响之后发射的粒子
func (a *App) AdjustVelocity(delta float64) {
	a.settings.SetVelocity(a.settings.GetSettings().Velocity + delta)
	a.settings.Apply(a.cfg)
	a.saveSettings()
}

// ResetSettings 恢复默认参数并清空粒子
func (a *App) ResetSettings() {
	a.settings.ResetToDefaults()
	a.settings.Apply(a.cfg)
	a.effect.Reset()
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制粒子
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	if !a.running {
		a.surface.Clear()
		return
	}

	drawn := a.effect.Renderer.Draw(a.surface)

	if a.settings.GetSettings().ShowDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS: %.1f  FPS: %.1f\nParticles: %d/%d (drawn %d)\nVelocity: %.0f  Effect: %.1f\n[ ] effect  - = velocity  R reset  D debug",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			a.effect.Pool.Len(), a.effect.Pool.Cap(), drawn,
			a.cfg.Particles.Velocity, a.cfg.Particles.Effect,
		), 4, 4)
	}
}

// Layout 记录当前窗口尺寸并将其作为逻辑屏幕尺寸
// 发射中心每帧根据最新尺寸计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// EffectConfig 返回当前效果配置
func (a *App) EffectConfig() *config.EffectConfig {
	return a.cfg
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Effect 返回效果管线
func (a *App) Effect() *systems.Effect {
	return a.effect
}

// IsRunning 返回渲染循环是否已经启动（启动延迟已过）
func (a *App) IsRunning() bool {
	return a.running
}
