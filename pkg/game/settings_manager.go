package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/heartfx/pkg/config"
)

// EffectSettings 用户调节后的效果设置
// 只保存可交互调整的参数，粒子状态本身从不持久化
type EffectSettings struct {
	// 发射参数
	Velocity float64 `yaml:"velocity"` // 发射速度（像素/秒）
	Effect   float64 `yaml:"effect"`   // 加速度系数

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool `yaml:"showDebug"`  // 是否显示调试信息
}

// DefaultSettings 返回以 cfg 为基础的默认设置
func DefaultSettings(cfg *config.EffectConfig) *EffectSettings {
	return &EffectSettings{
		Velocity:   cfg.Particles.Velocity,
		Effect:     cfg.Particles.Effect,
		Fullscreen: false,
		ShowDebug:  false,
	}
}

// SettingsManager 设置管理器
// 负责效果设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     EffectSettings // 配置文件给出的默认值（用于重置）
	settings     *EffectSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "effect"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - cfg: 效果配置，提供默认值
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: cfg 为 nil 时返回错误（加载失败不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager, cfg *config.EffectConfig) (*SettingsManager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: effect config is nil", config.ErrInvalidConfig)
	}

	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *DefaultSettings(cfg),
	}
	sm.settings = sm.defaultSettings()

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败或数值非法返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = sm.defaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = sm.defaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = sm.defaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 缺失的字段保留默认值
	loaded := sm.defaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = sm.defaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if !isFinite(loaded.Velocity) || !isFinite(loaded.Effect) {
		sm.settings = sm.defaultSettings()
		return fmt.Errorf("saved settings contain non-finite values")
	}
	loaded.Velocity = clamp(loaded.Velocity, config.MinVelocity, config.MaxVelocity)
	loaded.Effect = clamp(loaded.Effect, config.MinEffect, config.MaxEffect)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *EffectSettings {
	return sm.settings
}

// Apply 将当前设置写入粒子参数
//
// 粒子池和发射器共享 cfg.Particles，修改只影响之后发射的粒子。
func (sm *SettingsManager) Apply(cfg *config.EffectConfig) {
	cfg.Particles.Velocity = sm.settings.Velocity
	cfg.Particles.Effect = sm.settings.Effect
}

// SetVelocity 设置发射速度
//
// 值会被限制在 [MinVelocity, MaxVelocity] 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetVelocity(velocity float64) {
	sm.settings.Velocity = clamp(velocity, config.MinVelocity, config.MaxVelocity)
}

// SetEffect 设置加速度系数
//
// 值会被限制在 [MinEffect, MaxEffect] 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEffect(effect float64) {
	sm.settings.Effect = clamp(effect, config.MinEffect, config.MaxEffect)
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowDebug 设置调试信息显示
func (sm *SettingsManager) SetShowDebug(enabled bool) {
	sm.settings.ShowDebug = enabled
}

// ResetToDefaults 恢复配置文件中的默认值
func (sm *SettingsManager) ResetToDefaults() {
	sm.settings = sm.defaultSettings()
}

func (sm *SettingsManager) defaultSettings() *EffectSettings {
	s := sm.defaults
	return &s
}

// clamp 将数值限制在 [lo, hi] 范围内
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
