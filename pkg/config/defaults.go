package config

import "time"

// 默认粒子参数
const (
	// DefaultParticleLength 粒子池容量
	DefaultParticleLength = 2200

	// DefaultParticleDuration 粒子寿命（秒）
	DefaultParticleDuration = 2.0

	// DefaultParticleVelocity 发射速度（像素/秒）
	DefaultParticleVelocity = 120.0

	// DefaultParticleEffect 加速度系数
	DefaultParticleEffect = -1.2

	// DefaultParticleSize 粒子贴图边长（像素）
	DefaultParticleSize = 14

	// DefaultParticleColor 粒子填充色
	DefaultParticleColor = "#ea80b0"

	// DefaultStartupDelay 启动延迟
	DefaultStartupDelay = 10 * time.Millisecond
)

// 窗口配置
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Pink Heart"
)

// 交互调节步长
const (
	// EffectStep 每次按键调整的加速度系数
	EffectStep = 0.1

	// VelocityStep 每次按键调整的发射速度（像素/秒）
	VelocityStep = 10.0
)

// 交互调节范围
const (
	MinVelocity = 0.0
	MaxVelocity = 1000.0
	MinEffect   = -5.0
	MaxEffect   = 5.0
)
