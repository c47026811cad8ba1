package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置错误（容量、时长等非法取值）
//
// 所有校验失败都包装此错误，调用方可用 errors.Is 判断。
var ErrInvalidConfig = errors.New("invalid effect config")

// EffectConfig 爱心粒子效果配置
//
// 配置文件位置: data/heart.yaml（嵌入二进制），也可通过 --config 指定磁盘文件。
// 启动时加载一次，之后以指针形式传给粒子池和发射器。
type EffectConfig struct {
	// Particles 粒子参数
	Particles ParticleSettings `yaml:"particles"`

	// Color 粒子贴图填充色，格式 "#rrggbb"
	Color string `yaml:"color"`

	// StartupDelay 首帧前的等待时间，让窗口尺寸稳定下来
	StartupDelay time.Duration `yaml:"startupDelay"`

	// Window 窗口设置
	Window WindowSettings `yaml:"window"`
}

// ParticleSettings 粒子池与发射参数
type ParticleSettings struct {
	// Length 粒子池容量（槽位数）
	Length int `yaml:"length"`

	// Duration 粒子寿命（秒）
	Duration float64 `yaml:"duration"`

	// Velocity 发射速度（像素/秒）
	Velocity float64 `yaml:"velocity"`

	// Effect 加速度系数，通常为负值（减速并回卷）
	Effect float64 `yaml:"effect"`

	// Size 粒子贴图边长（像素）
	Size int `yaml:"size"`
}

// WindowSettings 窗口设置
type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DefaultEffectConfig 返回默认配置
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Particles: ParticleSettings{
			Length:   DefaultParticleLength,
			Duration: DefaultParticleDuration,
			Velocity: DefaultParticleVelocity,
			Effect:   DefaultParticleEffect,
			Size:     DefaultParticleSize,
		},
		Color:        DefaultParticleColor,
		StartupDelay: DefaultStartupDelay,
		Window: WindowSettings{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
	}
}

// LoadEffectConfig 从磁盘加载效果配置
//
// 参数:
//   - path: 配置文件路径（如 "data/heart.yaml"）
//
// 返回:
//   - *EffectConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadEffectConfig(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config: %w", err)
	}

	cfg, err := ParseEffectConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseEffectConfig 解析 YAML 数据
//
// 未出现的字段保留默认值。
func ParseEffectConfig(data []byte) (*EffectConfig, error) {
	cfg := DefaultEffectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 容量或寿命为 0 属于配置错误，必须在构造阶段失败，
// 而不是在运行时除零或访问空缓冲区。
func (c *EffectConfig) Validate() error {
	if err := c.Particles.Validate(); err != nil {
		return err
	}

	if _, err := ParseHexColor(c.Color); err != nil {
		return err
	}

	if c.StartupDelay < 0 {
		return fmt.Errorf("%w: startupDelay must be >= 0, got %s", ErrInvalidConfig, c.StartupDelay)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}

	return nil
}

// Validate 验证粒子参数
func (s *ParticleSettings) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("%w: particles.length must be > 0, got %d", ErrInvalidConfig, s.Length)
	}
	if s.Duration <= 0 || math.IsInf(s.Duration, 0) || math.IsNaN(s.Duration) {
		return fmt.Errorf("%w: particles.duration must be a positive number, got %v", ErrInvalidConfig, s.Duration)
	}
	if math.IsInf(s.Velocity, 0) || math.IsNaN(s.Velocity) {
		return fmt.Errorf("%w: particles.velocity must be finite, got %v", ErrInvalidConfig, s.Velocity)
	}
	if math.IsInf(s.Effect, 0) || math.IsNaN(s.Effect) {
		return fmt.Errorf("%w: particles.effect must be finite, got %v", ErrInvalidConfig, s.Effect)
	}
	if s.Size <= 0 {
		return fmt.Errorf("%w: particles.size must be > 0, got %d", ErrInvalidConfig, s.Size)
	}
	return nil
}

// Rate 返回每秒发射的粒子数
//
// 取容量/寿命，使稳态下的存活粒子数与容量相当。
func (s *ParticleSettings) Rate() float64 {
	return float64(s.Length) / s.Duration
}

// FillColor 返回解析后的贴图填充色
//
// 配置已通过 Validate 时不会失败；否则返回默认颜色。
func (c *EffectConfig) FillColor() color.RGBA {
	col, err := ParseHexColor(c.Color)
	if err != nil {
		col, _ = ParseHexColor(DefaultParticleColor)
	}
	return col
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: color %q must be #rrggbb", ErrInvalidConfig, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
