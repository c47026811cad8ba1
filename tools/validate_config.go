// validate_config 检查效果配置文件能否被加载
//
// 用法:
//
//	go run tools/validate_config.go [path...]
//
// 默认检查 data/heart.yaml。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/heartfx/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/heart.yaml"}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadEffectConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		p := cfg.Particles
		fmt.Printf("✅ %s\n", path)
		fmt.Printf("   容量=%d 寿命=%.2fs 发射率=%.1f/s\n", p.Length, p.Duration, p.Rate())
		fmt.Printf("   速度=%.0f 系数=%.2f 尺寸=%d 颜色=%s 启动延迟=%s\n",
			p.Velocity, p.Effect, p.Size, cfg.Color, cfg.StartupDelay)
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}
