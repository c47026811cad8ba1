package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/heartfx/pkg/app"
	"github.com/decker502/heartfx/pkg/embedded"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag    = flag.String("config", "", "Effect config file (default: embedded data/heart.yaml)")
	noPersistFlag = flag.Bool("no-persist", false, "Do not load or save tweaked settings")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		NoPersist:  *noPersistFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	cfg := gameApp.EffectConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	// Start the render loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
