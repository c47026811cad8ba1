// Package main runs the heart particle effect in a terminal.
//
// Usage:
//
//	go run ./cmd/heartterm [flags]
//
// Flags:
//
//	--config <path>   Effect config file (default: built-in settings)
//	--fps <n>         Frames per second (default 30)
//	--verbose         Log to heartterm.log
//
// Controls:
//
//	Q/Escape/Ctrl+C   Quit
//	R                 Clear all live particles
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/heartfx/pkg/config"
	"github.com/decker502/heartfx/pkg/heart"
	"github.com/decker502/heartfx/pkg/loop"
	"github.com/decker502/heartfx/pkg/render"
	"github.com/decker502/heartfx/pkg/systems"
)

// fitMargin leaves room for particles drifting outward from the curve.
const fitMargin = 1.4

var (
	configFlag  = flag.String("config", "", "Effect config file (default: built-in settings)")
	fpsFlag     = flag.Int("fps", 30, "Frames per second")
	verboseFlag = flag.Bool("verbose", false, "Write logs to heartterm.log")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 终端被 tcell 占用，日志写入文件或丢弃
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("heartterm.log")
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultEffectConfig()
	if *configFlag != "" {
		loaded, err := config.LoadEffectConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *fpsFlag <= 0 {
		return fmt.Errorf("%w: fps must be > 0, got %d", config.ErrInvalidConfig, *fpsFlag)
	}

	effect, err := systems.NewEffect(cfg, nil)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	surface, err := render.NewTerminalSurface(screen, cfg.FillColor(), cfg.Particles.Size)
	if err != nil {
		return err
	}
	w, h := heart.Extent()
	surface.FitExtent(w*fitMargin, h*fitMargin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// PollEvent 阻塞，放在单独的 goroutine；事件在帧开头统一处理
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("[heartterm] starting: capacity=%d fps=%d", cfg.Particles.Length, *fpsFlag)

	return loop.Run(ctx, loop.Options{
		Interval:     time.Second / time.Duration(*fpsFlag),
		StartupDelay: cfg.StartupDelay,
	}, func(now time.Time) error {
		if err := handleEvents(screen, effect, events); err != nil {
			return err
		}
		effect.Frame(now, surface)
		screen.Show()
		return nil
	})
}

// handleEvents drains pending terminal events without blocking.
func handleEvents(screen tcell.Screen, effect *systems.Effect, events <-chan tcell.Event) error {
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
					return loop.ErrStop
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
					effect.Reset()
				}
			}
		default:
			return nil
		}
	}
}
