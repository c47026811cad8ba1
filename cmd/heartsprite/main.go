// Package main exports the generated heart particle sprite as a PNG file.
//
// Usage:
//
//	go run ./cmd/heartsprite [flags]
//
// Flags:
//
//	-o <path>       Output file (default heart.png)
//	-size <n>       Sprite edge length in pixels (default from config)
//	-color <hex>    Fill color (default from config)
//	-config <path>  Effect config file
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/decker502/heartfx/pkg/config"
	"github.com/decker502/heartfx/pkg/heart"
)

var (
	outputFlag = flag.String("o", "heart.png", "Output PNG file")
	sizeFlag   = flag.Int("size", 0, "Sprite size in pixels (0 = use config)")
	colorFlag  = flag.String("color", "", "Fill color #rrggbb (empty = use config)")
	configFlag = flag.String("config", "", "Effect config file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg := config.DefaultEffectConfig()
	if *configFlag != "" {
		loaded, err := config.LoadEffectConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	size := cfg.Particles.Size
	if *sizeFlag > 0 {
		size = *sizeFlag
	}

	fill := cfg.FillColor()
	if *colorFlag != "" {
		c, err := config.ParseHexColor(*colorFlag)
		if err != nil {
			return err
		}
		fill = c
	}

	sprite, err := heart.NewSprite(size, fill)
	if err != nil {
		return err
	}

	f, err := os.Create(*outputFlag)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *outputFlag, err)
	}
	defer f.Close()

	if err := png.Encode(f, sprite); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Wrote %s (%dx%d, shape bounds %v)", *outputFlag, size, size, heart.Bounds(sprite))
	return nil
}
