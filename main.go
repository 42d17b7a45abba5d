package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/campfire-go/internal/config"
	"github.com/olivierh59500/campfire-go/internal/scene"
)

func main() {
	cfg := config.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-based)")
	flag.BoolVar(&cfg.FadeOut, "fade", false, "fade flames out as they rise")
	flag.BoolVar(&cfg.Debug, "debug", false, "show tick and particle counts")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "logical screen width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "logical screen height")
	flag.Parse()

	// Initialize scene
	s, err := scene.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("campfire: %dx%d, %d stars, flame every %.3fs", cfg.Width, cfg.Height, cfg.StarCount, cfg.SpawnInterval())

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Campfire")
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
