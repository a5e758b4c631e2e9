package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"kaleido/kaleido"
)

// configFile is picked up from the working directory when present.
const configFile = "kaleido.yaml"

func main() {
	cfg := kaleido.DefaultConfig()
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := kaleido.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("load %s: %v", configFile, err)
		}
		cfg = loaded
	}

	g := kaleido.NewGame(cfg)
	defer g.Shutdown()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Kaleido")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
