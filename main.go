package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"nightdrift/engine"
)

func main() {
	config := engine.DefaultConfig()
	e, err := engine.New(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("nightdrift")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		log.Fatal(err)
	}
}
