package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var width, height int
	cfg := game.DefaultConfig()
	flag.IntVar(&width, "width", 1200, "screen width in pixels (one ray per pixel column)")
	flag.IntVar(&height, "height", 600, "screen height in pixels")
	flag.Float64Var(&cfg.FOVDeg, "fov", cfg.FOVDeg, "horizontal field of view in degrees")
	flag.Float64Var(&cfg.MinimapScale, "minimap-scale", cfg.MinimapScale, "minimap pixels per world unit")
	flag.Parse()

	gm := game.DefaultMap()
	g, err := game.New(cfg, gm, game.DefaultPlayer(gm.CellSize), width, height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Raycaster")
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
