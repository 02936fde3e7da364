package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/Garsondee/Raycaster/internal/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var hold int
	cfg := game.DefaultConfig()
	flag.IntVar(&hold, "hold-ticks", 6, "ticks a move key stays down after its last repeat")
	flag.Float64Var(&cfg.FOVDeg, "fov", cfg.FOVDeg, "horizontal field of view in degrees")
	flag.Float64Var(&cfg.MinimapScale, "minimap-scale", 1.0/32, "minimap cells per world unit")
	flag.Parse()
	cfg.PlayerSize = 1

	gm := game.DefaultMap()
	if !gm.Enclosed() {
		log.Printf("warning: map perimeter has gaps; rays may leave the grid")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.HideCursor()

	w, _ := screen.Size()
	sim, err := game.NewSimulation(cfg, gm, game.DefaultPlayer(gm.CellSize), max(w, 1))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, sim, term.NewKeys(hold))
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
