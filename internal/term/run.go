package term

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Raycaster/internal/game"
)

// Run drives sim on a ticker and paints every tick to screen until ctx is
// cancelled or the user quits. Key events are read on a separate goroutine but
// applied on the clock goroutine, between ticks.
func Run(ctx context.Context, screen tcell.Screen, sim *game.Simulation, keys *Keys) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surf := NewSurface(screen)
	clk := game.NewTickerClock(64)
	clk.OnTick(sim.Config.TickPeriod, func() {
		for _, ev := range keys.Tick() {
			sim.HandleInput(ev)
		}
		sim.Tick()
		sim.Render(surf)
		screen.Show()
	})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(e) {
					cancel()
					return
				}
				_ = clk.Post(ctx, func() {
					if in, ok := keys.Translate(e); ok {
						sim.HandleInput(in)
					}
				})
			case *tcell.EventResize:
				_ = clk.Post(ctx, func() {
					if w, _ := screen.Size(); w > 0 {
						sim.Columns = w
					}
					screen.Sync()
				})
			}
		}
	}()

	err := clk.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
