package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/atotto/clipboard"
)

// scriptStep is one scripted key transition applied before tick Tick runs.
type scriptStep struct {
	Tick int
	Ev   game.InputEvent
}

type sample struct {
	tick    int
	player  game.PlayerState
	stats   game.RayStats
	drawOps int
}

type runSummary struct {
	ticks      int
	samples    []sample
	minDist    float64
	maxDist    float64
	escaped    int
	vertical   int
	totalRays  int
	inputCount int
}

func main() {
	var ticks, columns, height, every int
	var script string
	var copyOut bool

	flag.IntVar(&ticks, "ticks", 200, "ticks to simulate")
	flag.IntVar(&columns, "columns", 320, "rays per sweep (screen width)")
	flag.IntVar(&height, "height", 200, "screen height used for projection")
	flag.IntVar(&every, "every", 20, "print a sample line every N ticks")
	flag.StringVar(&script, "script", "0:forward,40:forward:up,40:right,41:right,60:backward,100:backward:up,120:left",
		"comma-separated tick:key[:up] steps; keys are forward, backward, left, right")
	flag.BoolVar(&copyOut, "copy", false, "also copy the report to the clipboard")
	flag.Parse()

	if ticks <= 0 || columns <= 0 || height <= 0 {
		fmt.Println("error: -ticks, -columns and -height must be > 0")
		return
	}
	if every <= 0 {
		every = ticks
	}
	steps, err := parseScript(script)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	sum, sim, err := run(steps, ticks, columns, height, every)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	report := formatReport(sum, sim)
	fmt.Print(report)

	if copyOut {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("clipboard: %v\n", err)
		}
	}
}

// run drives a fresh simulation on the default map with a manual clock.
func run(steps []scriptStep, ticks, columns, height, every int) (runSummary, *game.Simulation, error) {
	cfg := game.DefaultConfig()
	gm := game.DefaultMap()
	sim, err := game.NewSimulation(cfg, gm, game.DefaultPlayer(gm.CellSize), columns)
	if err != nil {
		return runSummary{}, nil, err
	}
	surf := game.NewRecordSurface(columns, height)
	var clk game.ManualClock
	sim.Attach(&clk)

	sum := runSummary{ticks: ticks, minDist: math.Inf(1)}
	next := 0
	for t := 0; t < ticks; t++ {
		for next < len(steps) && steps[next].Tick <= t {
			sim.HandleInput(steps[next].Ev)
			sum.inputCount++
			next++
		}
		clk.Step(1)

		sim.Render(surf)
		st := game.SummarizeRays(sim.Rays())
		sum.minDist = math.Min(sum.minDist, st.MinDist)
		sum.maxDist = math.Max(sum.maxDist, st.MaxDist)
		sum.escaped += st.Escaped
		sum.vertical += st.Vertical
		sum.totalRays += st.Count
		if (t+1)%every == 0 || t == ticks-1 {
			sum.samples = append(sum.samples, sample{
				tick:    sim.TickCount(),
				player:  sim.Player,
				stats:   st,
				drawOps: len(surf.Ops),
			})
		}
	}
	return sum, sim, nil
}

// parseScript reads "tick:key[:up]" steps and returns them sorted by tick.
func parseScript(s string) ([]scriptStep, error) {
	var steps []scriptStep
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("script step %q: want tick:key[:up]", part)
		}
		tick, err := strconv.Atoi(fields[0])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script step %q: bad tick", part)
		}
		key, ok := keyByName(fields[1])
		if !ok {
			return nil, fmt.Errorf("script step %q: unknown key %q", part, fields[1])
		}
		down := true
		if len(fields) == 3 {
			if fields[2] != "up" {
				return nil, fmt.Errorf("script step %q: third field must be \"up\"", part)
			}
			down = false
		}
		steps = append(steps, scriptStep{Tick: tick, Ev: game.InputEvent{Key: key, Down: down}})
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	return steps, nil
}

func keyByName(name string) (game.Key, bool) {
	for _, k := range []game.Key{game.KeyForward, game.KeyBackward, game.KeyLeft, game.KeyRight} {
		if k.String() == name {
			return k, true
		}
	}
	return game.KeyNone, false
}

func formatReport(sum runSummary, sim *game.Simulation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Headless Raycast Report ===\n")
	fmt.Fprintf(&b, "ticks=%d inputs=%d\n\n", sum.ticks, sum.inputCount)
	fmt.Fprintf(&b, "%6s %9s %9s %8s %8s %6s %6s %6s\n",
		"tick", "x", "y", "heading", "centre", "vert%", "esc", "ops")
	for _, s := range sum.samples {
		fmt.Fprintf(&b, "%6d %9.2f %9.2f %8.1f %8.2f %6.1f %6d %6d\n",
			s.tick, s.player.X, s.player.Y, s.player.Heading*180/math.Pi,
			s.stats.Center.Distance, pct(s.stats.Vertical, s.stats.Count), s.stats.Escaped, s.drawOps)
	}
	fmt.Fprintf(&b, "\n--- aggregate ---\n")
	if sum.totalRays > 0 {
		fmt.Fprintf(&b, "rays=%d vertical=%.1f%% escaped=%d dist[min/max]=%.2f/%.2f\n",
			sum.totalRays, pct(sum.vertical, sum.totalRays), sum.escaped, sum.minDist, sum.maxDist)
	}
	b.WriteString("\n")
	b.WriteString(sim.FrameReport(10))
	return b.String()
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
