package game

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in Update frames, mimicking OS auto-repeat on held keys.
const (
	keyRepeatDelay    = 24
	keyRepeatInterval = 4
)

// toastFrames is how long a status message stays on screen.
const toastFrames = 120

// keyBindings maps ebiten keys to control labels.
var keyBindings = []struct {
	key   ebiten.Key
	label Key
}{
	{ebiten.KeyW, KeyForward},
	{ebiten.KeyArrowUp, KeyForward},
	{ebiten.KeyS, KeyBackward},
	{ebiten.KeyArrowDown, KeyBackward},
	{ebiten.KeyA, KeyLeft},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyD, KeyRight},
	{ebiten.KeyArrowRight, KeyRight},
}

// Game is the ebiten front-end. ebiten calls Update at its own TPS; Game
// converts that into fixed-period simulation ticks.
type Game struct {
	sim    *Simulation
	width  int
	height int

	tickAccum time.Duration // frame time not yet consumed by a simulation tick
	showHUD   bool
	hud       *hudFont

	toast      string
	toastTimer int
}

// New builds a Game with one ray per horizontal screen pixel.
func New(cfg Config, gm *GridMap, p PlayerState, width, height int) (*Game, error) {
	sim, err := NewSimulation(cfg, gm, p, width)
	if err != nil {
		return nil, err
	}
	if !gm.Enclosed() {
		log.Printf("warning: map perimeter has gaps; rays may leave the grid")
	}
	hud, err := newHUDFont()
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	g := &Game{
		sim:     sim,
		width:   width,
		height:  height,
		showHUD: true,
		hud:     hud,
	}
	// Sweep once so the first Draw has rays even before the first tick fires.
	sim.rays = NewCaster(gm, sim.Player).SweepField(sim.Player.Heading, cfg.FOV(), sim.Columns)
	return g, nil
}

// Simulation exposes the underlying simulation context.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

func (g *Game) Update() error {
	g.handleInput()

	g.tickAccum += time.Second / time.Duration(ebiten.TPS())
	for g.tickAccum >= g.sim.Config.TickPeriod {
		g.tickAccum -= g.sim.Config.TickPeriod
		g.sim.Tick()
	}
	if g.toastTimer > 0 {
		g.toastTimer--
	}
	return nil
}

// handleInput turns ebiten key state into discrete InputEvents.
func (g *Game) handleInput() {
	for _, b := range keyBindings {
		if keyRepeated(b.key) {
			g.sim.HandleInput(InputEvent{Key: b.label, Down: true})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.sim.HandleInput(InputEvent{Key: b.label, Down: false})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
}

// keyRepeated reports a key-down on the press frame and then at a steady
// interval while the key stays held.
func keyRepeated(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func (g *Game) copyReport() {
	report := g.sim.FrameReport(20)
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("copy frame report: %v", err)
		g.setToast("clipboard unavailable")
		return
	}
	g.setToast("frame report copied")
}

func (g *Game) setToast(msg string) {
	g.toast = msg
	g.toastTimer = toastFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(newImageSurface(screen))
	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.toastTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.toast, 8, g.height-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
