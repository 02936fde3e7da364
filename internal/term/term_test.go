package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Raycaster/internal/game"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurface_FillRectCellCentres(t *testing.T) {
	screen := newScreen(t, 10, 6)
	surf := NewSurface(screen)
	red := color.RGBA{R: 255, A: 255}
	want := tcell.StyleDefault.Background(toTcell(red))

	// Covers centres of columns 1..3 and rows 1..2.
	surf.FillRect(0.6, 0.7, 3, 2.2, red)

	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			_, _, st, _ := screen.GetContent(x, y)
			inside := x >= 1 && x <= 3 && y >= 1 && y <= 2
			if (st == want) != inside {
				t.Fatalf("cell (%d,%d): filled=%v, want %v", x, y, st == want, inside)
			}
		}
	}
}

func TestSurface_FillRectClampsToScreen(t *testing.T) {
	screen := newScreen(t, 4, 4)
	surf := NewSurface(screen)
	blue := color.RGBA{B: 255, A: 255}
	surf.FillRect(-10, -10, 100, 100, blue) // must not panic
	_, _, st, _ := screen.GetContent(3, 3)
	if st != tcell.StyleDefault.Background(toTcell(blue)) {
		t.Fatal("oversized rect should cover the whole screen")
	}
}

func TestSurface_DrawLineKeepsBackground(t *testing.T) {
	screen := newScreen(t, 8, 4)
	surf := NewSurface(screen)
	bg := color.RGBA{G: 128, A: 255}
	fg := color.RGBA{R: 255, G: 166, A: 255}
	surf.Clear(bg)
	surf.DrawLine(0, 1, 7.9, 1, fg)

	want := tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(fg))
	for x := 0; x < 8; x++ {
		r, _, st, _ := screen.GetContent(x, 1)
		if r != lineRune || st != want {
			t.Fatalf("cell (%d,1): rune %q style mismatch", x, r)
		}
	}
	if r, _, _, _ := screen.GetContent(0, 0); r == lineRune {
		t.Fatal("line leaked into row 0")
	}
}

func TestSurface_DrawLineOffScreen(t *testing.T) {
	screen := newScreen(t, 4, 4)
	NewSurface(screen).DrawLine(-5, -5, 10, 10, color.White) // must not panic
	if r, _, _, _ := screen.GetContent(2, 2); r != lineRune {
		t.Fatal("diagonal should pass through (2,2)")
	}
}

func TestKeys_TranslateBindings(t *testing.T) {
	k := NewKeys(3)
	cases := []struct {
		ev   *tcell.EventKey
		want game.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyForward},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), game.KeyBackward},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), game.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.KeyRight},
	}
	for _, tc := range cases {
		ev, ok := k.Translate(tc.ev)
		if !ok || ev.Key != tc.want || !ev.Down {
			t.Fatalf("expected %v down, got %+v ok=%v", tc.want, ev, ok)
		}
	}
	if _, ok := k.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Fatal("unbound rune should not translate")
	}
}

func TestKeys_ReleaseAfterHold(t *testing.T) {
	k := NewKeys(3)
	k.Translate(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if len(k.Tick()) != 0 || len(k.Tick()) != 0 {
		t.Fatal("key released too early")
	}
	rel := k.Tick()
	if len(rel) != 1 || rel[0] != (game.InputEvent{Key: game.KeyForward, Down: false}) {
		t.Fatalf("expected forward release on the third tick, got %+v", rel)
	}
	if len(k.Tick()) != 0 {
		t.Fatal("release should only be reported once")
	}
}

func TestKeys_RepeatExtendsHold(t *testing.T) {
	k := NewKeys(2)
	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	k.Translate(up)
	k.Tick()
	k.Translate(up)
	if len(k.Tick()) != 0 {
		t.Fatal("auto-repeat should keep the key held")
	}
	if len(k.Tick()) != 1 {
		t.Fatal("key should release once repeats stop")
	}
}

func TestKeys_TurnKeysNeverHeld(t *testing.T) {
	k := NewKeys(1)
	k.Translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if rel := k.Tick(); len(rel) != 0 {
		t.Fatalf("turn keys need no release, got %+v", rel)
	}
}

func TestKeys_DirectionSwitchDropsOpposite(t *testing.T) {
	k := NewKeys(5)
	k.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	k.Translate(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	for i := 0; i < 4; i++ {
		if rel := k.Tick(); len(rel) != 0 {
			t.Fatalf("tick %d: unexpected release %+v", i, rel)
		}
	}
	rel := k.Tick()
	if len(rel) != 1 || rel[0].Key != game.KeyBackward {
		t.Fatalf("only backward should be released, got %+v", rel)
	}
}

func TestIsQuit(t *testing.T) {
	quit := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quit {
		if !IsQuit(ev) {
			t.Fatalf("expected quit for %v", ev.Name())
		}
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("'w' should not quit")
	}
}
