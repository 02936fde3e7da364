package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Raycaster/internal/game"
)

// Keys translates tcell key events into game input events. Terminals deliver
// presses (with auto-repeat) but never releases, so a held move key is
// released once holdTicks ticks pass without a repeat.
type Keys struct {
	holdTicks int
	held      map[game.Key]int // ticks left before a synthetic release
}

// NewKeys returns a translator releasing move keys after holdTicks idle ticks.
func NewKeys(holdTicks int) *Keys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Keys{holdTicks: holdTicks, held: make(map[game.Key]int)}
}

// Translate maps a key press. ok is false for keys with no binding.
func (k *Keys) Translate(ev *tcell.EventKey) (game.InputEvent, bool) {
	label := bindingFor(ev)
	if label == game.KeyNone {
		return game.InputEvent{}, false
	}
	if label == game.KeyForward || label == game.KeyBackward {
		// Switching direction releases the opposite key first.
		for other := range k.held {
			if other != label {
				delete(k.held, other)
			}
		}
		k.held[label] = k.holdTicks
	}
	return game.InputEvent{Key: label, Down: true}, true
}

// Tick ages held keys by one tick and returns the releases that fall due.
func (k *Keys) Tick() []game.InputEvent {
	var out []game.InputEvent
	for key, left := range k.held {
		left--
		if left > 0 {
			k.held[key] = left
			continue
		}
		delete(k.held, key)
		out = append(out, game.InputEvent{Key: key, Down: false})
	}
	return out
}

// IsQuit reports whether ev asks the terminal front-end to exit.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func bindingFor(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyForward
	case tcell.KeyDown:
		return game.KeyBackward
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyForward
		case 's', 'S':
			return game.KeyBackward
		case 'a', 'A':
			return game.KeyLeft
		case 'd', 'D':
			return game.KeyRight
		}
	}
	return game.KeyNone
}
