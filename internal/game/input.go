package game

// Key is a front-end independent control label.
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// InputEvent is one discrete key transition.
type InputEvent struct {
	Key  Key
	Down bool // false = key released
}

// ApplyInput mutates p for a single event and reports whether it had any
// effect. Turning happens once per key-down event; move keys set the speed
// until released.
func ApplyInput(p *PlayerState, ev InputEvent, cfg Config) bool {
	if !ev.Down {
		switch ev.Key {
		case KeyForward, KeyBackward:
			p.SetSpeed(0)
			return true
		}
		return false
	}
	switch ev.Key {
	case KeyForward:
		p.SetSpeed(cfg.WalkSpeed)
	case KeyBackward:
		p.SetSpeed(-cfg.WalkSpeed)
	case KeyLeft:
		p.Rotate(-cfg.TurnStep())
	case KeyRight:
		p.Rotate(cfg.TurnStep())
	default:
		return false
	}
	return true
}
