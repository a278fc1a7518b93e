package termui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"neontanks/game"
)

// holdWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses only, never releases.
const holdWindow = 150 * time.Millisecond

// Action is what a terminal event means to the host
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleDebug
)

// Input turns tcell events into per-tick game.Input.
type Input struct {
	viewport Viewport

	up, down, left, right time.Time

	aimX, aimY float64
	fire       bool
	start      bool
}

// NewInput creates an input mapper aiming at the playfield center
func NewInput(v Viewport) *Input {
	return &Input{
		viewport: v,
		aimX:     v.Bounds.Width,
		aimY:     v.Bounds.Height / 2,
	}
}

// SetViewport updates the cell mapping after a resize
func (in *Input) SetViewport(v Viewport) {
	in.viewport = v
}

// Handle records one event received at now
func (in *Input) Handle(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev, now)
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		if cy < in.viewport.Rows {
			in.aimX, in.aimY = in.viewport.ToPlayfield(cx, cy)
		}
		if ev.Buttons()&tcell.Button1 != 0 {
			in.fire = true
		}
	}
	return ActionNone
}

func (in *Input) handleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyF1:
		return ActionToggleDebug
	case tcell.KeyEnter:
		in.start = true
	case tcell.KeyUp:
		in.up = now
	case tcell.KeyDown:
		in.down = now
	case tcell.KeyLeft:
		in.left = now
	case tcell.KeyRight:
		in.right = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.up = now
		case 's', 'S':
			in.down = now
		case 'a', 'A':
			in.left = now
		case 'd', 'D':
			in.right = now
		case ' ':
			in.fire = true
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Poll returns the input for the tick at now. One-shot requests (fire,
// start) are consumed.
func (in *Input) Poll(now time.Time) game.Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) <= holdWindow
	}
	out := game.Input{
		Keys: game.MovementKeys{
			Up:    held(in.up),
			Down:  held(in.down),
			Left:  held(in.left),
			Right: held(in.right),
		},
		AimX:  in.aimX,
		AimY:  in.aimY,
		Fire:  in.fire,
		Start: in.start,
	}
	in.fire = false
	in.start = false
	return out
}
