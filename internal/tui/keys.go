package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/hersh/blockfall/internal/game"
)

// latchWindow is how long an action stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const latchWindow = 80 * time.Millisecond

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Down      key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Hold      key.Binding
	Pause     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x", "k"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "hard drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Hold, k.Pause}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.RotateCW, k.RotateCCW},
		{k.HardDrop, k.Hold},
		{k.Pause, k.Quit},
	}
}

func (k keyMap) actions() []struct {
	binding key.Binding
	action  game.Action
} {
	return []struct {
		binding key.Binding
		action  game.Action
	}{
		{k.Left, game.ActionLeft},
		{k.Right, game.ActionRight},
		{k.Down, game.ActionDown},
		{k.RotateCW, game.ActionRotateCW},
		{k.RotateCCW, game.ActionRotateCCW},
		{k.HardDrop, game.ActionHardDrop},
		{k.Hold, game.ActionHold},
		{k.Pause, game.ActionPause},
	}
}

// latch turns key events into per-frame levels.
type latch struct {
	window time.Duration
	last   [game.NumActions]time.Time
}

func newLatch(window time.Duration) *latch {
	return &latch{window: window}
}

func (l *latch) press(a game.Action, at time.Time) {
	l.last[a] = at
}

func (l *latch) levels(at time.Time) game.Input {
	var in game.Input
	for a, t := range l.last {
		in[a] = !t.IsZero() && at.Sub(t) < l.window
	}
	return in
}

func (l *latch) reset() {
	l.last = [game.NumActions]time.Time{}
}
