package game

import "time"

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionHold
	ActionPause

	NumActions
)

// Input is one frame's key levels, true while the key is down.
type Input [NumActions]bool

// With returns a copy of in with the given actions held.
func (in Input) With(actions ...Action) Input {
	for _, a := range actions {
		in[a] = true
	}
	return in
}

// keyState keeps the current and previous frame's levels plus the last time
// each repeating action fired.
type keyState struct {
	cur, prev Input
	lastFire  [NumActions]time.Duration
}

// advance must run exactly once per tick.
func (k *keyState) advance(next Input) {
	k.prev = k.cur
	k.cur = next
}

func (k *keyState) pressed(a Action) bool {
	return k.cur[a] && !k.prev[a]
}

// repeat reports whether a held action fires at time now: always on the
// press edge, then again once every interval while held.
func (k *keyState) repeat(a Action, now, interval time.Duration) bool {
	if !k.cur[a] {
		return false
	}
	if !k.prev[a] || now-k.lastFire[a] > interval {
		k.lastFire[a] = now
		return true
	}
	return false
}
