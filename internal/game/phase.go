package game

type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseLineClear
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseLineClear:
		return "line-clear"
	case PhaseGameOver:
		return "game-over"
	}
	return "invalid"
}

var phaseTransitions = map[Phase][]Phase{
	PhaseRunning:   {PhasePaused, PhaseLineClear, PhaseGameOver},
	PhasePaused:    {PhaseRunning},
	PhaseLineClear: {PhaseRunning, PhaseGameOver},
	PhaseGameOver:  {},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to Phase) bool {
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
