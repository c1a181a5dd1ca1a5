package game

import (
	"fmt"
	"time"
)

// Session owns the whole simulation: board, falling piece, queue, hold slot,
// timers and phase. It is not safe for concurrent use; drive it from one
// goroutine, one Tick per frame.
type Session struct {
	cfg Config

	board *Board
	queue *Queue

	piece      Piece
	hasPiece   bool
	pieceState PieceState

	held    PieceType
	hasHeld bool
	canHold bool

	phase Phase
	keys  keyState
	now   time.Duration

	gravityInterval time.Duration
	gravityTimer    time.Duration
	placementTimer  time.Duration
	softDropping    bool

	clearTimer   time.Duration
	clearingRows []int

	unpausing    bool
	unpauseTimer time.Duration
	unpauseLeft  int

	lines int
	level int
	score int
}

// NewSession validates cfg and spawns the first piece.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:             cfg,
		board:           NewBoard(cfg.Width, cfg.Height),
		queue:           NewQueue(NewBag(cfg.Seed), cfg.QueueLength),
		canHold:         true,
		phase:           PhaseRunning,
		gravityInterval: cfg.GravityInterval,
		level:           1,
	}
	s.spawn()
	return s, nil
}

// Tick advances the session by one frame. in holds the key levels sampled
// for this frame; the previous frame's levels are kept for edge detection.
func (s *Session) Tick(elapsed time.Duration, in Input) {
	s.keys.advance(in)
	s.now += elapsed

	switch s.phase {
	case PhaseRunning:
		s.updateRunning(elapsed)
	case PhasePaused:
		s.updatePaused(elapsed)
	case PhaseLineClear:
		s.updateLineClear(elapsed)
	case PhaseGameOver:
	default:
		panic(fmt.Sprintf("game: invalid phase %d", int(s.phase)))
	}
}

func (s *Session) setPhase(to Phase) {
	if !CanTransition(s.phase, to) {
		panic(fmt.Sprintf("game: illegal phase transition %s -> %s", s.phase, to))
	}
	s.phase = to
}

func (s *Session) updateRunning(elapsed time.Duration) {
	k := &s.keys
	if k.pressed(ActionPause) {
		s.unpausing = false
		s.setPhase(PhasePaused)
		return
	}

	if k.repeat(ActionLeft, s.now, s.cfg.ShiftRepeat) {
		s.RequestMove(-1, 0)
	}
	if k.repeat(ActionRight, s.now, s.cfg.ShiftRepeat) {
		s.RequestMove(1, 0)
	}
	if k.repeat(ActionDown, s.now, s.cfg.SoftDropRepeat) {
		s.RequestMove(0, 1)
		s.softDropping = true
		s.gravityTimer = s.gravityInterval
	}
	if k.repeat(ActionRotateCW, s.now, s.cfg.RotateRepeat) {
		s.RequestRotate(1)
		s.gravityTimer = s.gravityInterval
	}
	if k.repeat(ActionRotateCCW, s.now, s.cfg.RotateRepeat) {
		s.RequestRotate(-1)
		s.gravityTimer = s.gravityInterval
	}

	if k.pressed(ActionHardDrop) {
		s.HardDrop()
		return
	}
	if k.pressed(ActionHold) {
		s.Hold()
		if s.phase != PhaseRunning {
			return
		}
	}

	s.ResolveFrame(elapsed)
}

func (s *Session) updatePaused(elapsed time.Duration) {
	if s.keys.pressed(ActionPause) {
		s.unpausing = true
		s.unpauseTimer = s.cfg.UnpauseStep
		s.unpauseLeft = s.cfg.UnpauseSteps
	}
	if !s.unpausing {
		return
	}

	if s.unpauseLeft > 0 {
		s.unpauseTimer -= elapsed
		if s.unpauseTimer <= 0 {
			s.unpauseTimer = s.cfg.UnpauseStep
			s.unpauseLeft--
		}
	}
	if s.unpauseLeft <= 0 {
		s.unpausing = false
		s.setPhase(PhaseRunning)
	}
}

func (s *Session) updateLineClear(elapsed time.Duration) {
	s.clearTimer -= elapsed
	if s.clearTimer > 0 {
		return
	}

	n := s.board.ClearRows(s.clearingRows)
	s.clearingRows = nil
	s.addLines(n)

	s.setPhase(PhaseRunning)
	s.spawn()
}

// addLines credits n cleared lines. Every LinesPerLevel lines the level goes
// up and the gravity interval shrinks to 2/3, in whole milliseconds.
func (s *Session) addLines(n int) {
	s.score += lineScore(n) * s.level

	for i := 0; i < n; i++ {
		s.lines++
		if s.lines%s.cfg.LinesPerLevel != 0 {
			continue
		}
		s.level++
		ms := s.gravityInterval.Milliseconds() * 2 / 3
		s.gravityInterval = max(time.Duration(ms)*time.Millisecond, s.cfg.MinGravityInterval)
	}
}

func lineScore(lines int) int {
	switch lines {
	case 0:
		return 0
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	}
	return 800
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) PieceState() PieceState {
	return s.pieceState
}

func (s *Session) Lines() int {
	return s.lines
}

func (s *Session) Level() int {
	return s.level
}

func (s *Session) Score() int {
	return s.score
}

// GravityInterval is the current time between automatic drops.
func (s *Session) GravityInterval() time.Duration {
	return s.gravityInterval
}

func (s *Session) Config() Config {
	return s.cfg
}
