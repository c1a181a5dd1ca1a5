package game

import "time"

type offset struct{ dx, dy int }

// kickOffsets are tried in order after a rotation, each relative to the
// position the piece had before rotating. The zero offset is the plain
// rotation.
var kickOffsets = [...]offset{
	{0, 0},
	{1, 0},
	{2, 0},
	{-1, 0},
	{-2, 0},
	{0, -1},
	{0, -2},
}

// RequestMove queues a translation for the next ResolveFrame.
func (s *Session) RequestMove(dx, dy int) {
	if !s.hasPiece {
		return
	}
	s.piece.dx += dx
	s.piece.dy += dy
}

// RequestRotate queues a rotation, +1 clockwise and -1 counter-clockwise.
func (s *Session) RequestRotate(dr int) {
	if !s.hasPiece {
		return
	}
	s.piece.dr += dr
}

// ResolveFrame applies gravity and the pending deltas, then advances the lock
// delay. It may lock the piece, after which the session is either clearing
// lines, running with a new piece, or over.
func (s *Session) ResolveFrame(elapsed time.Duration) {
	if s.phase != PhaseRunning || !s.hasPiece {
		return
	}

	s.gravityTimer -= elapsed
	if s.gravityTimer <= 0 {
		s.gravityTimer = s.gravityInterval
		s.piece.dy++
	}

	dx, dy, dr := s.piece.dx, s.piece.dy, s.piece.dr
	s.piece.dx, s.piece.dy, s.piece.dr = 0, 0, 0

	moved := false
	if dx != 0 || dy != 0 {
		if s.tryMove(dx, dy) {
			moved = true
			if s.softDropping && dy > 0 {
				s.score += dy
			}
		}
	}
	if dr != 0 && s.tryRotate(dr) {
		moved = true
	}
	s.softDropping = false

	if moved {
		s.placementTimer = s.cfg.PlacementDelay
	}

	if !s.resting() {
		s.pieceState = PieceFalling
		s.placementTimer = s.cfg.PlacementDelay
		return
	}

	s.pieceState = PieceLocking
	s.placementTimer -= elapsed
	if s.placementTimer <= 0 {
		s.lockPiece()
	}
}

func (s *Session) tryMove(dx, dy int) bool {
	p := &s.piece
	if !s.board.Fits(p.Mask(), p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

func (s *Session) tryRotate(dr int) bool {
	p := &s.piece
	next := wrapRotation(p.Rotation + dr)
	mask := Shape(p.Type, next)
	for _, k := range kickOffsets {
		if s.board.Fits(mask, p.X+k.dx, p.Y+k.dy) {
			p.Rotation = next
			p.X += k.dx
			p.Y += k.dy
			return true
		}
	}
	return false
}

// resting reports whether any filled cell sits on the floor or a solid cell.
func (s *Session) resting() bool {
	p := s.piece
	return !s.board.Fits(p.Mask(), p.X, p.Y+1)
}

// HardDrop drops the piece as far as it goes and locks it at once. It
// returns the number of rows dropped.
func (s *Session) HardDrop() int {
	if s.phase != PhaseRunning || !s.hasPiece {
		return 0
	}
	s.piece.dx, s.piece.dy, s.piece.dr = 0, 0, 0

	rows := 0
	for s.tryMove(0, 1) {
		rows++
	}
	s.score += 2 * rows
	s.lockPiece()
	return rows
}

// Hold stashes the falling piece. With an empty slot the next queued piece
// takes its place, otherwise the held piece swaps in. Only one hold is
// allowed per locked piece.
func (s *Session) Hold() bool {
	if s.phase != PhaseRunning || !s.hasPiece || !s.canHold {
		return false
	}
	s.canHold = false

	current := s.piece.Type
	if s.hasHeld {
		s.startPiece(s.held)
	} else {
		s.startPiece(s.queue.Pop())
		s.hasHeld = true
	}
	s.held = current
	return true
}

// GhostY returns the row the piece would land on if dropped now.
func (s *Session) GhostY() int {
	p := s.piece
	mask := p.Mask()
	y := p.Y
	for s.board.Fits(mask, p.X, y+1) {
		y++
	}
	return y
}

func (s *Session) lockPiece() {
	rows := s.board.Lock(s.piece)
	s.pieceState = PieceLocked
	s.hasPiece = false
	s.canHold = true

	full := s.board.FindFullRows(rows...)
	if len(full) > 0 {
		s.clearingRows = full
		s.clearTimer = s.cfg.LineClearDelay
		s.setPhase(PhaseLineClear)
		return
	}
	s.spawn()
}

func (s *Session) spawn() {
	s.startPiece(s.queue.Pop())
}

// startPiece places a fresh piece of type t at the spawn point. If it
// overlaps the stack the game is over.
func (s *Session) startPiece(t PieceType) {
	s.piece = spawnPiece(t, s.board.Width)
	s.hasPiece = true
	s.pieceState = PieceFalling
	s.gravityTimer = s.gravityInterval
	s.placementTimer = s.cfg.PlacementDelay

	if !s.board.Fits(s.piece.Mask(), s.piece.X, s.piece.Y) {
		s.setPhase(PhaseGameOver)
	}
}
