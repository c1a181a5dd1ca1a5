package game

// PieceView is a read-only view of the falling piece.
type PieceView struct {
	Type     PieceType
	Rotation int
	X, Y     int
	GhostY   int
}

// Cells returns the board coordinates of the piece's filled cells.
func (v PieceView) Cells() [][2]int {
	return v.cellsAt(v.Y)
}

// GhostCells returns the board coordinates of the landing projection.
func (v PieceView) GhostCells() [][2]int {
	return v.cellsAt(v.GhostY)
}

func (v PieceView) cellsAt(y int) [][2]int {
	cells := make([][2]int, 0, 4)
	Shape(v.Type, v.Rotation).Cells(func(col, row int) {
		cells = append(cells, [2]int{v.X + col, y + row})
	})
	return cells
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the session.
type Snapshot struct {
	Width, Height int
	Board         [][]Cell

	Active  *PieceView
	Queue   []PieceType
	Held    *PieceType
	CanHold bool

	Phase        Phase
	Countdown    int
	ClearingRows []int

	Lines int
	Level int
	Score int
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   s.board.Width,
		Height:  s.board.Height,
		Board:   s.board.Rows(),
		Queue:   s.queue.Items(),
		CanHold: s.canHold,
		Phase:   s.phase,
		Lines:   s.lines,
		Level:   s.level,
		Score:   s.score,
	}

	if s.hasPiece {
		snap.Active = &PieceView{
			Type:     s.piece.Type,
			Rotation: s.piece.Rotation,
			X:        s.piece.X,
			Y:        s.piece.Y,
			GhostY:   s.GhostY(),
		}
	}
	if s.hasHeld {
		held := s.held
		snap.Held = &held
	}
	if s.phase == PhasePaused && s.unpausing {
		snap.Countdown = s.unpauseLeft
	}
	if len(s.clearingRows) > 0 {
		snap.ClearingRows = append([]int(nil), s.clearingRows...)
	}
	return snap
}
