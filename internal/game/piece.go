package game

// Piece is the falling piece. X and Y locate the origin of its 4x4 mask in
// board coordinates. dx, dy and dr are the moves requested this frame.
type Piece struct {
	Type     PieceType
	X, Y     int
	Rotation int

	dx, dy int
	dr     int
}

// PieceState is the lifecycle of one piece instance.
type PieceState int

const (
	PieceFalling PieceState = iota
	PieceLocking
	PieceLocked
)

func (s PieceState) String() string {
	switch s {
	case PieceFalling:
		return "falling"
	case PieceLocking:
		return "locking"
	case PieceLocked:
		return "locked"
	}
	return "unknown"
}

func spawnPiece(t PieceType, boardWidth int) Piece {
	return Piece{
		Type: t,
		X:    boardWidth/2 - 1,
		Y:    0,
	}
}

func (p Piece) Mask() Mask {
	return Shape(p.Type, p.Rotation)
}

func (p Piece) pending() bool {
	return p.dx != 0 || p.dy != 0 || p.dr != 0
}
