package game

import "image/color"

type PieceType int

const (
	PieceO PieceType = iota
	PieceI
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
)

// NumPieceTypes is the size of one bag.
const NumPieceTypes = 7

// AllPieceTypes lists every piece type in catalog order.
var AllPieceTypes = [NumPieceTypes]PieceType{PieceO, PieceI, PieceT, PieceL, PieceJ, PieceS, PieceZ}

var pieceNames = [NumPieceTypes]string{"O", "I", "T", "L", "J", "S", "Z"}

func (t PieceType) String() string {
	if t < 0 || int(t) >= NumPieceTypes {
		return "?"
	}
	return pieceNames[t]
}

// Mask is a 4x4 occupancy grid indexed [row][col].
type Mask [4][4]bool

// Cells calls fn for every filled cell with its column and row inside the mask.
func (m Mask) Cells(fn func(col, row int)) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m[row][col] {
				fn(col, row)
			}
		}
	}
}

type pieceDef struct {
	color     color.RGBA
	rotations [4]Mask
}

var pieceDefs = [NumPieceTypes]pieceDef{
	PieceO: {
		color: color.RGBA{0xf0, 0xd9, 0x11, 0xff},
		rotations: [4]Mask{
			{{true, true, false, false}, {true, true, false, false}},
			{{true, true, false, false}, {true, true, false, false}},
			{{true, true, false, false}, {true, true, false, false}},
			{{true, true, false, false}, {true, true, false, false}},
		},
	},
	PieceI: {
		color: color.RGBA{0x15, 0xb7, 0xe8, 0xff},
		rotations: [4]Mask{
			{{false, true}, {false, true}, {false, true}, {false, true}},
			{{}, {true, true, true, true}},
			{{false, false, true}, {false, false, true}, {false, false, true}, {false, false, true}},
			{{}, {true, true, true, true}},
		},
	},
	PieceT: {
		color: color.RGBA{0xa8, 0x0b, 0xbd, 0xff},
		rotations: [4]Mask{
			{{false, true}, {true, true, true}},
			{{false, true}, {false, true, true}, {false, true}},
			{{}, {true, true, true}, {false, true}},
			{{false, true}, {true, true}, {false, true}},
		},
	},
	PieceL: {
		color: color.RGBA{0x1f, 0x50, 0xab, 0xff},
		rotations: [4]Mask{
			{{false, true}, {false, true}, {false, true, true}},
			{{}, {true, true, true}, {true}},
			{{true, true}, {false, true}, {false, true}},
			{{false, false, true}, {true, true, true}},
		},
	},
	PieceJ: {
		color: color.RGBA{0xf0, 0xa9, 0x11, 0xff},
		rotations: [4]Mask{
			{{false, true}, {false, true}, {true, true}},
			{{true}, {true, true, true}},
			{{false, true, true}, {false, true}, {false, true}},
			{{}, {true, true, true}, {false, false, true}},
		},
	},
	PieceS: {
		color: color.RGBA{0x25, 0xcf, 0x60, 0xff},
		rotations: [4]Mask{
			{{false, true, true}, {true, true}},
			{{true}, {true, true}, {false, true}},
			{{false, true, true}, {true, true}},
			{{true}, {true, true}, {false, true}},
		},
	},
	PieceZ: {
		color: color.RGBA{0xff, 0x25, 0x25, 0xff},
		rotations: [4]Mask{
			{{true, true}, {false, true, true}},
			{{false, false, true}, {false, true, true}, {false, true}},
			{{true, true}, {false, true, true}},
			{{false, false, true}, {false, true, true}, {false, true}},
		},
	},
}

// Shape returns the mask of t in the given rotation, wrapped to 0..3.
func Shape(t PieceType, rotation int) Mask {
	return pieceDefs[t].rotations[wrapRotation(rotation)]
}

// Colour returns the display colour of t.
func Colour(t PieceType) color.RGBA {
	return pieceDefs[t].color
}

func wrapRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}
