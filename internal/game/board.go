package game

import (
	"image/color"
	"sort"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

type Cell struct {
	Solid bool
	Color color.RGBA
}

// Board is the settled-block grid. Cells is indexed [y][x] with y growing
// downwards from the top row.
type Board struct {
	Cells  [][]Cell
	Width  int
	Height int
}

func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		Cells:  cells,
		Width:  width,
		Height: height,
	}
}

// IsOccupied reports whether (x, y) blocks a piece. Columns outside the board
// and rows at or below the floor block; rows above the top never do.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.Width || y >= b.Height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.Cells[y][x].Solid
}

// Fits reports whether mask placed with its origin at (x, y) overlaps nothing.
func (b *Board) Fits(mask Mask, x, y int) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if mask[row][col] && b.IsOccupied(x+col, y+row) {
				return false
			}
		}
	}
	return true
}

// Lock writes p into the board and returns the rows it touched, ascending.
// Cells above the top row are dropped.
func (b *Board) Lock(p Piece) []int {
	touched := make(map[int]bool, 4)
	c := Colour(p.Type)
	p.Mask().Cells(func(col, row int) {
		x, y := p.X+col, p.Y+row
		if y < 0 || y >= b.Height || x < 0 || x >= b.Width {
			return
		}
		b.Cells[y][x] = Cell{Solid: true, Color: c}
		touched[y] = true
	})

	rows := make([]int, 0, len(touched))
	for y := range touched {
		rows = append(rows, y)
	}
	sort.Ints(rows)
	return rows
}

func (b *Board) isRowFull(y int) bool {
	for x := 0; x < b.Width; x++ {
		if !b.Cells[y][x].Solid {
			return false
		}
	}
	return true
}

// FindFullRows returns the full rows among rows, or across the whole board
// when rows is empty. The result is ascending and free of duplicates.
func (b *Board) FindFullRows(rows ...int) []int {
	if len(rows) == 0 {
		rows = make([]int, b.Height)
		for y := range rows {
			rows[y] = y
		}
	}

	seen := make(map[int]bool, len(rows))
	var full []int
	for _, y := range rows {
		if y < 0 || y >= b.Height || seen[y] {
			continue
		}
		seen[y] = true
		if b.isRowFull(y) {
			full = append(full, y)
		}
	}
	sort.Ints(full)
	return full
}

// ClearRow empties row y and shifts every row above it down by one.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= b.Height {
		return
	}
	for y2 := y; y2 > 0; y2-- {
		copy(b.Cells[y2], b.Cells[y2-1])
	}
	clear(b.Cells[0])
}

// ClearRows removes all of rows in one compaction pass and returns how many
// were removed. Surviving rows keep their order and settle at the bottom.
func (b *Board) ClearRows(rows []int) int {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.Height {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return 0
	}

	dst := b.Height - 1
	for src := b.Height - 1; src >= 0; src-- {
		if remove[src] {
			continue
		}
		if dst != src {
			copy(b.Cells[dst], b.Cells[src])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(b.Cells[dst])
	}
	return len(remove)
}

// Rows returns a copy of the cell grid, row-major from the top.
func (b *Board) Rows() [][]Cell {
	return b.Clone().Cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.Width, b.Height)
	for y := range b.Cells {
		copy(nb.Cells[y], b.Cells[y])
	}
	return nb
}
