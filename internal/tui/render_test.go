package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/hersh/blockfall/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff8000", string(hexColor(color.RGBA{R: 255, G: 128, B: 0, A: 255})))
	assert.Equal(t, "#000000", string(hexColor(color.RGBA{})))
}

func TestRenderBoard(t *testing.T) {
	s, err := game.NewSession(game.DefaultConfig())
	require.NoError(t, err)

	out := RenderBoard(s.Snapshot())
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, game.BoardHeight+2, "rows plus top and bottom border")
	assert.Contains(t, lines[0], "┌")
	assert.Contains(t, out, blockChar, "active piece is drawn")
	assert.Contains(t, out, ghostChar, "ghost is drawn")
}

func TestRenderBoardFlashesClearingRows(t *testing.T) {
	snap := game.Snapshot{
		Width:        4,
		Height:       2,
		Board:        [][]game.Cell{make([]game.Cell, 4), make([]game.Cell, 4)},
		ClearingRows: []int{1},
	}

	lines := strings.Split(RenderBoard(snap), "\n")

	require.Len(t, lines, 4)
	assert.NotContains(t, lines[1], blockChar)
	assert.Equal(t, 4, strings.Count(lines[2], blockChar))
}

func TestRenderPiece(t *testing.T) {
	assert.Equal(t, "Empty", RenderPiece(nil))

	o := game.PieceO
	out := RenderPiece(&o)
	assert.Equal(t, 4, strings.Count(out, blockChar))
	assert.Len(t, strings.Split(out, "\n"), 2, "blank mask rows are trimmed")
}

func TestRenderInfo(t *testing.T) {
	held := game.PieceT
	snap := game.Snapshot{
		Queue: []game.PieceType{game.PieceI, game.PieceS},
		Held:  &held,
		Score: 1234,
		Level: 3,
		Lines: 21,
	}

	out := RenderInfo(snap, "ada")

	assert.Contains(t, out, "Player: ada")
	assert.Contains(t, out, "Score: 1234")
	assert.Contains(t, out, "Level: 3")
	assert.Contains(t, out, "Lines: 21")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "HOLD (used)")
	assert.Equal(t, 12, strings.Count(out, blockChar), "two queued pieces and the held one")
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want string
	}{
		{"running", game.Snapshot{Phase: game.PhaseRunning}, ""},
		{"paused", game.Snapshot{Phase: game.PhasePaused}, "PAUSED"},
		{"countdown", game.Snapshot{Phase: game.PhasePaused, Countdown: 2}, "Resuming in 2"},
		{"single clear", game.Snapshot{Phase: game.PhaseLineClear, ClearingRows: []int{19}}, "1 line!"},
		{"tetris", game.Snapshot{Phase: game.PhaseLineClear, ClearingRows: []int{16, 17, 18, 19}}, "4 lines!"},
		{"game over", game.Snapshot{Phase: game.PhaseGameOver}, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderStatus(tt.snap)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}
