package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/game"
)

var (
	blockChar = "██"
	ghostChar = "[]"
	emptyChar = "  "

	ghostColor = lipgloss.Color("244")
	flashColor = lipgloss.Color("15")

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// hexColor converts a catalog colour to a lipgloss true-colour value.
func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func block(char string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(char)
}

// RenderBoard draws the locked cells, the ghost, the active piece and any
// rows waiting to be cleared.
func RenderBoard(snap game.Snapshot) string {
	active := map[[2]int]bool{}
	ghost := map[[2]int]bool{}
	var activeColor lipgloss.Color
	if snap.Active != nil {
		activeColor = hexColor(game.Colour(snap.Active.Type))
		for _, c := range snap.Active.Cells() {
			active[c] = true
		}
		for _, c := range snap.Active.GhostCells() {
			ghost[c] = true
		}
	}

	clearing := map[int]bool{}
	for _, y := range snap.ClearingRows {
		clearing[y] = true
	}

	var sb strings.Builder
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.Board[y][x]
			pos := [2]int{x, y}

			switch {
			case clearing[y]:
				sb.WriteString(block(blockChar, flashColor))
			case active[pos]:
				sb.WriteString(block(blockChar, activeColor))
			case cell.Solid:
				sb.WriteString(block(blockChar, hexColor(cell.Color)))
			case ghost[pos]:
				sb.WriteString(block(ghostChar, ghostColor))
			default:
				sb.WriteString(emptyChar)
			}
		}
		if y < snap.Height-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiece draws a piece in its spawn rotation, trimmed to its rows.
func RenderPiece(t *game.PieceType) string {
	if t == nil {
		return "Empty"
	}

	shape := game.Shape(*t, 0)
	style := lipgloss.NewStyle().Foreground(hexColor(game.Colour(*t)))

	var lines []string
	for row := 0; row < len(shape); row++ {
		var sb strings.Builder
		filled := false
		for col := 0; col < len(shape[row]); col++ {
			if shape[row][col] {
				sb.WriteString(style.Render(blockChar))
				filled = true
			} else {
				sb.WriteString(emptyChar)
			}
		}
		if filled {
			lines = append(lines, sb.String())
		}
	}
	return strings.Join(lines, "\n")
}

func RenderInfo(snap game.Snapshot, playerName string) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("BLOCKFALL") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", playerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", snap.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", snap.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", snap.Lines)) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	for i := range snap.Queue {
		sb.WriteString(RenderPiece(&snap.Queue[i]) + "\n\n")
	}

	hold := "HOLD"
	if !snap.CanHold {
		hold += " (used)"
	}
	sb.WriteString(titleStyle.Render(hold) + "\n")
	sb.WriteString(RenderPiece(snap.Held) + "\n")

	return sb.String()
}

// RenderStatus is the line shown under the board for paused and clearing
// phases. It is empty while running.
func RenderStatus(snap game.Snapshot) string {
	switch snap.Phase {
	case game.PhasePaused:
		if snap.Countdown > 0 {
			return statusStyle.Render(fmt.Sprintf("Resuming in %d", snap.Countdown))
		}
		return statusStyle.Render("PAUSED (esc to resume)")
	case game.PhaseLineClear:
		n := len(snap.ClearingRows)
		if n == 1 {
			return statusStyle.Render("1 line!")
		}
		return statusStyle.Render(fmt.Sprintf("%d lines!", n))
	case game.PhaseGameOver:
		return gameOverStyle.Render("GAME OVER")
	}
	return ""
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║      B L O C K F A L L       ║
║      Falling blocks TUI      ║
╚══════════════════════════════╝

   Press ENTER or S to start
   Press ? in game for all keys
   Press Q to quit
`)
}

func RenderGameOver(score, lines, level int) string {
	return gameOverStyle.
		Align(lipgloss.Center).
		Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n     Lines: %d  Level: %d     \n\n\n", score, lines, level))
}
