package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = engine.Size*cellWidth + 1
	boardH    = engine.Size*cellHeight + 1
	hudHeight = 3

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

var introLines = []string{
	"Welcome to 2048!",
	"Combine the tiles to get the 2048 tile!",
	"Use arrow keys to move tiles:",
	"Tiles with the same number merge into one!",
	"",
	"2 + 2 = 4",
	"4 + 4 = 8",
	"",
	"Press ENTER to start the game.",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	if g.phase == PhaseIntro {
		g.renderIntro(dst)
		return
	}

	snap := g.session.Snapshot()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, snap, boardX)
	g.renderBoard(dst, snap.Board, boardX, boardY)

	if boardY+boardH < g.screenH {
		hint := g.Controls()
		dst.DrawTextColor((g.screenW-len(hint))/2, boardY+boardH, hint, core.ColorGray)
	}

	g.renderOverlays(dst, snap, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderIntro draws the welcome screen.
func (g *Game) renderIntro(dst *core.Screen) {
	top := (g.screenH - len(introLines)) / 2
	for i, line := range introLines {
		if line == "" {
			continue
		}
		x := (g.screenW - len(line)) / 2
		switch line {
		case "2 + 2 = 4", "4 + 4 = 8":
			g.renderEquation(dst, x, top+i, line)
		default:
			dst.DrawText(x, top+i, line)
		}
	}
}

// renderEquation colors the tile values of an intro example.
func (g *Game) renderEquation(dst *core.Screen, x, y int, line string) {
	for i, r := range line {
		c := core.ColorDefault
		if r >= '0' && r <= '9' {
			c = core.TileColor(int(r - '0'))
		}
		dst.SetColor(x+i, y, r, c)
	}
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, snap engine.SessionSnapshot, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(boardX, 1, scoreStr)
	if g.lastGain > 0 {
		dst.DrawTextColor(boardX+len(scoreStr)+1, 1, fmt.Sprintf("+%d", g.lastGain), core.ColorGreen)
	}

	maxStr := fmt.Sprintf("Max: %d", snap.MaxTile)
	dst.DrawText(boardX+boardW-len(maxStr), 1, maxStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board engine.Board, boardX, boardY int) {
	const n = engine.Size

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	popCell, _, popping := g.Pop()

	for y := range n {
		for x := range n {
			val := board[y][x]
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			if val == 0 {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', core.ColorGray)
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			color := core.TileColor(val)
			if popping && popCell == (engine.Cell{Row: y, Col: x}) {
				color = core.ColorCyan
			}
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, snap engine.SessionSnapshot, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.phase == PhaseGameOver {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Max tile: %d", snap.MaxTile),
			"R/Enter: Rematch",
		)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hint shown under the board for the current phase.
func (g *Game) Controls() string {
	if g.phase == PhaseGameOver {
		return "R/Enter: Rematch  Q: Quit"
	}
	return "Arrows/WASD: Move  P: Pause  Q: Quit"
}
