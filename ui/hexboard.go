// Package ui specifies custom controls for tview to assist in playing Hex
// in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termhex/config"
	"termhex/engine"
	"termhex/hex"
	"termhex/hexgrid"
)

// Board geometry in screen cells. Each board cell occupies two columns, each
// row shifts one column right, so the board renders as a rhombus. One plane
// unit equals one terminal column; a screen row below the previous one is
// 0.87 cell sizes further down the plane, matching hexgrid's cell centers.
const (
	cellSize  = 2.0
	rowScale  = 0.87 * cellSize
	boardLeft = 4
	boardTop  = 1
)

// MoveEntry records one played move for the history panel.
type MoveEntry struct {
	X     int
	Y     int
	Color hex.Color
}

type HexBoardUI struct {
	Box         *tview.Box
	hint        *tview.TextView
	cfg         *config.Config
	app         *tview.Application
	eng         engine.GameEngine
	game        *hex.Game
	styles      boardStyles
	finished    bool
	focusMode   bool
	selX        int
	selY        int
	hoverX      int
	hoverY      int
	lastX       int
	lastY       int
	moveHistory []MoveEntry
	infoPanel   *GameInfoPanel
}

type boardStyles struct {
	red      tcell.Color
	blue     tcell.Color
	line     tcell.Color
	hoverBG  tcell.Color
	cursorBG tcell.Color
	lastBG   tcell.Color
}

func NewHexBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *HexBoardUI {
	board := &HexBoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		app:    app,
		selX:   -1,
		selY:   -1,
		hoverX: -1,
		hoverY: -1,
		lastX:  -1,
		lastY:  -1,
	}
	board.SetConfig(c)

	board.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if board.game == nil || board.game.Size() == 0 {
			return x, y, 1, 1
		}
		board.draw(screen, x, y)
		size := board.game.Size()
		return x, y, boardLeft + size*2 + size + 2, boardTop + size + 2
	})

	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		mx, my := event.Position()
		switch action {
		case tview.MouseMove:
			if c, ok := board.cellAt(mx, my); ok {
				board.hoverX, board.hoverY = c.X, c.Y
			} else {
				board.hoverX, board.hoverY = -1, -1
			}
		case tview.MouseLeftClick:
			if c, ok := board.cellAt(mx, my); ok {
				board.PlayMove(c.X, c.Y)
			}
		}
		return action, event
	})
	return board
}

// cellAt maps an absolute screen position to the board cell under it, if
// any. The pointer position is projected onto the continuous plane the
// board is drawn on before hit-testing.
func (g *HexBoardUI) cellAt(screenX, screenY int) (hex.Coords, bool) {
	if g.game == nil {
		return hex.Coords{}, false
	}
	x, y, _, _ := g.Box.GetInnerRect()
	pointer := hexgrid.Position{
		X: float64(screenX - (x + boardLeft)),
		Y: float64(screenY-(y+boardTop)) * rowScale,
	}
	return hexgrid.NearestCell(pointer, g.game.Size(), cellSize, hexgrid.Position{})
}

// ConnectEngine connects the board to a game engine.
func (g *HexBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.moveHistory = nil
	g.lastX, g.lastY = -1, -1
	g.ResetSelection()

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(x, y int, color hex.Color, game *hex.Game) {
		g.game = game
		g.lastX, g.lastY = x, y
		g.moveHistory = append(g.moveHistory, MoveEntry{X: x, Y: y, Color: color})
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from the event loop
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(winner hex.Color) {
		g.finished = true
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.game = e.Game()
	g.refreshHint()
	return nil
}

// PlayMove plays a move at the given cell. Clicks on occupied cells, on
// finished games, or outside the board are ordinary interaction and are
// absorbed silently; an engine search failure is surfaced on the hint line.
func (g *HexBoardUI) PlayMove(x, y int) {
	if g.finished || g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(x, y); err != nil {
		if errors.Is(err, hex.ErrOccupied) || errors.Is(err, hex.ErrOutOfBounds) || errors.Is(err, hex.ErrGameOver) {
			return
		}
		g.hint.SetText(fmt.Sprintf("  ✗ %s", err))
	}
}

// SelectedTile returns the keyboard cursor cell, nil if none.
func (g *HexBoardUI) SelectedTile() *hex.Coords {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &hex.Coords{X: g.selX, Y: g.selY}
}

// MoveSelection moves the keyboard cursor by (h, v), clamped to the board.
func (g *HexBoardUI) MoveSelection(h, v int) {
	if g.game == nil || g.finished {
		g.ResetSelection()
		return
	}
	size := g.game.Size()
	if size == 0 {
		return
	}
	if g.SelectedTile() == nil {
		g.selX = g.lastX
		g.selY = g.lastY
		if g.SelectedTile() == nil {
			g.selX = size / 2
			g.selY = size / 2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *HexBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *HexBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *HexBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFinished returns true if the game is over.
func (g *HexBoardUI) IsFinished() bool {
	return g.finished
}

// Game returns the board's current view of the game.
func (g *HexBoardUI) Game() *hex.Game {
	return g.game
}

// Close disconnects the engine.
func (g *HexBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *HexBoardUI) SetConfig(c *config.Config) {
	g.cfg = c
	g.styles = boardStyles{
		red:      tcell.PaletteColor(c.Theme.Colors.RedColor),
		blue:     tcell.PaletteColor(c.Theme.Colors.BlueColor),
		line:     tcell.PaletteColor(c.Theme.Colors.LineColor),
		hoverBG:  tcell.PaletteColor(c.Theme.Colors.HoverColorBG),
		cursorBG: tcell.PaletteColor(c.Theme.Colors.CursorColor),
		lastBG:   tcell.PaletteColor(c.Theme.Colors.LastMoveBG),
	}
}

func (g *HexBoardUI) draw(screen tcell.Screen, x, y int) {
	size := g.game.Size()

	for by := 0; by < size; by++ {
		for bx := 0; bx < size; bx++ {
			c := hex.Coords{X: bx, Y: by}
			col := x + boardLeft + bx*2 + by
			row := y + boardTop + by

			drawRune := g.cfg.Theme.Symbols.EmptyCell
			fg := g.styles.line
			if color, ok := g.game.ColorAt(c); ok {
				switch color {
				case hex.Red:
					drawRune = g.cfg.Theme.Symbols.RedStone
					fg = g.styles.red
				case hex.Blue:
					drawRune = g.cfg.Theme.Symbols.BlueStone
					fg = g.styles.blue
				}
			}

			preview, previewOK := tcell.Color(0), false
			if bx == g.hoverX && by == g.hoverY {
				preview, previewOK = g.hoverColor(c)
			}

			style := tcell.StyleDefault.Foreground(fg)
			switch {
			case bx == g.selX && by == g.selY:
				style = style.Background(g.styles.cursorBG)
			case previewOK:
				style = style.Foreground(preview)
				if g.cfg.Theme.DrawHoverBackground {
					style = style.Background(g.styles.hoverBG)
				}
			case bx == g.lastX && by == g.lastY && g.cfg.Theme.DrawLastMoveBackground:
				style = style.Background(g.styles.lastBG)
			}

			screen.SetContent(col, row, drawRune, nil, style)
			screen.SetContent(col+1, row, ' ', nil, style)
		}
	}
	g.drawCoordinates(screen, x, y)
}

// hoverColor returns the stone color previewing a move at the hovered cell.
// Only empty cells of an ongoing game get a preview; the color is the one
// the stone would take if placed now.
func (g *HexBoardUI) hoverColor(c hex.Coords) (tcell.Color, bool) {
	if g.game == nil || g.finished || g.game.Status() != hex.Ongoing {
		return 0, false
	}
	if _, occupied := g.game.ColorAt(c); occupied {
		return 0, false
	}
	if g.game.CurrentPlayer() == hex.Blue {
		return g.styles.blue, true
	}
	return g.styles.red, true
}

// drawCoordinates labels columns A.. along the top edge and rows 1.. along
// the left edge, following the rhombic shift.
func (g *HexBoardUI) drawCoordinates(screen tcell.Screen, x, y int) {
	size := g.game.Size()
	style := tcell.StyleDefault.Foreground(g.styles.line)
	highlight := tcell.StyleDefault.Background(g.styles.cursorBG)

	for bx := 0; bx < size; bx++ {
		s := style
		if bx == g.selX {
			s = highlight
		}
		screen.SetContent(x+boardLeft+bx*2, y, rune('A'+bx), nil, s)
	}
	for by := 0; by < size; by++ {
		s := style
		if by == g.selY {
			s = highlight
		}
		num := by + 1
		if num >= 10 {
			screen.SetContent(x+1, y+boardTop+by, rune('0'+num/10), nil, s)
		}
		screen.SetContent(x+2, y+boardTop+by, rune('0'+num%10), nil, s)
	}
}

func (g *HexBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetGame(g.game, &g.moveHistory)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, controlsLine string
	if g.finished {
		winner, _ := g.game.Winner()
		statusLine = fmt.Sprintf("  %s wins!\n", winner)
		controlsLine = "  q · return to menu"
	} else if g.game != nil && g.game.Size() == 0 {
		statusLine = "  Empty board\n"
		controlsLine = "  q · return to menu"
	} else {
		player := hex.Red
		if g.game != nil {
			player = g.game.CurrentPlayer()
		}
		statusLine = fmt.Sprintf("  %s to move\n", player)
		controlsLine = "  click/⏎ play   hjkl/↑↓←→ move   f focus   q quit"
	}

	g.hint.SetText(statusLine + controlsLine)
}
