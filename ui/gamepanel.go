package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termhex/hex"
)

// GameInfoPanel displays game information and move history alongside the
// board.
type GameInfoPanel struct {
	box         *tview.TextView
	game        *hex.Game
	moveHistory *[]MoveEntry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetGame updates the panel with the current game and history.
func (p *GameInfoPanel) SetGame(game *hex.Game, history *[]MoveEntry) {
	p.game = game
	p.moveHistory = history
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.game == nil {
		p.box.SetText("")
		return
	}

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %d×%d\n", p.game.Size(), p.game.Size())
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.game.MoveNumber())

	if winner, ok := p.game.Winner(); ok {
		text += fmt.Sprintf("[white]Winner:[-:-:-] %s\n", winner)
	} else {
		text += fmt.Sprintf("[white]Turn:[-:-:-] %s\n", p.game.CurrentPlayer())
	}

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]
			colorStr := "[red]R[-]"
			if m.Color == hex.Blue {
				colorStr = "[blue]B[-]"
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, cellName(m.X, m.Y))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// cellName renders a cell as a letter-number pair, column A.. and row 1...
func cellName(x, y int) string {
	return fmt.Sprintf("%c%d", 'A'+x, y+1)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *HexBoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// RebuildNormalLayout restores the layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *HexBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	if board.game != nil {
		infoPanel.SetGame(board.game, &board.moveHistory)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *HexBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	boardWidth := 26
	boardHeight := 13
	if board.game != nil && board.game.Size() > 0 {
		size := board.game.Size()
		// 2 chars per cell plus the rhombic shift and coordinates
		boardWidth = boardLeft + size*2 + size + 2
		boardHeight = boardTop + size + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(hint, 2, 0, false)
	gameFrame.AddItem(nil, 0, 1, false)
}

// CreateCenteredCard centers a fixed-size card on the screen.
func CreateCenteredCard(card tview.Primitive, width, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(nil, 0, 1, false)
	row.AddItem(card, width, 0, true)
	row.AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().SetDirection(tview.FlexRow)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(row, height, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
