package ui

import (
	"testing"

	"github.com/rivo/tview"

	"termhex/config"
	"termhex/hex"
)

func newTestBoard(size int) *HexBoardUI {
	cfg := config.DefaultConfig
	board := NewHexBoard(tview.NewApplication(), &cfg, tview.NewTextView())
	board.game = hex.NewGame(size)
	return board
}

func TestHoverPreviewFollowsCurrentPlayer(t *testing.T) {
	board := newTestBoard(3)

	color, ok := board.hoverColor(hex.Coords{X: 1, Y: 1})
	if !ok {
		t.Fatal("empty cell should get a hover preview")
	}
	if color != board.styles.red {
		t.Errorf("preview color = %v, want red %v", color, board.styles.red)
	}

	if err := board.game.Play(hex.Coords{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	color, ok = board.hoverColor(hex.Coords{X: 1, Y: 1})
	if !ok {
		t.Fatal("empty cell should get a hover preview")
	}
	if color != board.styles.blue {
		t.Errorf("preview color = %v, want blue %v", color, board.styles.blue)
	}
}

func TestHoverPreviewSkipsOccupiedCells(t *testing.T) {
	board := newTestBoard(3)
	if err := board.game.Play(hex.Coords{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	if _, ok := board.hoverColor(hex.Coords{X: 1, Y: 1}); ok {
		t.Error("occupied cell should not get a hover preview")
	}
}

func TestHoverPreviewStopsWhenFinished(t *testing.T) {
	board := newTestBoard(1)
	if err := board.game.Play(hex.Coords{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if board.game.Status() != hex.Finished {
		t.Fatal("single move on a 1x1 board should finish the game")
	}

	if _, ok := board.hoverColor(hex.Coords{X: 0, Y: 0}); ok {
		t.Error("finished game should not get a hover preview")
	}
}

func TestHoverPreviewWithoutGame(t *testing.T) {
	board := newTestBoard(3)
	board.game = nil

	if _, ok := board.hoverColor(hex.Coords{X: 0, Y: 0}); ok {
		t.Error("board without a game should not get a hover preview")
	}
}
