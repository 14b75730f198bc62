package mctsai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"termhex/engine"
	"termhex/hex"
)

func newTestEngine(t *testing.T, size int) *AIEngine {
	t.Helper()
	e := New(engine.GameConfig{BoardSize: size})
	require.NoError(t, e.Connect())
	return e
}

// findStones returns the coordinates of every stone of the given color.
func findStones(g *hex.Game, color hex.Color) []hex.Coords {
	var stones []hex.Coords
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			c := hex.Coords{X: x, Y: y}
			if got, ok := g.ColorAt(c); ok && got == color {
				stones = append(stones, c)
			}
		}
	}
	return stones
}

func TestSingleCellGameFinishesWithoutEngineMove(t *testing.T) {
	e := newTestEngine(t, 1)

	var ended bool
	var winner hex.Color
	e.OnGameEnd(func(w hex.Color) {
		ended = true
		winner = w
	})

	require.NoError(t, e.PlayMove(0, 0))

	g := e.Game()
	require.Equal(t, hex.Finished, g.Status())
	require.True(t, ended)
	require.Equal(t, hex.Red, winner)
	require.Equal(t, 1, g.MoveNumber(), "the engine must not move once the game is over")

	err := e.PlayMove(0, 0)
	require.ErrorIs(t, err, hex.ErrGameOver)
	require.Equal(t, 1, g.MoveNumber())
}

func TestEnginePlaysAnEmptyCell(t *testing.T) {
	e := newTestEngine(t, 5)

	require.NoError(t, e.PlayMove(2, 2))

	g := e.Game()
	require.Equal(t, 2, g.MoveNumber(), "one ply: human move plus engine reply")
	require.Equal(t, hex.Red, g.CurrentPlayer(), "turn returns to the human")

	blues := findStones(g, hex.Blue)
	require.Len(t, blues, 1)
	require.NotEqual(t, hex.Coords{X: 2, Y: 2}, blues[0], "engine must not play an occupied cell")
}

func TestEngineMoveIsDeterministic(t *testing.T) {
	first := newTestEngine(t, 5)
	second := newTestEngine(t, 5)

	require.NoError(t, first.PlayMove(2, 2))
	require.NoError(t, second.PlayMove(2, 2))

	require.Equal(t,
		findStones(first.Game(), hex.Blue),
		findStones(second.Game(), hex.Blue),
		"identical state and seed must produce the identical reply")
}

func TestMoveCallbacksPerPly(t *testing.T) {
	e := newTestEngine(t, 5)

	var moves []hex.Color
	e.OnMove(func(x, y int, color hex.Color, g *hex.Game) {
		moves = append(moves, color)
	})

	require.NoError(t, e.PlayMove(2, 2))
	require.Equal(t, []hex.Color{hex.Red, hex.Blue}, moves)
}

func TestIllegalHumanMoveChangesNothing(t *testing.T) {
	e := newTestEngine(t, 5)
	require.NoError(t, e.PlayMove(2, 2))

	err := e.PlayMove(2, 2)
	require.ErrorIs(t, err, hex.ErrOccupied)
	require.Equal(t, 2, e.Game().MoveNumber())
	require.True(t, e.IsMyTurn())

	err = e.PlayMove(9, 9)
	require.ErrorIs(t, err, hex.ErrOutOfBounds)
	require.Equal(t, 2, e.Game().MoveNumber())
}

func TestZeroBoardRejectsEverything(t *testing.T) {
	e := newTestEngine(t, 0)

	err := e.PlayMove(0, 0)
	require.ErrorIs(t, err, hex.ErrOutOfBounds)
	require.Equal(t, hex.Ongoing, e.Game().Status())
}

func TestNewEngineDiscardsPreviousSession(t *testing.T) {
	old := newTestEngine(t, 5)
	require.NoError(t, old.PlayMove(2, 2))

	fresh := newTestEngine(t, 3)
	g := fresh.Game()
	require.Equal(t, 3, g.Size())
	require.Equal(t, 0, g.MoveNumber())
	require.Equal(t, hex.Ongoing, g.Status())
	require.Equal(t, hex.Red, g.CurrentPlayer())
	require.Empty(t, findStones(g, hex.Red))
	require.Empty(t, findStones(g, hex.Blue))
}

func TestClampBoardSize(t *testing.T) {
	e := New(engine.GameConfig{BoardSize: 40})
	require.Equal(t, engine.MaxBoardSize, e.Game().Size())

	e = New(engine.GameConfig{BoardSize: -3})
	require.Equal(t, engine.MinBoardSize, e.Game().Size())
}

func TestIsMyTurn(t *testing.T) {
	e := newTestEngine(t, 5)
	require.True(t, e.IsMyTurn())

	require.NoError(t, e.PlayMove(2, 2))
	// The engine replied synchronously, so it is the human's turn again.
	require.True(t, e.IsMyTurn())

	one := newTestEngine(t, 1)
	require.NoError(t, one.PlayMove(0, 0))
	require.False(t, one.IsMyTurn(), "finished game has no turn")
}

func TestSelectMoveErrors(t *testing.T) {
	// Drive the selector directly against a finished game: the search has
	// no children to recommend.
	e := newTestEngine(t, 1)
	require.NoError(t, e.game.Play(hex.Coords{X: 0, Y: 0}))

	_, err := e.selectMove()
	require.True(t, errors.Is(err, ErrNoRecommendation))
}
