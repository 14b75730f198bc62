package hex

import (
	"errors"
	"testing"
)

func TestNewGame(t *testing.T) {
	g := NewGame(5)
	if g.Size() != 5 {
		t.Fatalf("size = %d, want 5", g.Size())
	}
	if g.CurrentPlayer() != Red {
		t.Fatalf("current player = %v, want Red", g.CurrentPlayer())
	}
	if g.Status() != Ongoing {
		t.Fatal("new game should be ongoing")
	}
	if _, ok := g.Winner(); ok {
		t.Fatal("new game should have no winner")
	}
	if got := len(g.LegalMoves()); got != 25 {
		t.Fatalf("legal moves = %d, want 25", got)
	}
}

func TestPlayAlternatesPlayers(t *testing.T) {
	g := NewGame(5)
	moves := []Coords{{0, 0}, {4, 4}, {1, 0}, {3, 4}, {2, 1}, {2, 3}}
	for i, c := range moves {
		want := Red
		if i%2 == 1 {
			want = Blue
		}
		if g.CurrentPlayer() != want {
			t.Fatalf("move %d: current player = %v, want %v", i, g.CurrentPlayer(), want)
		}
		if err := g.Play(c); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	if g.MoveNumber() != len(moves) {
		t.Fatalf("move number = %d, want %d", g.MoveNumber(), len(moves))
	}
}

func TestPlayRejections(t *testing.T) {
	g := NewGame(3)
	if err := g.Play(Coords{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		coord Coords
		want  error
	}{
		{"occupied", Coords{X: 1, Y: 1}, ErrOccupied},
		{"x out of bounds", Coords{X: 3, Y: 0}, ErrOutOfBounds},
		{"negative y", Coords{X: 0, Y: -1}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		err := g.Play(tt.coord)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
		if g.CurrentPlayer() != Blue {
			t.Errorf("%s: rejected move must not flip the turn", tt.name)
		}
		if g.MoveNumber() != 1 {
			t.Errorf("%s: rejected move must not count", tt.name)
		}
	}
}

func TestSingleCellBoard(t *testing.T) {
	g := NewGame(1)
	if err := g.Play(Coords{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if g.Status() != Finished {
		t.Fatal("single stone should finish a 1x1 game")
	}
	winner, ok := g.Winner()
	if !ok || winner != Red {
		t.Fatalf("winner = %v (%v), want Red", winner, ok)
	}
	if g.LegalMoves() != nil {
		t.Fatal("finished game should have no legal moves")
	}

	// Further moves fail and change nothing.
	if err := g.Play(Coords{X: 0, Y: 0}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
	if g.MoveNumber() != 1 {
		t.Fatal("rejected move after game over must not count")
	}
	if color, ok := g.ColorAt(Coords{X: 0, Y: 0}); !ok || color != Red {
		t.Fatal("board changed after game over")
	}
}

func TestRedWinsTopToBottom(t *testing.T) {
	g := NewGame(3)
	// Red builds a vertical chain in column 0, Blue plays elsewhere.
	moves := []Coords{{0, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}}
	for i, c := range moves {
		if err := g.Play(c); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	winner, ok := g.Winner()
	if !ok || winner != Red {
		t.Fatalf("winner = %v (%v), want Red", winner, ok)
	}
}

func TestBlueWinsLeftToRight(t *testing.T) {
	g := NewGame(3)
	// Blue builds a horizontal chain across row 1.
	moves := []Coords{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {2, 1}}
	for i, c := range moves {
		if err := g.Play(c); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	winner, ok := g.Winner()
	if !ok || winner != Blue {
		t.Fatalf("winner = %v (%v), want Blue", winner, ok)
	}
}

func TestDiagonalNeighborsConnect(t *testing.T) {
	g := NewGame(3)
	// Red descends a staircase (1,0) → (0,1) → (0,2), relying on the
	// (-1, +1) hex adjacency between (1,0) and (0,1).
	moves := []Coords{{1, 0}, {2, 0}, {0, 1}, {2, 2}, {0, 2}}
	for i, c := range moves {
		if err := g.Play(c); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	winner, ok := g.Winner()
	if !ok || winner != Red {
		t.Fatalf("winner = %v (%v), want Red: (1,0) and (0,1) must be adjacent", winner, ok)
	}
}

func TestZeroBoard(t *testing.T) {
	g := NewGame(0)
	if err := g.Play(Coords{X: 0, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if g.LegalMoves() != nil {
		t.Fatal("empty board has no legal moves")
	}
	if g.Status() != Ongoing {
		t.Fatal("empty board never finishes")
	}
}

func TestClone(t *testing.T) {
	g := NewGame(3)
	if err := g.Play(Coords{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	if err := clone.Play(Coords{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.ColorAt(Coords{X: 0, Y: 0}); ok {
		t.Fatal("clone must not share cells with the original")
	}
	if g.CurrentPlayer() != Blue || clone.CurrentPlayer() != Red {
		t.Fatal("clone must track its own turn")
	}
}
