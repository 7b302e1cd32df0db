package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/square"
)

func wire(t *testing.T, text string) move.Move {
	t.Helper()
	from, err := square.Parse(text[:2])
	if err != nil {
		t.Fatal(err)
	}
	to, err := square.Parse(text[2:4])
	if err != nil {
		t.Fatal(err)
	}
	if len(text) == 4 {
		return move.New(from, to)
	}
	var p move.Promotion
	switch text[4] {
	case 'q':
		p = move.PromoteQueen
	case 'r':
		p = move.PromoteRook
	case 'b':
		p = move.PromoteBishop
	case 'n':
		p = move.PromoteKnight
	default:
		t.Fatalf("bad promotion in %q", text)
	}
	return move.NewPromotion(from, to, p)
}

func play(t *testing.T, b *EngineBoard, texts ...string) {
	t.Helper()
	for _, s := range texts {
		if _, err := b.SubmitMove(wire(t, s)); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
}

func TestFoolsMate(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	res, over := b.Result()
	is.True(over)
	winner, reason, won := res.Winner()
	is.True(won)
	is.Equal(winner, material.Black)
	is.Equal(reason, Checkmate)

	_, err := b.SubmitMove(wire(t, "a2a3"))
	is.True(errors.Is(err, ErrGameOver))
}

func TestIllegalMoveLeavesBoardUntouched(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	_, err := b.SubmitMove(wire(t, "e2e5"))
	is.True(errors.Is(err, move.ErrIllegalMove))
	is.Equal(b.History().Len(), 0)
	is.Equal(b.Turn(), material.White)

	_, err = b.SubmitMove(wire(t, "e2e4"))
	is.NoErr(err)
	is.Equal(b.History().Len(), 1)
}

// Loyd's ten-move stalemate.
func TestStalemateThroughPlay(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	play(t, b,
		"e2e3", "a7a5",
		"d1h5", "a8a6",
		"h5a5", "h7h5",
		"a5c7", "a6h6",
		"h2h4", "f7f6",
		"c7d7", "e8f7",
		"d7b7", "d8d3",
		"b7b8", "d3h7",
		"b8c8", "f7g6",
		"c8e6",
	)
	res, over := b.Result()
	is.True(over)
	reason, drawn := res.Drawn()
	is.True(drawn)
	is.Equal(reason, Stalemate)
}

func TestThreefoldRepetition(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	shuttle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	play(t, b, shuttle...)
	_, over := b.Result()
	is.True(!over) // starting position seen twice so far
	play(t, b, shuttle...)
	res, over := b.Result()
	is.True(over)
	reason, drawn := res.Drawn()
	is.True(drawn)
	is.Equal(reason, Repetition)
}

func TestConclude(t *testing.T) {
	is := is.New(t)
	b := NewEngineBoard(NewGameID())
	play(t, b, "e2e4")
	is.NoErr(b.Conclude(Win(material.White, Resigned)))
	res, over := b.Result()
	is.True(over)
	winner, reason, won := res.Winner()
	is.True(won)
	is.Equal(winner, material.White)
	is.Equal(reason, Resigned)

	is.True(errors.Is(b.Conclude(Draw(Agreed)), ErrGameOver))
	_, err := b.SubmitMove(wire(t, "e7e5"))
	is.True(errors.Is(err, ErrGameOver))
}

func TestReplayEquivalence(t *testing.T) {
	is := is.New(t)
	id := NewGameID()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	played := NewEngineBoard(id)
	play(t, played, moves...)

	var ms []move.Move
	for _, s := range moves {
		ms = append(ms, wire(t, s))
	}
	replayed, err := ReplayEngine(id, ms)
	is.NoErr(err)
	is.Equal(replayed.Position().Key(), played.Position().Key())
	a, aOver := played.Result()
	b, bOver := replayed.Result()
	is.True(aOver && bOver)
	is.Equal(a, b)
	is.Equal(len(replayed.History().Moves()), len(played.History().Moves()))
}

func TestReplayFailsAtFirstIllegalMove(t *testing.T) {
	is := is.New(t)
	_, err := ReplayEngine(NewGameID(), []move.Move{
		wire(t, "e2e4"), wire(t, "e7e6"), wire(t, "e4e3"),
	})
	is.True(errors.Is(err, move.ErrIllegalMove))
}

func TestGameID(t *testing.T) {
	is := is.New(t)
	is.Equal(len(NewGameID().String()), 16)
	is.Equal(GameID(0xabc).String(), "0000000000000abc")
}
