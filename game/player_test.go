package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/square"
)

func TestPreMoveAutoApplies(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))

	is.NoErr(p.SubmitOurMove(wire(t, "d2d4"))) // queued, not our turn
	pm, ok := p.PreMove()
	is.True(ok)
	is.Equal(pm.From, square.D2)

	is.NoErr(p.SubmitTheirMove(wire(t, "e7e5")))
	_, ok = p.PreMove()
	is.True(!ok)
	is.Equal(p.History().Len(), 3)
	is.Equal(p.Position().At(square.D4), material.New(material.White, material.Pawn))
	is.Equal(p.Turn(), material.Black)
}

func TestPreMoveDiscardedWhenIllegal(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	is.NoErr(p.SubmitOurMove(wire(t, "e4e5")))

	// e7e5 blocks the queued advance
	is.NoErr(p.SubmitTheirMove(wire(t, "e7e5")))
	_, ok := p.PreMove()
	is.True(!ok)
	is.Equal(p.History().Len(), 2)
	is.Equal(p.Turn(), material.White)
}

func TestPreMoveReplaced(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	is.NoErr(p.SubmitOurMove(wire(t, "d2d4")))
	is.NoErr(p.SubmitOurMove(wire(t, "g1f3")))
	pm, ok := p.PreMove()
	is.True(ok)
	is.Equal(pm.From, square.G1)

	is.NoErr(p.SubmitTheirMove(wire(t, "e7e5")))
	is.Equal(p.Position().At(square.F3), material.New(material.White, material.Knight))
	is.Equal(p.Position().At(square.D2), material.New(material.White, material.Pawn))
}

func TestCancelPreMove(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	is.NoErr(p.SubmitOurMove(wire(t, "d2d4")))
	p.CancelPreMove()
	is.NoErr(p.SubmitTheirMove(wire(t, "e7e5")))
	is.Equal(p.History().Len(), 2)
	is.Equal(p.Turn(), material.White)
}

func TestPreMoveCastleAutoApplies(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "g1f3")))
	is.NoErr(p.SubmitTheirMove(wire(t, "b8c6")))
	is.NoErr(p.SubmitOurMove(wire(t, "e2e3")))
	is.NoErr(p.SubmitTheirMove(wire(t, "e7e6")))
	is.NoErr(p.SubmitOurMove(wire(t, "f1e2")))

	is.NoErr(p.SubmitOurMove(wire(t, "e1g1")))
	pm, ok := p.PreMove()
	is.True(ok)
	is.Equal(pm.Kind, move.ShortCastle)

	is.NoErr(p.SubmitTheirMove(wire(t, "d7d6")))
	is.Equal(p.Position().At(square.G1), material.New(material.White, material.King))
	is.Equal(p.Position().At(square.F1), material.New(material.White, material.Rook))
	is.Equal(p.Turn(), material.Black)
}

func TestPreMoveRejectsImpossibleShape(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	err := p.SubmitOurMove(wire(t, "a1b3"))
	is.True(errors.Is(err, move.ErrIllegalMove))
	_, ok := p.PreMove()
	is.True(!ok)
}

func TestSubmitTheirMoveOnOurTurn(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	err := p.SubmitTheirMove(wire(t, "e7e5"))
	is.True(errors.Is(err, move.ErrIllegalMove))
}

func TestViewShowsPreMovePreview(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	is.NoErr(p.SubmitOurMove(wire(t, "g1f3")))

	v := p.View()
	is.Equal(v.At(square.F3), material.New(material.White, material.Knight))
	is.Equal(v.At(square.G1), material.None)
	is.Equal(v.Turn(), material.Black) // preview does not advance the game

	is.Equal(p.Position().At(square.G1), material.New(material.White, material.Knight))
}

func TestViewFollowsReviewCursor(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	is.NoErr(p.SubmitTheirMove(wire(t, "e7e5")))

	is.True(p.Review().Back())
	is.Equal(p.View().Key(), p.History().At(1).Key())
	p.Review().End()
	is.Equal(p.View().Key(), p.History().Latest().Key())
}

func TestReplayPlayer(t *testing.T) {
	is := is.New(t)
	moves := []move.Move{
		wire(t, "f2f3"), wire(t, "e7e5"), wire(t, "g2g4"), wire(t, "d8h4"),
	}
	p, err := ReplayPlayer(NewGameID(), material.Black, moves)
	is.NoErr(err)
	is.Equal(p.Side(), material.Black)
	_, ok := p.PreMove()
	is.True(!ok)
	res, over := p.Result()
	is.True(over)
	winner, _, won := res.Winner()
	is.True(won)
	is.Equal(winner, material.Black)
}

func TestMoveDestinations(t *testing.T) {
	is := is.New(t)
	p := NewPlayerBoard(NewGameID(), material.White)
	is.Equal(p.MoveDestinations(square.E2), square.MaskOf(square.E3, square.E4))
	is.NoErr(p.SubmitOurMove(wire(t, "e2e4")))
	// not our turn: the pre-move fan, occupancy ignored
	is.Equal(p.MoveDestinations(square.G1),
		square.MaskOf(square.E2, square.F3, square.H3))
}
