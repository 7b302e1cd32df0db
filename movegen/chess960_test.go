package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/position"
	"github.com/blunderdome/chesskit/square"
)

// arrangement 0 is BBQNNRKR: the king starts on g1 between the rooks
// on f1 and h1.
func state960(t *testing.T, id uint16, f func(b *position.Builder)) *MoveState {
	t.Helper()
	br, err := backrank.New(id)
	if err != nil {
		t.Fatal(err)
	}
	b := position.NewBuilderFor(br)
	if f != nil {
		f(b)
	}
	pos, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return NewState(pos)
}

func TestChess960KingBoxedAtStart(t *testing.T) {
	is := is.New(t)
	s := state960(t, 0, nil)
	is.True(s.LegalMovesFrom(square.G1).Destinations().IsEmpty())
}

func TestChess960ShortCastleKingStaysPut(t *testing.T) {
	is := is.New(t)
	// with the f1 rook gone the short castle only moves the h1 rook
	s := state960(t, 0, func(b *position.Builder) {
		b.Clear(square.F1)
		b.ClearLongCastle(material.White)
	})
	set := s.LegalMovesFrom(square.G1)
	is.Equal(set.Destinations(), square.MaskOf(square.F1, square.G1, square.H1))
	lm, ok := set.Get(square.G1)
	is.True(ok)
	is.Equal(lm.Kind, move.ShortCastle)
	lm, ok = set.Get(square.H1) // king takes rook
	is.True(ok)
	is.Equal(lm.Kind, move.ShortCastle)
	lm, ok = set.Get(square.F1)
	is.True(ok)
	is.Equal(lm.Kind, move.Standard)

	mv, err := s.ValidateMove(move.New(square.G1, square.H1))
	is.NoErr(err)
	s.ApplyMove(mv)
	pos := s.Position()
	is.Equal(pos.At(square.G1), material.New(material.White, material.King))
	is.Equal(pos.At(square.F1), material.New(material.White, material.Rook))
	is.Equal(pos.At(square.H1), material.None)
}

func TestChess960LongCastleAcrossTheBoard(t *testing.T) {
	is := is.New(t)
	s := state960(t, 0, func(b *position.Builder) {
		b.Clear(square.C1).Clear(square.D1).Clear(square.E1)
	})
	set := s.LegalMovesFrom(square.G1)
	// the short transit square f1 still holds the other rook
	is.Equal(set.Destinations(), square.MaskOf(square.C1, square.F1))
	lm, ok := set.Get(square.C1)
	is.True(ok)
	is.Equal(lm.Kind, move.LongCastle)
	lm, ok = set.Get(square.F1)
	is.True(ok)
	is.Equal(lm.Kind, move.LongCastle)

	mv, err := s.ValidateMove(move.New(square.G1, square.C1))
	is.NoErr(err)
	s.ApplyMove(mv)
	pos := s.Position()
	is.Equal(pos.At(square.C1), material.New(material.White, material.King))
	is.Equal(pos.At(square.D1), material.New(material.White, material.Rook))
	is.Equal(pos.At(square.F1), material.None)
	is.Equal(pos.At(square.H1), material.New(material.White, material.Rook))
}
