package position

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/square"
)

func TestStandardCastleGeometry(t *testing.T) {
	is := is.New(t)
	p := NewStandard()
	c := p.Castling(material.White)
	is.Equal(c.KingSrc(), square.E1)
	is.Equal(c.ShortRookSrc(), square.H1)
	is.Equal(c.LongRookSrc(), square.A1)
	is.Equal(c.ShortKingDest(), square.G1)
	is.Equal(c.ShortRookDest(), square.F1)
	is.Equal(c.LongKingDest(), square.C1)
	is.Equal(c.LongRookDest(), square.D1)
	is.Equal(c.ShortTransit(), square.MaskOf(square.F1, square.G1))
	is.Equal(c.LongTransit(), square.MaskOf(square.B1, square.C1, square.D1))
	is.Equal(c.ShortAttackLane(), square.MaskOf(square.F1, square.G1))
	is.Equal(c.LongAttackLane(), square.MaskOf(square.D1, square.C1))

	black := p.Castling(material.Black)
	is.Equal(black.KingSrc(), square.E8)
	is.Equal(black.ShortKingDest(), square.G8)
	is.Equal(black.LongRookDest(), square.D8)
}

func TestCastleGeometryKingAlreadyHome(t *testing.T) {
	is := is.New(t)
	// arrangement 0 is BBQNNRKR: the king starts on g, so castling
	// kingside only relocates the rook
	rank, err := backrank.New(0)
	is.NoErr(err)
	p := New(rank)
	c := p.Castling(material.White)
	is.Equal(c.KingSrc(), square.G1)
	is.Equal(c.ShortRookSrc(), square.H1)
	is.Equal(c.ShortKingDest(), square.G1)
	is.Equal(c.ShortTransit(), square.MaskOf(square.F1))
	is.Equal(c.ShortAttackLane(), square.MaskOf(square.G1))
	// queenside walks the king from g to c over the f-rook's square
	is.Equal(c.LongRookSrc(), square.F1)
	is.Equal(c.LongTransit(),
		square.MaskOf(square.C1, square.D1, square.E1))
	is.Equal(c.LongAttackLane(),
		square.MaskOf(square.C1, square.D1, square.E1, square.F1))
}
