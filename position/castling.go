package position

import (
	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/square"
)

// CastlingRights records which castles a side may still play. Rights
// are only ever revoked, never re-granted.
type CastlingRights struct {
	short bool
	long  bool
}

// AllCastlingRights is the starting state.
var AllCastlingRights = CastlingRights{short: true, long: true}

// Short reports whether the kingside castle is still available.
func (r CastlingRights) Short() bool {
	return r.short
}

// Long reports whether the queenside castle is still available.
func (r CastlingRights) Long() bool {
	return r.long
}

// Castle is a read-only view of one side's castling geometry: the
// retained rights plus the squares involved, derived from the back
// rank. King destinations are fixed at the g and c files and rook
// destinations at f and d, whatever the starting files.
type Castle struct {
	rights   CastlingRights
	backRank backrank.BackRank
	rank     square.Rank
}

func backRankOf(c material.Color) square.Rank {
	if c == material.White {
		return square.Rank1
	}
	return square.Rank8
}

// Short reports whether the kingside castle right is retained.
func (c Castle) Short() bool {
	return c.rights.short
}

// Long reports whether the queenside castle right is retained.
func (c Castle) Long() bool {
	return c.rights.long
}

// KingSrc returns the king's starting square.
func (c Castle) KingSrc() square.Square {
	return square.New(c.backRank.KingFile(), c.rank)
}

// ShortRookSrc returns the kingside rook's starting square.
func (c Castle) ShortRookSrc() square.Square {
	_, kingside := c.backRank.RookFiles()
	return square.New(kingside, c.rank)
}

// LongRookSrc returns the queenside rook's starting square.
func (c Castle) LongRookSrc() square.Square {
	queenside, _ := c.backRank.RookFiles()
	return square.New(queenside, c.rank)
}

// ShortKingDest returns the king's square after castling kingside.
func (c Castle) ShortKingDest() square.Square {
	return square.New(square.FileG, c.rank)
}

// ShortRookDest returns the rook's square after castling kingside.
func (c Castle) ShortRookDest() square.Square {
	return square.New(square.FileF, c.rank)
}

// LongKingDest returns the king's square after castling queenside.
func (c Castle) LongKingDest() square.Square {
	return square.New(square.FileC, c.rank)
}

// LongRookDest returns the rook's square after castling queenside.
func (c Castle) LongRookDest() square.Square {
	return square.New(square.FileD, c.rank)
}

// ShortTransit returns the squares that must be empty for a kingside
// castle: every square either piece crosses or lands on, except the
// two starting squares themselves. The king and rook may cross or
// swap, so both paths count.
func (c Castle) ShortTransit() square.Mask {
	return c.transit(c.ShortKingDest(), c.ShortRookSrc(), c.ShortRookDest())
}

// LongTransit returns the squares that must be empty for a queenside
// castle.
func (c Castle) LongTransit() square.Mask {
	return c.transit(c.LongKingDest(), c.LongRookSrc(), c.LongRookDest())
}

func (c Castle) transit(kingDest, rookSrc, rookDest square.Square) square.Mask {
	kingSrc := c.KingSrc()
	kingPath := square.Between(kingSrc, kingDest).With(kingDest)
	rookPath := square.Between(rookSrc, rookDest).With(rookDest)
	return (kingPath | rookPath).Without(kingSrc).Without(rookSrc)
}

// ShortAttackLane returns the squares the king crosses or lands on
// castling kingside. None of them may be attacked; the starting square
// is checked separately.
func (c Castle) ShortAttackLane() square.Mask {
	kingDest := c.ShortKingDest()
	return square.Between(c.KingSrc(), kingDest).With(kingDest)
}

// LongAttackLane returns the king's transit squares for the queenside
// castle.
func (c Castle) LongAttackLane() square.Mask {
	kingDest := c.LongKingDest()
	return square.Between(c.KingSrc(), kingDest).With(kingDest)
}
