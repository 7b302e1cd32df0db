package position

import (
	"fmt"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/square"
)

// Builder assembles custom positions for analysis and tests. It starts
// from the full starting position of a back rank and perturbs it;
// Build validates the result.
type Builder struct {
	pos Position
}

// NewBuilder starts from the standard starting position.
func NewBuilder() *Builder {
	return NewBuilderFor(backrank.Standard())
}

// NewBuilderFor starts from the starting position of the given back
// rank.
func NewBuilderFor(br backrank.BackRank) *Builder {
	return &Builder{pos: New(br)}
}

// Place puts material on a square, replacing any occupant.
func (b *Builder) Place(sq square.Square, m material.Material) *Builder {
	b.pos.place(sq, m)
	return b
}

// Clear empties a square.
func (b *Builder) Clear(sq square.Square) *Builder {
	b.pos.removeAt(sq)
	return b
}

// SetTurn hands the move to the given side by bumping the ply counter
// when its parity disagrees.
func (b *Builder) SetTurn(c material.Color) *Builder {
	if b.pos.Turn() != c {
		b.pos.nextMove = b.pos.nextMove.Next()
	}
	return b
}

// SetMoveID pins the next move id exactly.
func (b *Builder) SetMoveID(id MoveID) *Builder {
	b.pos.nextMove = id
	return b
}

// SetEnPassant marks the en-passant target square.
func (b *Builder) SetEnPassant(sq square.Square) *Builder {
	b.pos.enPassant = sq
	return b
}

// ClearEnPassant removes the en-passant target.
func (b *Builder) ClearEnPassant() *Builder {
	b.pos.enPassant = square.Invalid
	return b
}

// SetHalfmoveClock pins the plies-since-progress counter.
func (b *Builder) SetHalfmoveClock(n int) *Builder {
	b.pos.halfmove = uint8(n)
	return b
}

// ClearShortCastle revokes one side's kingside right.
func (b *Builder) ClearShortCastle(c material.Color) *Builder {
	rights := b.pos.castling.Get(c)
	rights.short = false
	b.pos.castling.Set(c, rights)
	return b
}

// ClearLongCastle revokes one side's queenside right.
func (b *Builder) ClearLongCastle(c material.Color) *Builder {
	rights := b.pos.castling.Get(c)
	rights.long = false
	b.pos.castling.Set(c, rights)
	return b
}

// ClearCastling revokes both of one side's rights.
func (b *Builder) ClearCastling(c material.Color) *Builder {
	b.pos.castling.Set(c, CastlingRights{})
	return b
}

// Build validates the assembled position. Validation is structural:
// one king per color, no pawns on the back ranks, retained castling
// rights backed by pieces on their starting squares, and a coherent
// en-passant target.
func (b *Builder) Build() (Position, error) {
	pos := b.pos
	for _, c := range []material.Color{material.White, material.Black} {
		if n := pos.PiecesOf(c, material.King).Count(); n != 1 {
			return Position{}, fmt.Errorf("%w: %v has %d kings", ErrInvalidPosition, c, n)
		}
	}
	edges := square.RankMask(square.Rank1) | square.RankMask(square.Rank8)
	if !(pos.Pieces(material.Pawn) & edges).IsEmpty() {
		return Position{}, fmt.Errorf("%w: pawn on a back rank", ErrInvalidPosition)
	}
	for _, c := range []material.Color{material.White, material.Black} {
		view := pos.Castling(c)
		rook := material.New(c, material.Rook)
		king := material.New(c, material.King)
		if (view.Short() || view.Long()) && pos.At(view.KingSrc()) != king {
			return Position{}, fmt.Errorf("%w: %v castling rights without king on %v",
				ErrInvalidPosition, c, view.KingSrc())
		}
		if view.Short() && pos.At(view.ShortRookSrc()) != rook {
			return Position{}, fmt.Errorf("%w: %v kingside right without rook on %v",
				ErrInvalidPosition, c, view.ShortRookSrc())
		}
		if view.Long() && pos.At(view.LongRookSrc()) != rook {
			return Position{}, fmt.Errorf("%w: %v queenside right without rook on %v",
				ErrInvalidPosition, c, view.LongRookSrc())
		}
	}
	if err := validateEnPassant(&pos); err != nil {
		return Position{}, err
	}
	return pos, nil
}

func validateEnPassant(pos *Position) error {
	target, ok := pos.EnPassant()
	if !ok {
		return nil
	}
	// the side that just moved sits one rank past the target, its
	// origin two ranks before it
	var wantRank square.Rank
	var pawnRank, originRank square.Rank
	mover := pos.Turn().Other()
	if mover == material.Black {
		wantRank, pawnRank, originRank = square.Rank6, square.Rank5, square.Rank7
	} else {
		wantRank, pawnRank, originRank = square.Rank3, square.Rank4, square.Rank2
	}
	if target.Rank() != wantRank {
		return fmt.Errorf("%w: en passant target %v on wrong rank", ErrInvalidPosition, target)
	}
	if !pos.At(target).IsEmpty() {
		return fmt.Errorf("%w: en passant target %v occupied", ErrInvalidPosition, target)
	}
	pawnSq := square.New(target.File(), pawnRank)
	if pos.At(pawnSq) != material.New(mover, material.Pawn) {
		return fmt.Errorf("%w: en passant target %v without bypassed pawn", ErrInvalidPosition, target)
	}
	if !pos.At(square.New(target.File(), originRank)).IsEmpty() {
		return fmt.Errorf("%w: en passant origin square occupied", ErrInvalidPosition)
	}
	return nil
}
