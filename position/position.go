// Package position holds the full state of a chess position: piece
// placement kept both square-wise and as bitboard masks, castling
// rights, the en-passant target, the ply counter and the halfmove
// clock. Applying moves mutates a position in place; callers that need
// the old state copy first (Position is a value type with no interior
// pointers).
package position

import (
	"errors"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/square"
)

// ErrInvalidPosition is returned by the builder when the assembled
// position breaks a structural rule.
var ErrInvalidPosition = errors.New("invalid position")

// Masks is the bitboard mirror of the square contents: one mask per
// color and one per piece kind. The per-kind masks are pairwise
// disjoint, as are the two color masks.
type Masks struct {
	colors material.Pair[square.Mask]
	kinds  [6]square.Mask
}

// MatingMaterial grades what a side has besides its king, for the
// insufficient-material heuristic.
type MatingMaterial uint8

const (
	Sufficient MatingMaterial = iota
	TwoKnights
	OneKnight
	OneBishop
	LoneKing
)

// Position is a complete board state.
type Position struct {
	squares   [64]material.Material
	masks     Masks
	backRank  backrank.BackRank
	castling  material.Pair[CastlingRights]
	enPassant square.Square
	nextMove  MoveID
	halfmove  uint8
}

// New sets up the starting position for the given back rank: pawns on
// ranks 2 and 7, the arrangement's pieces on ranks 1 and 8, white to
// move, full castling rights.
func New(br backrank.BackRank) Position {
	p := Position{
		backRank:  br,
		castling:  material.NewPair(AllCastlingRights, AllCastlingRights),
		enPassant: square.Invalid,
	}
	for f := square.FileA; f <= square.FileH; f++ {
		p.place(square.New(f, square.Rank2), material.New(material.White, material.Pawn))
		p.place(square.New(f, square.Rank1), material.New(material.White, br.At(f)))
		p.place(square.New(f, square.Rank7), material.New(material.Black, material.Pawn))
		p.place(square.New(f, square.Rank8), material.New(material.Black, br.At(f)))
	}
	return p
}

// NewStandard sets up the classic chess starting position.
func NewStandard() Position {
	return New(backrank.Standard())
}

// Turn returns the side to move.
func (p Position) Turn() material.Color {
	return p.nextMove.Turn()
}

// At returns the material on a square, material.None when empty.
func (p Position) At(sq square.Square) material.Material {
	return p.squares[sq]
}

// BackRank returns the starting arrangement this game uses.
func (p Position) BackRank() backrank.BackRank {
	return p.backRank
}

// NextMoveID returns the id the next applied move will get.
func (p Position) NextMoveID() MoveID {
	return p.nextMove
}

// MoveNumber returns the current full-move number.
func (p Position) MoveNumber() int {
	return p.nextMove.MoveNumber()
}

// HalfmoveClock returns the number of plies since the last pawn move
// or capture.
func (p Position) HalfmoveClock() int {
	return int(p.halfmove)
}

// EnPassant returns the en-passant target square, if a double advance
// was just played.
func (p Position) EnPassant() (square.Square, bool) {
	return p.enPassant, p.enPassant != square.Invalid
}

// OccupiedBy returns the mask of one side's pieces.
func (p Position) OccupiedBy(c material.Color) square.Mask {
	return p.masks.colors.Get(c)
}

// Occupied returns the mask of all pieces.
func (p Position) Occupied() square.Mask {
	return p.masks.colors.Get(material.White) | p.masks.colors.Get(material.Black)
}

// Ours returns the mask of the moving side's pieces.
func (p Position) Ours() square.Mask {
	return p.OccupiedBy(p.Turn())
}

// Theirs returns the mask of the waiting side's pieces.
func (p Position) Theirs() square.Mask {
	return p.OccupiedBy(p.Turn().Other())
}

// Pieces returns the mask of all pieces of one kind, both colors.
func (p Position) Pieces(kind material.Piece) square.Mask {
	return p.masks.kinds[kind]
}

// PiecesOf returns the mask of one side's pieces of one kind.
func (p Position) PiecesOf(c material.Color, kind material.Piece) square.Mask {
	return p.OccupiedBy(c) & p.masks.kinds[kind]
}

// Horizontals returns the rank-and-file sliders, both colors.
func (p Position) Horizontals() square.Mask {
	return p.masks.kinds[material.Rook] | p.masks.kinds[material.Queen]
}

// Diagonals returns the diagonal sliders, both colors.
func (p Position) Diagonals() square.Mask {
	return p.masks.kinds[material.Bishop] | p.masks.kinds[material.Queen]
}

// LinePieces returns all sliders, both colors.
func (p Position) LinePieces() square.Mask {
	return p.Horizontals() | p.Diagonals()
}

// KingOf returns the given side's king square.
func (p Position) KingOf(c material.Color) square.Square {
	return p.PiecesOf(c, material.King).First()
}

// OurKing returns the moving side's king square.
func (p Position) OurKing() square.Square {
	return p.KingOf(p.Turn())
}

// TheirKing returns the waiting side's king square.
func (p Position) TheirKing() square.Square {
	return p.KingOf(p.Turn().Other())
}

// CastlingRightsOf returns the retained rights of one side.
func (p Position) CastlingRightsOf(c material.Color) CastlingRights {
	return p.castling.Get(c)
}

// Castling returns the castle view for one side.
func (p Position) Castling(c material.Color) Castle {
	return Castle{
		rights:   p.castling.Get(c),
		backRank: p.backRank,
		rank:     backRankOf(c),
	}
}

// OurCastling returns the moving side's castle view.
func (p Position) OurCastling() Castle {
	return p.Castling(p.Turn())
}

// TheirCastling returns the waiting side's castle view.
func (p Position) TheirCastling() Castle {
	return p.Castling(p.Turn().Other())
}

// MatingMaterial grades one side's non-king material.
func (p Position) MatingMaterial(c material.Color) MatingMaterial {
	pieces := p.OccupiedBy(c) &^ p.masks.kinds[material.King]
	if !(pieces & p.masks.kinds[material.Pawn]).IsEmpty() ||
		!(pieces & p.masks.kinds[material.Rook]).IsEmpty() ||
		!(pieces & p.masks.kinds[material.Queen]).IsEmpty() {
		return Sufficient
	}
	knights := pieces & p.masks.kinds[material.Knight]
	switch pieces.Count() {
	case 0:
		return LoneKing
	case 1:
		if pieces == knights {
			return OneKnight
		}
		return OneBishop
	case 2:
		if pieces == knights {
			return TwoKnights
		}
	}
	return Sufficient
}

// ApplyMove applies a validated move and returns its id. The caller
// guarantees legality; internal inconsistencies panic.
func (p *Position) ApplyMove(mv move.LegalMove) MoveID {
	us := p.Turn()
	them := us.Other()
	p.halfmove++
	switch mv.Kind {
	case move.Standard:
		m := p.mustRemove(mv.From)
		captured := p.place(mv.To, m)
		p.enPassant = square.Invalid
		p.revokeCastling(us, mv.From)
		p.revokeCastling(them, mv.To)
		if !captured.IsEmpty() || m.Piece() == material.Pawn {
			p.halfmove = 0
		}
	case move.EnPassant:
		m := p.mustRemove(mv.From)
		p.mustRemove(square.New(mv.To.File(), mv.From.Rank()))
		p.place(mv.To, m)
		p.enPassant = square.Invalid
		p.halfmove = 0
	case move.DoubleAdvance:
		skipped := square.Between(mv.From, mv.To).First()
		m := p.mustRemove(mv.From)
		p.place(mv.To, m)
		p.enPassant = skipped
		p.halfmove = 0
	case move.Promoting:
		m := p.mustRemove(mv.From)
		p.place(mv.To, material.New(m.Color(), mv.Promotion.Piece()))
		p.revokeCastling(them, mv.To)
		p.enPassant = square.Invalid
		p.halfmove = 0
	case move.ShortCastle:
		c := p.Castling(us)
		king := p.mustRemove(c.KingSrc())
		rook := p.mustRemove(c.ShortRookSrc())
		p.place(c.ShortKingDest(), king)
		p.place(c.ShortRookDest(), rook)
		p.castling.Set(us, CastlingRights{})
		p.enPassant = square.Invalid
	case move.LongCastle:
		c := p.Castling(us)
		king := p.mustRemove(c.KingSrc())
		rook := p.mustRemove(c.LongRookSrc())
		p.place(c.LongKingDest(), king)
		p.place(c.LongRookDest(), rook)
		p.castling.Set(us, CastlingRights{})
		p.enPassant = square.Invalid
	}
	id := p.nextMove
	p.nextMove = id.Next()
	return id
}

// ApplyPreMove applies a speculative move for the side not on turn,
// without advancing the ply counter or the clocks. It backs the
// pre-move preview; the mover here is "them".
func (p *Position) ApplyPreMove(mv move.PreMove) {
	mover := p.Turn().Other()
	switch mv.Kind {
	case move.Standard:
		m := p.mustRemove(mv.From)
		p.place(mv.To, m)
		p.revokeCastling(mover, mv.From)
		p.revokeCastling(p.Turn(), mv.To)
	case move.Promoting:
		m := p.mustRemove(mv.From)
		p.place(mv.To, material.New(m.Color(), mv.Promotion.Piece()))
		p.revokeCastling(p.Turn(), mv.To)
	case move.ShortCastle:
		c := p.Castling(mover)
		king := p.mustRemove(c.KingSrc())
		rook := p.mustRemove(c.ShortRookSrc())
		p.place(c.ShortKingDest(), king)
		p.place(c.ShortRookDest(), rook)
		p.castling.Set(mover, CastlingRights{})
	case move.LongCastle:
		c := p.Castling(mover)
		king := p.mustRemove(c.KingSrc())
		rook := p.mustRemove(c.LongRookSrc())
		p.place(c.LongKingDest(), king)
		p.place(c.LongRookDest(), rook)
		p.castling.Set(mover, CastlingRights{})
	}
}

func (p *Position) revokeCastling(c material.Color, sq square.Square) {
	view := p.Castling(c)
	rights := p.castling.Get(c)
	if rights.short && (sq == view.KingSrc() || sq == view.ShortRookSrc()) {
		rights.short = false
	}
	if rights.long && (sq == view.KingSrc() || sq == view.LongRookSrc()) {
		rights.long = false
	}
	p.castling.Set(c, rights)
}

// place puts material on a square, returning whatever it replaced.
func (p *Position) place(sq square.Square, m material.Material) material.Material {
	replaced := p.removeAt(sq)
	p.squares[sq] = m
	bit := sq.Bit()
	*p.masks.colors.Ptr(m.Color()) |= bit
	p.masks.kinds[m.Piece()] |= bit
	return replaced
}

func (p *Position) removeAt(sq square.Square) material.Material {
	m := p.squares[sq]
	if m.IsEmpty() {
		return material.None
	}
	p.squares[sq] = material.None
	bit := sq.Bit()
	*p.masks.colors.Ptr(m.Color()) &^= bit
	p.masks.kinds[m.Piece()] &^= bit
	return m
}

func (p *Position) mustRemove(sq square.Square) material.Material {
	m := p.removeAt(sq)
	if m.IsEmpty() {
		panic("removing material from empty square " + sq.String())
	}
	return m
}
