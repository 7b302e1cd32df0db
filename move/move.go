// Package move defines the move vocabulary: the wire-shaped Move a
// caller submits, the validated LegalMove a generator produces, the
// speculative PreMove, and the destination-indexed Set that holds
// either. The package is pure data; generation and validation live in
// movegen.
package move

import (
	"errors"
	"fmt"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/square"
)

// ErrIllegalMove is returned when a submitted move is not in the legal
// set for the current position.
var ErrIllegalMove = errors.New("illegal move")

// Promotion is the piece a pawn becomes on the last rank. The zero
// value means no promotion.
type Promotion uint8

const (
	NoPromotion Promotion = iota
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// Promotions lists the four promotion choices.
var Promotions = []Promotion{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// Piece returns the piece kind the pawn turns into.
func (p Promotion) Piece() material.Piece {
	switch p {
	case PromoteQueen:
		return material.Queen
	case PromoteRook:
		return material.Rook
	case PromoteBishop:
		return material.Bishop
	case PromoteKnight:
		return material.Knight
	}
	panic("no promotion piece")
}

func (p Promotion) String() string {
	switch p {
	case NoPromotion:
		return ""
	case PromoteQueen:
		return "q"
	case PromoteRook:
		return "r"
	case PromoteBishop:
		return "b"
	case PromoteKnight:
		return "n"
	}
	return "?"
}

// Move is the caller-facing move shape: source, destination and an
// optional promotion choice. It carries no claim of legality.
type Move struct {
	From      square.Square
	To        square.Square
	Promotion Promotion
}

// New builds a move without a promotion.
func New(from, to square.Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion builds a promoting move.
func NewPromotion(from, to square.Square, p Promotion) Move {
	return Move{From: from, To: to, Promotion: p}
}

func (m Move) String() string {
	return m.From.String() + m.To.String() + m.Promotion.String()
}

// Kind tags how a move alters the position.
type Kind uint8

const (
	Standard Kind = iota
	DoubleAdvance
	EnPassant
	Promoting
	ShortCastle
	LongCastle
)

func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case DoubleAdvance:
		return "double advance"
	case EnPassant:
		return "en passant"
	case Promoting:
		return "promotion"
	case ShortCastle:
		return "short castle"
	case LongCastle:
		return "long castle"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// LegalMove is a move that has passed legality validation for a
// specific position, tagged with how it must be applied. Castles carry
// no from/to; the position derives the king and rook squares from its
// castling state.
type LegalMove struct {
	Kind      Kind
	From      square.Square
	To        square.Square
	Promotion Promotion
}

// NewStandard tags a plain piece move or capture.
func NewStandard(from, to square.Square) LegalMove {
	return LegalMove{Kind: Standard, From: from, To: to}
}

// NewDoubleAdvance tags a two-square pawn push.
func NewDoubleAdvance(from, to square.Square) LegalMove {
	return LegalMove{Kind: DoubleAdvance, From: from, To: to}
}

// NewEnPassant tags an en-passant capture onto the bypassed square.
func NewEnPassant(from, to square.Square) LegalMove {
	return LegalMove{Kind: EnPassant, From: from, To: to}
}

// NewPromoting tags a pawn move onto the last rank.
func NewPromoting(from, to square.Square, p Promotion) LegalMove {
	return LegalMove{Kind: Promoting, From: from, To: to, Promotion: p}
}

// NewShortCastle tags a kingside castle.
func NewShortCastle() LegalMove {
	return LegalMove{Kind: ShortCastle, From: square.Invalid, To: square.Invalid}
}

// NewLongCastle tags a queenside castle.
func NewLongCastle() LegalMove {
	return LegalMove{Kind: LongCastle, From: square.Invalid, To: square.Invalid}
}

func (m LegalMove) String() string {
	switch m.Kind {
	case ShortCastle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	default:
		return m.From.String() + m.To.String() + m.Promotion.String()
	}
}

// PreMove is a structurally plausible move queued by the side not on
// turn. It skips legality checks entirely; they run when the pre-move
// is promoted to a real submission.
type PreMove struct {
	Kind      Kind
	From      square.Square
	To        square.Square
	Promotion Promotion
}

// NewPreStandard tags a plain pre-move.
func NewPreStandard(from, to square.Square) PreMove {
	return PreMove{Kind: Standard, From: from, To: to}
}

// NewPrePromoting tags a promoting pre-move.
func NewPrePromoting(from, to square.Square, p Promotion) PreMove {
	return PreMove{Kind: Promoting, From: from, To: to, Promotion: p}
}

// NewPreShortCastle tags a kingside castle pre-move.
func NewPreShortCastle() PreMove {
	return PreMove{Kind: ShortCastle, From: square.Invalid, To: square.Invalid}
}

// NewPreLongCastle tags a queenside castle pre-move.
func NewPreLongCastle() PreMove {
	return PreMove{Kind: LongCastle, From: square.Invalid, To: square.Invalid}
}

func (m PreMove) String() string {
	switch m.Kind {
	case ShortCastle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	default:
		return m.From.String() + m.To.String() + m.Promotion.String()
	}
}
