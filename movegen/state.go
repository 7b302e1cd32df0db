// Package movegen computes legal moves. A MoveState wraps a position
// together with caches derived from it: the attack map of the waiting
// side, the pieces giving check, and pin lanes. The caches are rebuilt
// whenever a move is applied and never mutated in between, so a
// MoveState is safe for concurrent reads.
package movegen

import (
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/position"
	"github.com/blunderdome/chesskit/square"
)

// MoveState is a position plus derived legality caches.
type MoveState struct {
	pos       position.Position
	checks    square.Mask
	attackers [64]square.Mask
	pinned    [64]square.Mask
}

// NewState builds the caches for a position.
func NewState(pos position.Position) *MoveState {
	s := &MoveState{pos: pos}
	s.recompute()
	return s
}

// NewStandardState starts a MoveState at the classic starting position.
func NewStandardState() *MoveState {
	return NewState(position.NewStandard())
}

// Position returns a copy of the underlying position.
func (s *MoveState) Position() position.Position {
	return s.pos
}

// ApplyMove applies a validated move and rebuilds the caches.
func (s *MoveState) ApplyMove(mv move.LegalMove) position.MoveID {
	id := s.pos.ApplyMove(mv)
	s.recompute()
	return id
}

// Child returns a new state with the move applied, leaving this one
// untouched.
func (s *MoveState) Child(mv move.LegalMove) *MoveState {
	pos := s.pos
	pos.ApplyMove(mv)
	return NewState(pos)
}

// IsCheck reports whether the side to move is in check.
func (s *MoveState) IsCheck() bool {
	return !s.checks.IsEmpty()
}

// IsDoubleCheck reports whether two pieces give check at once.
func (s *MoveState) IsDoubleCheck() bool {
	return s.checks.Count() > 1
}

// Checks returns the mask of pieces checking our king.
func (s *MoveState) Checks() square.Mask {
	return s.checks
}

// IsAttacked reports whether the waiting side attacks the square.
func (s *MoveState) IsAttacked(sq square.Square) bool {
	return !s.attackers[sq].IsEmpty()
}

// Attackers returns the waiting side's pieces attacking the square.
func (s *MoveState) Attackers(sq square.Square) square.Mask {
	return s.attackers[sq]
}

// PinLane returns the ray a pinned piece is confined to: the squares
// between king and pinner, plus the pinner's own square so the pin can
// be resolved by capture. The second return is false when the piece is
// not pinned.
func (s *MoveState) PinLane(sq square.Square) (square.Mask, bool) {
	lane := s.pinned[sq]
	return lane, !lane.IsEmpty()
}

func (s *MoveState) anyAttacked(lane square.Mask) bool {
	for !lane.IsEmpty() {
		if s.IsAttacked(lane.Pop()) {
			return true
		}
	}
	return false
}

func (s *MoveState) recompute() {
	s.checks = square.Empty
	s.attackers = [64]square.Mask{}
	s.pinned = [64]square.Mask{}

	for m := s.pos.Theirs(); !m.IsEmpty(); {
		from := m.Pop()
		for a := s.attacked(from); !a.IsEmpty(); {
			s.attackers[a.Pop()] |= from.Bit()
		}
	}
	king := s.pos.OurKing()
	s.checks = s.attackers[king]

	them := s.pos.Theirs()
	sliders := them & s.pos.Horizontals() & square.RookRays(king)
	sliders |= them & s.pos.Diagonals() & square.BishopRays(king)
	for m := sliders; !m.IsEmpty(); {
		from := m.Pop()
		lane := square.Between(from, king)
		blockers := lane & s.pos.Occupied()
		if blockers.Count() != 1 {
			continue
		}
		blockers &= s.pos.Ours()
		if !blockers.IsEmpty() {
			s.pinned[blockers.First()] = lane.With(from)
		}
	}
}

// attacked returns every square the piece on from attacks, blockers
// included: a defended piece's square counts as attacked, squares
// beyond the first blocker do not.
func (s *MoveState) attacked(from square.Square) square.Mask {
	m := s.pos.At(from)
	switch m.Piece() {
	case material.King:
		return square.KingMoves(from)
	case material.Queen:
		return s.slidingAttacks(from, square.QueenRays(from))
	case material.Rook:
		return s.slidingAttacks(from, square.RookRays(from))
	case material.Bishop:
		return s.slidingAttacks(from, square.BishopRays(from))
	case material.Knight:
		return square.KnightMoves(from)
	default:
		return square.PawnAttacks(m.Color(), from)
	}
}

func (s *MoveState) slidingAttacks(from square.Square, rays square.Mask) square.Mask {
	for m := rays & s.pos.Occupied(); !m.IsEmpty(); {
		rays &^= square.Shielded(from, m.Pop())
	}
	return rays
}

// slidingMoves trims a slider's rays for movement: own pieces block
// their square and beyond, enemy pieces may be captured but shield
// what is behind them.
func (s *MoveState) slidingMoves(from square.Square, rays square.Mask) square.Mask {
	ours := s.pos.Ours()
	for m := rays & s.pos.Occupied(); !m.IsEmpty(); {
		sq := m.Pop()
		if ours.Has(sq) {
			rays &^= square.Blocked(from, sq)
		} else {
			rays &^= square.Shielded(from, sq)
		}
	}
	return rays
}

// isAttackedBy tests attacks in an arbitrary position, used by the
// en-passant legality simulation where no cached state exists.
func isAttackedBy(pos *position.Position, sq square.Square, by material.Color) bool {
	if !(square.PawnAttacks(by.Other(), sq) & pos.PiecesOf(by, material.Pawn)).IsEmpty() {
		return true
	}
	if !(square.KnightMoves(sq) & pos.PiecesOf(by, material.Knight)).IsEmpty() {
		return true
	}
	if !(square.KingMoves(sq) & pos.PiecesOf(by, material.King)).IsEmpty() {
		return true
	}
	occupied := pos.Occupied()
	sliders := pos.OccupiedBy(by) & pos.Horizontals() & square.RookRays(sq)
	sliders |= pos.OccupiedBy(by) & pos.Diagonals() & square.BishopRays(sq)
	for !sliders.IsEmpty() {
		if (square.Between(sliders.Pop(), sq) & occupied).IsEmpty() {
			return true
		}
	}
	return false
}
