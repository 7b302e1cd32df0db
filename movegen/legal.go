package movegen

import (
	"fmt"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/square"
)

const fullBoard = ^square.Mask(0)

// LegalMovesFrom returns the legal moves of the piece on from, empty
// when the square is vacant or holds the waiting side's piece. A
// promoting destination carries one entry standing in for all four
// promotion choices.
func (s *MoveState) LegalMovesFrom(from square.Square) *move.Set[move.LegalMove] {
	set := &move.Set[move.LegalMove]{}
	m := s.pos.At(from)
	if m.IsEmpty() || m.Color() != s.pos.Turn() {
		return set
	}
	switch m.Piece() {
	case material.King:
		s.kingMoves(from, set)
	case material.Queen:
		s.lineMoves(from, square.QueenRays(from), set)
	case material.Rook:
		s.lineMoves(from, square.RookRays(from), set)
	case material.Bishop:
		s.lineMoves(from, square.BishopRays(from), set)
	case material.Knight:
		s.knightMoves(from, set)
	case material.Pawn:
		s.pawnMoves(from, set)
	}
	return set
}

// AllLegalMoves lists every legal move in the position, promoting
// entries expanded into the four concrete choices.
func (s *MoveState) AllLegalMoves() []move.LegalMove {
	var out []move.LegalMove
	for m := s.pos.Ours(); !m.IsEmpty(); {
		set := s.LegalMovesFrom(m.Pop())
		seenShort, seenLong := false, false
		for _, lm := range set.Values() {
			switch lm.Kind {
			case move.ShortCastle:
				if seenShort {
					continue
				}
				seenShort = true
				out = append(out, lm)
			case move.LongCastle:
				if seenLong {
					continue
				}
				seenLong = true
				out = append(out, lm)
			case move.Promoting:
				for _, p := range move.Promotions {
					out = append(out, move.NewPromoting(lm.From, lm.To, p))
				}
			default:
				out = append(out, lm)
			}
		}
	}
	return out
}

// CanMove reports whether the side to move has any legal move.
func (s *MoveState) CanMove() bool {
	for m := s.pos.Ours(); !m.IsEmpty(); {
		if s.LegalMovesFrom(m.Pop()).Len() > 0 {
			return true
		}
	}
	return false
}

// ValidateMove maps a wire move onto the current legal set. Promoting
// moves require a promotion choice; every other move forbids one.
func (s *MoveState) ValidateMove(mv move.Move) (move.LegalMove, error) {
	lm, ok := s.LegalMovesFrom(mv.From).Get(mv.To)
	if !ok {
		return move.LegalMove{}, fmt.Errorf("%w: %v", move.ErrIllegalMove, mv)
	}
	if lm.Kind == move.Promoting {
		if mv.Promotion == move.NoPromotion {
			return move.LegalMove{}, fmt.Errorf("%w: %v needs a promotion choice",
				move.ErrIllegalMove, mv)
		}
		lm.Promotion = mv.Promotion
		return lm, nil
	}
	if mv.Promotion != move.NoPromotion {
		return move.LegalMove{}, fmt.Errorf("%w: %v cannot promote", move.ErrIllegalMove, mv)
	}
	return lm, nil
}

// restriction returns the destinations open to non-king pieces under
// the current checks: everything when not in check, the checker and
// its blocking lane under single check, nothing under double check.
func (s *MoveState) restriction() square.Mask {
	switch s.checks.Count() {
	case 0:
		return fullBoard
	case 1:
		checker := s.checks.First()
		return s.checks | square.Between(checker, s.pos.OurKing())
	default:
		return square.Empty
	}
}

func (s *MoveState) lineMoves(from square.Square, rays square.Mask, set *move.Set[move.LegalMove]) {
	if lane, pinned := s.PinLane(from); pinned {
		rays &= lane
	}
	dests := s.slidingMoves(from, rays) & s.restriction()
	for !dests.IsEmpty() {
		dest := dests.Pop()
		set.Insert(dest, move.NewStandard(from, dest))
	}
}

func (s *MoveState) knightMoves(from square.Square, set *move.Set[move.LegalMove]) {
	dests := square.KnightMoves(from) &^ s.pos.Ours()
	if lane, pinned := s.PinLane(from); pinned {
		// a knight never stays on a line through its own square
		dests &= lane
	}
	dests &= s.restriction()
	for !dests.IsEmpty() {
		dest := dests.Pop()
		set.Insert(dest, move.NewStandard(from, dest))
	}
}

func (s *MoveState) kingMoves(from square.Square, set *move.Set[move.LegalMove]) {
	dests := square.KingMoves(from) &^ s.pos.Ours()
	// stepping away from a checking slider along its ray stays in
	// check even though the square is shielded by the king itself
	for m := s.checks & s.pos.LinePieces(); !m.IsEmpty(); {
		dests &^= square.Shielded(m.Pop(), from)
	}
	for !dests.IsEmpty() {
		dest := dests.Pop()
		if !s.IsAttacked(dest) {
			set.Insert(dest, move.NewStandard(from, dest))
		}
	}
	s.castleMoves(set)
}

func (s *MoveState) castleMoves(set *move.Set[move.LegalMove]) {
	if s.IsCheck() {
		return
	}
	c := s.pos.OurCastling()
	occupied := s.pos.Occupied()
	if c.Short() &&
		(c.ShortTransit()&occupied).IsEmpty() &&
		!s.anyAttacked(c.ShortAttackLane()) {
		set.Insert(c.ShortKingDest(), move.NewShortCastle())
		set.Insert(c.ShortRookSrc(), move.NewShortCastle())
	}
	if c.Long() &&
		(c.LongTransit()&occupied).IsEmpty() &&
		!s.anyAttacked(c.LongAttackLane()) {
		set.Insert(c.LongKingDest(), move.NewLongCastle())
		set.Insert(c.LongRookSrc(), move.NewLongCastle())
	}
}

func (s *MoveState) pawnMoves(from square.Square, set *move.Set[move.LegalMove]) {
	us := s.pos.Turn()
	restrict := s.restriction()
	promoted := square.RankMask(square.Rank8)
	if us == material.Black {
		promoted = square.RankMask(square.Rank1)
	}

	advances := square.SingleAdvance(us, from) &^ s.pos.Occupied()
	captures := square.PawnAttacks(us, from) & s.pos.Theirs()
	doubles := square.DoubleAdvance(us, from) &^ s.pos.Occupied()
	if lane, pinned := s.PinLane(from); pinned {
		advances &= lane
		captures &= lane
		doubles &= lane
	}

	dests := (advances | captures) & restrict
	for !dests.IsEmpty() {
		dest := dests.Pop()
		if promoted.Has(dest) {
			set.Insert(dest, move.NewPromoting(from, dest, move.NoPromotion))
		} else {
			set.Insert(dest, move.NewStandard(from, dest))
		}
	}

	doubles &= restrict
	for !doubles.IsEmpty() {
		dest := doubles.Pop()
		if (square.Between(from, dest) & s.pos.Occupied()).IsEmpty() {
			set.Insert(dest, move.NewDoubleAdvance(from, dest))
		}
	}

	s.enPassantMoves(from, set)
}

// enPassantMoves validates the capture by simulation: it is the one
// move that removes two pieces from a rank at once, so pin lanes are
// not enough to rule out a discovered check.
func (s *MoveState) enPassantMoves(from square.Square, set *move.Set[move.LegalMove]) {
	if s.IsDoubleCheck() {
		return
	}
	target, ok := s.pos.EnPassant()
	if !ok {
		return
	}
	us := s.pos.Turn()
	if !(square.PawnAttacks(us, from)).Has(target) {
		return
	}
	sim := s.pos
	sim.ApplyMove(move.NewEnPassant(from, target))
	if !isAttackedBy(&sim, sim.KingOf(us), sim.Turn()) {
		set.Insert(target, move.NewEnPassant(from, target))
	}
}
