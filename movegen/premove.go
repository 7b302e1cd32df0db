package movegen

import (
	"fmt"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/square"
)

// PreMovesFrom returns the structural pre-move fan of the waiting
// side's piece on from. No legality is checked: occupancy, pins and
// checks are the board's problem once the pre-move is actually
// submitted. Fans use the pre-mover's own piece tables.
func (s *MoveState) PreMovesFrom(from square.Square) *move.Set[move.PreMove] {
	set := &move.Set[move.PreMove]{}
	m := s.pos.At(from)
	mover := s.pos.Turn().Other()
	if m.IsEmpty() || m.Color() != mover {
		return set
	}
	switch m.Piece() {
	case material.King:
		insertPreFan(set, from, square.KingMoves(from))
		c := s.pos.TheirCastling()
		if c.Short() {
			set.Insert(c.ShortKingDest(), move.NewPreShortCastle())
			set.Insert(c.ShortRookDest(), move.NewPreShortCastle())
		}
		if c.Long() {
			set.Insert(c.LongKingDest(), move.NewPreLongCastle())
			set.Insert(c.LongRookDest(), move.NewPreLongCastle())
		}
	case material.Queen:
		insertPreFan(set, from, square.QueenRays(from))
	case material.Rook:
		insertPreFan(set, from, square.RookRays(from))
	case material.Bishop:
		insertPreFan(set, from, square.BishopRays(from))
	case material.Knight:
		insertPreFan(set, from, square.KnightMoves(from))
	case material.Pawn:
		fan := square.SingleAdvance(mover, from) |
			square.DoubleAdvance(mover, from) |
			square.PawnAttacks(mover, from)
		promoted := square.RankMask(square.Rank8)
		if mover == material.Black {
			promoted = square.RankMask(square.Rank1)
		}
		for !fan.IsEmpty() {
			dest := fan.Pop()
			if promoted.Has(dest) {
				set.Insert(dest, move.NewPrePromoting(from, dest, move.NoPromotion))
			} else {
				set.Insert(dest, move.NewPreStandard(from, dest))
			}
		}
	}
	return set
}

func insertPreFan(set *move.Set[move.PreMove], from square.Square, dests square.Mask) {
	for !dests.IsEmpty() {
		dest := dests.Pop()
		set.Insert(dest, move.NewPreStandard(from, dest))
	}
}

// ValidatePreMove maps a wire move onto the structural pre-move set.
func (s *MoveState) ValidatePreMove(mv move.Move) (move.PreMove, error) {
	pm, ok := s.PreMovesFrom(mv.From).Get(mv.To)
	if !ok {
		return move.PreMove{}, fmt.Errorf("%w: %v", move.ErrIllegalMove, mv)
	}
	if pm.Kind == move.Promoting {
		if mv.Promotion == move.NoPromotion {
			return move.PreMove{}, fmt.Errorf("%w: %v needs a promotion choice",
				move.ErrIllegalMove, mv)
		}
		pm.Promotion = mv.Promotion
		return pm, nil
	}
	if mv.Promotion != move.NoPromotion {
		return move.PreMove{}, fmt.Errorf("%w: %v cannot promote", move.ErrIllegalMove, mv)
	}
	return pm, nil
}
