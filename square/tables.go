package square

import "github.com/blunderdome/chesskit/material"

// Static geometry tables, built once at startup. All lookups below are
// pure reads after init.
var (
	between  [64][64]Mask
	shielded [64][64]Mask
	blocked  [64][64]Mask

	horizontals [64]Mask
	diagonals   [64]Mask
	lines       [64]Mask

	kingMoves   [64]Mask
	knightMoves [64]Mask

	singleAdvances [2][64]Mask
	doubleAdvances [2][64]Mask
	pawnAttacks    [2][64]Mask
)

var (
	orthogonals   = []Direction{North, South, East, West}
	diagonalDirs  = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	allDirections = append(append([]Direction{}, orthogonals...), diagonalDirs...)
)

// Between returns the squares strictly between a and b when they share
// a rank, file, or diagonal, and the empty mask otherwise.
func Between(a, b Square) Mask {
	return between[a][b]
}

// Shielded returns the squares a piece on from cannot reach because a
// blocker on over stands in the way: everything on the ray from from
// through over that lies beyond over.
func Shielded(from, over Square) Mask {
	return shielded[from][over]
}

// Blocked is Shielded plus the blocking square itself. It is the set a
// slider on from loses when over holds a piece it may not capture.
func Blocked(from, over Square) Mask {
	return blocked[from][over]
}

// RookRays returns the full rank and file through s, excluding s.
func RookRays(s Square) Mask {
	return horizontals[s]
}

// BishopRays returns the full diagonals through s, excluding s.
func BishopRays(s Square) Mask {
	return diagonals[s]
}

// QueenRays returns the union of rook and bishop rays through s.
func QueenRays(s Square) Mask {
	return lines[s]
}

// KingMoves returns the up-to-eight squares adjacent to s.
func KingMoves(s Square) Mask {
	return kingMoves[s]
}

// KnightMoves returns the knight jump targets from s.
func KnightMoves(s Square) Mask {
	return knightMoves[s]
}

// SingleAdvance returns the one-step pawn push square for a pawn of
// the given color on s, or the empty mask at the edge of the board.
func SingleAdvance(c material.Color, s Square) Mask {
	return singleAdvances[c][s]
}

// DoubleAdvance returns the two-step push square when s is on the
// pawn's home rank, and the empty mask otherwise.
func DoubleAdvance(c material.Color, s Square) Mask {
	return doubleAdvances[c][s]
}

// PawnAttacks returns the capture squares for a pawn of the given
// color on s.
func PawnAttacks(c material.Color, s Square) Mask {
	return pawnAttacks[c][s]
}

// ray walks from s in direction d until the edge, in step order.
func ray(s Square, d Direction) []Square {
	var out []Square
	cur := s
	for {
		next, ok := cur.Step(d)
		if !ok {
			return out
		}
		out = append(out, next)
		cur = next
	}
}

func init() {
	for s := A8; s <= H1; s++ {
		for _, d := range allDirections {
			squares := ray(s, d)
			var full Mask
			for i, over := range squares {
				var before, beyond Mask
				for _, q := range squares[:i] {
					before = before.With(q)
				}
				for _, q := range squares[i+1:] {
					beyond = beyond.With(q)
				}
				between[s][over] = before
				shielded[s][over] = beyond
				blocked[s][over] = beyond.With(over)
				full = full.With(over)
			}
			if d.DF == 0 || d.DR == 0 {
				horizontals[s] |= full
			} else {
				diagonals[s] |= full
			}
		}
		lines[s] = horizontals[s] | diagonals[s]

		for _, d := range allDirections {
			if next, ok := s.Step(d); ok {
				kingMoves[s] = kingMoves[s].With(next)
			}
		}
		for _, jump := range [][2]int8{
			{1, 2}, {2, 1}, {2, -1}, {1, -2},
			{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
		} {
			if next, ok := s.StepBy(jump[0], jump[1]); ok {
				knightMoves[s] = knightMoves[s].With(next)
			}
		}

		initPawn(material.White, s, North, Rank2)
		initPawn(material.Black, s, South, Rank7)
	}
}

func initPawn(c material.Color, s Square, forward Direction, home Rank) {
	one, ok := s.Step(forward)
	if !ok {
		return
	}
	singleAdvances[c][s] = one.Bit()
	if s.Rank() == home {
		two, _ := one.Step(forward)
		doubleAdvances[c][s] = two.Bit()
	}
	for _, df := range []int8{-1, 1} {
		if hit, ok := s.StepBy(df, forward.DR); ok {
			pawnAttacks[c][s] = pawnAttacks[c][s].With(hit)
		}
	}
}
