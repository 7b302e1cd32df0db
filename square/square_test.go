package square

import (
	"testing"

	"github.com/blunderdome/chesskit/material"
	"github.com/matryer/is"
)

func TestSquareRoundTrip(t *testing.T) {
	is := is.New(t)
	for s := A8; s <= H1; s++ {
		is.Equal(New(s.File(), s.Rank()), s)
		parsed, err := Parse(s.String())
		is.NoErr(err)
		is.Equal(parsed, s)
	}
	is.Equal(A8.String(), "a8")
	is.Equal(H1.String(), "h1")
	is.Equal(E4.File(), FileE)
	is.Equal(E4.Rank(), Rank4)
}

func TestParseRejectsGarbage(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{"", "e", "e9", "i4", "e44", "4e"} {
		_, err := Parse(text)
		is.True(err != nil)
	}
}

func TestStep(t *testing.T) {
	is := is.New(t)
	n, ok := E4.Step(North)
	is.True(ok)
	is.Equal(n, E5)
	_, ok = A1.Step(West)
	is.True(!ok)
	_, ok = H8.Step(NorthEast)
	is.True(!ok)
}

func TestMaskBasics(t *testing.T) {
	is := is.New(t)
	m := MaskOf(A8, E4, H1)
	is.Equal(m.Count(), 3)
	is.True(m.Has(E4))
	is.True(!m.Has(E5))
	is.Equal(m.First(), A8)
	is.Equal(m.Without(A8).First(), E4)
	is.Equal(m.Squares(), []Square{A8, E4, H1})
}

func TestBetween(t *testing.T) {
	is := is.New(t)
	is.Equal(Between(A3, E3), MaskOf(B3, C3, D3))
	is.Equal(Between(E3, A3), MaskOf(B3, C3, D3))
	is.Equal(Between(C1, H6), MaskOf(D2, E3, F4, G5))
	is.Equal(Between(A1, B3), Empty)
	is.Equal(Between(E4, E5), Empty)
}

func TestShieldedAndBlocked(t *testing.T) {
	is := is.New(t)
	is.Equal(Shielded(A8, A7), MaskOf(A6, A5, A4, A3, A2, A1))
	is.Equal(Shielded(A8, A6), MaskOf(A5, A4, A3, A2, A1))
	is.Equal(Shielded(H1, F3), MaskOf(E4, D5, C6, B7, A8))
	is.Equal(Shielded(A1, C2), Empty)
	is.Equal(Blocked(A8, A6), Shielded(A8, A6).With(A6))
}

func TestRays(t *testing.T) {
	is := is.New(t)
	is.Equal(RookRays(A1), FileMask(FileA).Without(A1)|RankMask(Rank1).Without(A1))
	is.Equal(BishopRays(A1), MaskOf(B2, C3, D4, E5, F6, G7, H8))
	is.Equal(QueenRays(E4), RookRays(E4)|BishopRays(E4))
	is.Equal(QueenRays(E4).Count(), 27)
}

func TestKingAndKnightMoves(t *testing.T) {
	is := is.New(t)
	is.Equal(KingMoves(A1), MaskOf(A2, B2, B1))
	is.Equal(KingMoves(E4).Count(), 8)
	is.Equal(KnightMoves(A1), MaskOf(B3, C2))
	is.Equal(KnightMoves(E4), MaskOf(D6, F6, C5, G5, C3, G3, D2, F2))
	is.Equal(KnightMoves(G1), MaskOf(E2, F3, H3))
}

func TestPawnTables(t *testing.T) {
	is := is.New(t)
	is.Equal(SingleAdvance(material.White, E2), MaskOf(E3))
	is.Equal(DoubleAdvance(material.White, E2), MaskOf(E4))
	is.Equal(DoubleAdvance(material.White, E3), Empty)
	is.Equal(SingleAdvance(material.Black, E7), MaskOf(E6))
	is.Equal(DoubleAdvance(material.Black, E7), MaskOf(E5))
	is.Equal(PawnAttacks(material.White, E4), MaskOf(D5, F5))
	is.Equal(PawnAttacks(material.White, A2), MaskOf(B3))
	is.Equal(PawnAttacks(material.Black, H7), MaskOf(G6))
}

func TestSquareColor(t *testing.T) {
	is := is.New(t)
	is.True(A1.IsDark())
	is.True(!H1.IsDark())
	is.True(!A8.IsDark())
	is.True(H8.IsDark())
	is.True(C1.IsDark())
	is.True(!E6.IsDark())
}
