package square

import (
	"math/bits"
	"strings"
)

// Mask is a set of squares packed into a 64-bit word. A8 occupies the
// most significant bit and H1 the least.
type Mask uint64

// Empty is the mask with no squares set.
const Empty Mask = 0

// MaskOf builds a mask from the given squares.
func MaskOf(squares ...Square) Mask {
	var m Mask
	for _, s := range squares {
		m |= s.Bit()
	}
	return m
}

// Has reports whether the square is in the mask.
func (m Mask) Has(s Square) bool {
	return m&s.Bit() != 0
}

// With returns the mask with the square added.
func (m Mask) With(s Square) Mask {
	return m | s.Bit()
}

// Without returns the mask with the square removed.
func (m Mask) Without(s Square) Mask {
	return m &^ s.Bit()
}

// IsEmpty reports whether no squares are set.
func (m Mask) IsEmpty() bool {
	return m == 0
}

// Count returns the number of squares set.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// First returns the lowest-numbered square in the mask. The mask must
// not be empty.
func (m Mask) First() Square {
	return Square(bits.LeadingZeros64(uint64(m)))
}

// Pop removes and returns the lowest-numbered square. The mask must
// not be empty.
func (m *Mask) Pop() Square {
	s := m.First()
	*m = m.Without(s)
	return s
}

// Squares lists the set squares in board order.
func (m Mask) Squares() []Square {
	out := make([]Square, 0, m.Count())
	for m != 0 {
		out = append(out, m.Pop())
	}
	return out
}

// String renders the mask as an 8x8 grid of x and . characters, rank 8
// first. Used in test failure output.
func (m Mask) String() string {
	var b strings.Builder
	for s := A8; s <= H1; s++ {
		if m.Has(s) {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
		if s.File() == FileH && s != H1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FileMask returns all squares on the given file.
func FileMask(f File) Mask {
	var m Mask
	for r := Rank1; r <= Rank8; r++ {
		m = m.With(New(f, r))
	}
	return m
}

// RankMask returns all squares on the given rank.
func RankMask(r Rank) Mask {
	var m Mask
	for f := FileA; f <= FileH; f++ {
		m = m.With(New(f, r))
	}
	return m
}
