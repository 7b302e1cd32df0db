// Package square provides the board geometry: squares, files, ranks,
// 64-bit occupancy masks, and the precomputed line and attack tables
// everything above it is built on. Squares are numbered from the top
// left of the board as white sees it, so A8 is 0 and H1 is 63, and a
// square's mask bit is the 63-s'th bit (A8 occupies the most
// significant bit).
package square

import "fmt"

// Square identifies one of the 64 board squares.
type Square uint8

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// Invalid is a sentinel outside the board, used where no square applies.
const Invalid Square = 64

// File is a board column, FileA through FileH.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string('a' + byte(f))
}

// Rank is a board row. Rank1 is white's back rank.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string('1' + byte(r))
}

// New returns the square at the given file and rank.
func New(f File, r Rank) Square {
	return Square((7-uint8(r))*8 + uint8(f))
}

// File returns the square's column.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the square's row.
func (s Square) Rank() Rank {
	return Rank(7 - s/8)
}

// Bit returns the square's occupancy mask.
func (s Square) Bit() Mask {
	return 1 << (63 - s)
}

// IsDark reports whether the square belongs to the dark color complex,
// the one holding a1.
func (s Square) IsDark() bool {
	return (uint8(s.File())+uint8(s.Rank()))%2 == 0
}

func (s Square) String() string {
	if s >= Invalid {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// Parse reads a square from algebraic notation, e.g. "e4".
func Parse(text string) (Square, error) {
	if len(text) != 2 {
		return Invalid, fmt.Errorf("bad square %q", text)
	}
	f := text[0] - 'a'
	r := text[1] - '1'
	if f > 7 || r > 7 {
		return Invalid, fmt.Errorf("bad square %q", text)
	}
	return New(File(f), Rank(r)), nil
}

// Direction is a one-square step, expressed as file and rank deltas.
// A positive rank delta moves toward rank 8.
type Direction struct {
	DF, DR int8
}

var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{-1, 1}
	SouthEast = Direction{1, -1}
	SouthWest = Direction{-1, -1}
)

// Step moves one square in the given direction. The second return is
// false when the step would leave the board.
func (s Square) Step(d Direction) (Square, bool) {
	f := int8(s.File()) + d.DF
	r := int8(s.Rank()) + d.DR
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return Invalid, false
	}
	return New(File(f), Rank(r)), true
}

// StepBy moves by arbitrary file and rank deltas in one jump.
func (s Square) StepBy(df, dr int8) (Square, bool) {
	return s.Step(Direction{df, dr})
}
