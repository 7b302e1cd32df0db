// Package material defines the piece and color vocabulary shared by
// every other package: which side a piece belongs to, what kind it is,
// and a generic two-slot container for color-symmetric data.
package material

import "fmt"

// Color is one of the two sides of a chess game.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is a kind of chess piece, without color.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("piece(%d)", uint8(p))
}

// Letter returns the single-letter abbreviation used in board displays,
// uppercase for white and lowercase for black.
func (p Piece) Letter(c Color) byte {
	const white = "PNBRQK"
	const black = "pnbrqk"
	if c == White {
		return white[p]
	}
	return black[p]
}

// Material is a colored piece, or None for an empty square. Packing the
// pair into a single byte keeps Position copyable by value.
type Material uint8

// None marks an empty square.
const None Material = 0

// New returns the material for a piece of the given color.
func New(c Color, p Piece) Material {
	return Material(1 + uint8(c)*6 + uint8(p))
}

// IsEmpty reports whether m represents no piece at all.
func (m Material) IsEmpty() bool {
	return m == None
}

// Color returns the owning side. Only valid when m is not None.
func (m Material) Color() Color {
	return Color((uint8(m) - 1) / 6)
}

// Piece returns the piece kind. Only valid when m is not None.
func (m Material) Piece() Piece {
	return Piece((uint8(m) - 1) % 6)
}

// Is reports whether m is a piece of the given color and kind.
func (m Material) Is(c Color, p Piece) bool {
	return m == New(c, p)
}

func (m Material) String() string {
	if m.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%v %v", m.Color(), m.Piece())
}

// Pair holds one value per color. Color-symmetric state is always kept
// as a Pair rather than duplicated per side.
type Pair[T any] [2]T

// NewPair builds a pair from the white and black values.
func NewPair[T any](white, black T) Pair[T] {
	return Pair[T]{white, black}
}

// Get returns the value for the given color.
func (p *Pair[T]) Get(c Color) T {
	return p[c]
}

// Ptr returns a pointer to the value for the given color.
func (p *Pair[T]) Ptr(c Color) *T {
	return &p[c]
}

// Set replaces the value for the given color.
func (p *Pair[T]) Set(c Color, v T) {
	p[c] = v
}
