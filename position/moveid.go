package position

import "github.com/blunderdome/chesskit/material"

// MoveID numbers the plies of a game from zero. Its parity is the side
// to move: even ids are white moves, odd ids black moves.
type MoveID uint16

// StartMove is the id of the first move of a game.
const StartMove MoveID = 0

// NewMoveID builds the id of the given side's move in the given
// zero-based full-move count.
func NewMoveID(moveCount int, turn material.Color) MoveID {
	return MoveID(moveCount*2 + int(turn))
}

// Turn returns the side that plays this move.
func (id MoveID) Turn() material.Color {
	return material.Color(id % 2)
}

// Value returns the ply index.
func (id MoveID) Value() int {
	return int(id)
}

// MoveCount returns the number of completed full moves before this one.
func (id MoveID) MoveCount() int {
	return int(id) / 2
}

// MoveNumber returns the one-based full-move number, as written in
// game notation.
func (id MoveID) MoveNumber() int {
	return 1 + id.MoveCount()
}

// AtStart reports whether this is the first move of the game.
func (id MoveID) AtStart() bool {
	return id == StartMove
}

// Next returns the id of the following ply.
func (id MoveID) Next() MoveID {
	return id + 1
}

// Prev returns the id of the preceding ply.
func (id MoveID) Prev() MoveID {
	return id - 1
}
