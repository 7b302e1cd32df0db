package game

import (
	"encoding/binary"
	"fmt"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/movegen"
	"github.com/blunderdome/chesskit/position"
)

// GameID names a game. It carries no structure; boards only log and
// replay it.
type GameID uint64

// NewGameID draws a random id.
func NewGameID() GameID {
	return GameID(binary.LittleEndian.Uint64(frand.Bytes(8)))
}

func (id GameID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

type turn struct {
	mv  move.LegalMove
	pos position.Position
}

// History is the full record of a game: the initial position, every
// move paired with the position it produced, and repetition counts for
// the positions reachable since the last pawn move or capture.
type History struct {
	id      GameID
	initial position.Position
	turns   []turn
	reps    map[uint64]int
}

func newHistory(id GameID, initial position.Position) *History {
	return &History{
		id:      id,
		initial: initial,
		reps:    map[uint64]int{initial.Key(): 1},
	}
}

func (h *History) record(mv move.LegalMove, pos position.Position) {
	h.turns = append(h.turns, turn{mv: mv, pos: pos})
	if pos.HalfmoveClock() == 0 {
		// no earlier position can recur after a pawn move or capture
		h.reps = make(map[uint64]int)
	}
	h.reps[pos.Key()]++
}

// ID returns the game's id.
func (h *History) ID() GameID {
	return h.id
}

// Len returns the number of plies played.
func (h *History) Len() int {
	return len(h.turns)
}

// Initial returns the position the game started from.
func (h *History) Initial() position.Position {
	return h.initial
}

// At returns the position after the given ply, the initial position at
// ply zero.
func (h *History) At(ply int) position.Position {
	if ply <= 0 {
		return h.initial
	}
	return h.turns[ply-1].pos
}

// Latest returns the most recent position.
func (h *History) Latest() position.Position {
	return h.At(len(h.turns))
}

// Moves projects the move list in play order.
func (h *History) Moves() []move.LegalMove {
	return lo.Map(h.turns, func(t turn, _ int) move.LegalMove { return t.mv })
}

// detect rules on the position just reached. First match wins; win
// reasons other than checkmate and agreed draws never come from here.
func (h *History) detect(s *movegen.MoveState) (GameResult, bool) {
	pos := s.Position()
	if !s.CanMove() {
		if s.IsCheck() {
			return Win(pos.Turn().Other(), Checkmate), true
		}
		return Draw(Stalemate), true
	}
	if h.reps[pos.Key()] >= 3 {
		return Draw(Repetition), true
	}
	if pos.HalfmoveClock() >= 100 {
		return Draw(FiftyMoves), true
	}
	if insufficientMaterial(&pos) {
		return Draw(InsufficientMaterial), true
	}
	return GameResult{}, false
}
