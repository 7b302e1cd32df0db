package game

import (
	"fmt"

	"github.com/blunderdome/chesskit/position"
)

// Review is a read-only cursor over a game's history. Ply n shows the
// position after n moves. A fresh cursor tracks the live end of the
// game until moved.
type Review struct {
	history *History
	ply     int // negative tracks the end
}

// NewReview opens a cursor at the end of the history.
func NewReview(h *History) *Review {
	return &Review{history: h, ply: -1}
}

// Ply returns the cursor's place in the move list.
func (r *Review) Ply() int {
	if r.ply < 0 {
		return r.history.Len()
	}
	return r.ply
}

// AtEnd reports whether the cursor shows the latest position.
func (r *Review) AtEnd() bool {
	return r.ply < 0 || r.ply == r.history.Len()
}

// Position returns the position at the cursor.
func (r *Review) Position() position.Position {
	return r.history.At(r.Ply())
}

// Start rewinds to the initial position.
func (r *Review) Start() {
	r.ply = 0
}

// End returns the cursor to the live end of the game.
func (r *Review) End() {
	r.ply = -1
}

// Back steps one ply toward the start.
func (r *Review) Back() bool {
	p := r.Ply()
	if p == 0 {
		return false
	}
	r.ply = p - 1
	return true
}

// Forward steps one ply toward the end.
func (r *Review) Forward() bool {
	if r.AtEnd() {
		return false
	}
	r.ply++
	if r.ply == r.history.Len() {
		r.ply = -1
	}
	return true
}

// JumpTo moves the cursor to an absolute ply.
func (r *Review) JumpTo(ply int) error {
	if ply < 0 || ply > r.history.Len() {
		return fmt.Errorf("ply %d out of range 0..%d", ply, r.history.Len())
	}
	if ply == r.history.Len() {
		r.ply = -1
	} else {
		r.ply = ply
	}
	return nil
}
