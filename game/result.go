package game

import (
	"fmt"

	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/position"
)

// WinReason says how a decisive game ended. Only Checkmate is ruled by
// the board itself; the rest are concluded by callers.
type WinReason uint8

const (
	Checkmate WinReason = iota
	Resigned
	TimeExpired
	Abandoned
)

func (r WinReason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Resigned:
		return "resignation"
	case TimeExpired:
		return "time forfeit"
	}
	return "abandonment"
}

// DrawReason says why a game was drawn. Agreed draws come from callers.
type DrawReason uint8

const (
	Agreed DrawReason = iota
	Stalemate
	Repetition
	FiftyMoves
	InsufficientMaterial
)

func (r DrawReason) String() string {
	switch r {
	case Agreed:
		return "agreement"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "threefold repetition"
	case FiftyMoves:
		return "the fifty-move rule"
	}
	return "insufficient material"
}

// GameResult is the outcome of a finished game.
type GameResult struct {
	win    bool
	winner material.Color
	winBy  WinReason
	drawBy DrawReason
}

// Win records a decisive result for the given side.
func Win(c material.Color, reason WinReason) GameResult {
	return GameResult{win: true, winner: c, winBy: reason}
}

// Draw records a drawn result.
func Draw(reason DrawReason) GameResult {
	return GameResult{drawBy: reason}
}

// Winner reports the winning side and how it won, false for draws.
func (r GameResult) Winner() (material.Color, WinReason, bool) {
	return r.winner, r.winBy, r.win
}

// Drawn reports the draw reason, false for decisive results.
func (r GameResult) Drawn() (DrawReason, bool) {
	if r.win {
		return 0, false
	}
	return r.drawBy, true
}

func (r GameResult) String() string {
	if r.win {
		return fmt.Sprintf("%v wins by %v", r.winner, r.winBy)
	}
	return fmt.Sprintf("draw by %v", r.drawBy)
}

// insufficientMaterial is a deliberately coarse test: it draws K vs K,
// king and one minor vs king, and single bishops confined to the same
// color complex. Two knights against a lone king stays undecided; a
// helpmate is still possible.
func insufficientMaterial(p *position.Position) bool {
	white := p.MatingMaterial(material.White)
	black := p.MatingMaterial(material.Black)
	switch {
	case white == position.LoneKing:
		return black == position.LoneKing ||
			black == position.OneKnight || black == position.OneBishop
	case black == position.LoneKing:
		return white == position.OneKnight || white == position.OneBishop
	case white == position.OneBishop && black == position.OneBishop:
		ours := p.PiecesOf(material.White, material.Bishop).First()
		theirs := p.PiecesOf(material.Black, material.Bishop).First()
		return ours.IsDark() == theirs.IsDark()
	}
	return false
}
