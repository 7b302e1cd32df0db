// Package game drives complete games on top of the move generator:
// history and repetition tracking, terminal detection, pre-move
// queueing and replay. Boards are single-writer; callers needing
// concurrent submissions serialize them.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/movegen"
	"github.com/blunderdome/chesskit/position"
	"github.com/blunderdome/chesskit/square"
)

// ErrGameOver rejects submissions to a finished game.
var ErrGameOver = errors.New("game over")

// EngineBoard is the authoritative board: it validates and plays moves
// for both sides and rules on the outcome. A failed submission leaves
// the board untouched.
type EngineBoard struct {
	state   *movegen.MoveState
	history *History
	result  GameResult
	over    bool
}

// NewEngineBoard starts a classic game.
func NewEngineBoard(id GameID) *EngineBoard {
	return NewEngineBoardFor(id, backrank.Standard())
}

// NewEngineBoardFor starts a game from the given back rank.
func NewEngineBoardFor(id GameID, br backrank.BackRank) *EngineBoard {
	pos := position.New(br)
	return &EngineBoard{
		state:   movegen.NewState(pos),
		history: newHistory(id, pos),
	}
}

// ReplayEngine rebuilds a classic game from its move list, failing at
// the first illegal move.
func ReplayEngine(id GameID, moves []move.Move) (*EngineBoard, error) {
	return ReplayEngineFor(id, backrank.Standard(), moves)
}

// ReplayEngineFor rebuilds a game from the given back rank.
func ReplayEngineFor(id GameID, br backrank.BackRank, moves []move.Move) (*EngineBoard, error) {
	b := NewEngineBoardFor(id, br)
	for i, mv := range moves {
		if _, err := b.SubmitMove(mv); err != nil {
			return nil, fmt.Errorf("replay ply %d: %w", i+1, err)
		}
	}
	return b, nil
}

// SubmitMove validates and plays a move for the side on turn.
func (b *EngineBoard) SubmitMove(mv move.Move) (move.LegalMove, error) {
	if b.over {
		return move.LegalMove{}, fmt.Errorf("%w: %v", ErrGameOver, b.result)
	}
	lm, err := b.state.ValidateMove(mv)
	if err != nil {
		return move.LegalMove{}, err
	}
	b.play(lm)
	return lm, nil
}

func (b *EngineBoard) play(lm move.LegalMove) {
	b.state.ApplyMove(lm)
	pos := b.state.Position()
	b.history.record(lm, pos)
	log.Debug().Stringer("game", b.history.ID()).Stringer("move", lm).
		Int("ply", b.history.Len()).Msg("move played")
	if res, over := b.history.detect(b.state); over {
		b.result, b.over = res, true
		log.Debug().Stringer("game", b.history.ID()).Stringer("result", res).
			Msg("game over")
	}
}

// Conclude ends the game with a caller-supplied result: resignation,
// agreed draw, time forfeit or abandonment.
func (b *EngineBoard) Conclude(res GameResult) error {
	if b.over {
		return fmt.Errorf("%w: %v", ErrGameOver, b.result)
	}
	b.result, b.over = res, true
	log.Debug().Stringer("game", b.history.ID()).Stringer("result", res).
		Msg("game concluded")
	return nil
}

// Result reports the outcome, false while the game is in progress.
func (b *EngineBoard) Result() (GameResult, bool) {
	return b.result, b.over
}

// Position returns the current position.
func (b *EngineBoard) Position() position.Position {
	return b.state.Position()
}

// Turn returns the side to move.
func (b *EngineBoard) Turn() material.Color {
	return b.state.Position().Turn()
}

// History returns the game record.
func (b *EngineBoard) History() *History {
	return b.history
}

// IsCheck reports whether the side to move is in check.
func (b *EngineBoard) IsCheck() bool {
	return b.state.IsCheck()
}

// MoveDestinations returns the legal destinations of the piece on from.
func (b *EngineBoard) MoveDestinations(from square.Square) square.Mask {
	return b.state.LegalMovesFrom(from).Destinations()
}
