package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/position"
	"github.com/blunderdome/chesskit/square"
)

// PlayerBoard is one player's view of a game. It plays that side's
// moves, holds at most one pre-move while the opponent thinks, and
// carries a review cursor for stepping through the history.
type PlayerBoard struct {
	engine *EngineBoard
	side   material.Color
	queued *move.PreMove
	review *Review
}

// NewPlayerBoard starts a classic game seen from the given side.
func NewPlayerBoard(id GameID, side material.Color) *PlayerBoard {
	return NewPlayerBoardFor(id, side, backrank.Standard())
}

// NewPlayerBoardFor starts a game from the given back rank.
func NewPlayerBoardFor(id GameID, side material.Color, br backrank.BackRank) *PlayerBoard {
	e := NewEngineBoardFor(id, br)
	return &PlayerBoard{engine: e, side: side, review: NewReview(e.history)}
}

// ReplayPlayer rebuilds a player board from a move list. The pre-move
// slot starts empty.
func ReplayPlayer(id GameID, side material.Color, moves []move.Move) (*PlayerBoard, error) {
	return ReplayPlayerFor(id, side, backrank.Standard(), moves)
}

// ReplayPlayerFor rebuilds a player board from the given back rank.
func ReplayPlayerFor(id GameID, side material.Color, br backrank.BackRank, moves []move.Move) (*PlayerBoard, error) {
	e, err := ReplayEngineFor(id, br, moves)
	if err != nil {
		return nil, err
	}
	return &PlayerBoard{engine: e, side: side, review: NewReview(e.history)}, nil
}

// SubmitOurMove plays the move at once on our turn. Otherwise it is
// checked against the pre-move fan and queued, replacing any earlier
// pre-move.
func (p *PlayerBoard) SubmitOurMove(mv move.Move) error {
	if p.engine.over {
		return fmt.Errorf("%w: %v", ErrGameOver, p.engine.result)
	}
	if p.engine.Turn() == p.side {
		_, err := p.engine.SubmitMove(mv)
		return err
	}
	pm, err := p.engine.state.ValidatePreMove(mv)
	if err != nil {
		return err
	}
	p.queued = &pm
	log.Debug().Stringer("game", p.engine.history.ID()).Stringer("premove", pm).
		Msg("pre-move queued")
	return nil
}

// SubmitTheirMove applies the opponent's move, then plays the queued
// pre-move if it is still legal and discards it otherwise.
func (p *PlayerBoard) SubmitTheirMove(mv move.Move) error {
	if !p.engine.over && p.engine.Turn() == p.side {
		return fmt.Errorf("%w: not the opponent's turn", move.ErrIllegalMove)
	}
	if _, err := p.engine.SubmitMove(mv); err != nil {
		return err
	}
	p.playQueued()
	return nil
}

func (p *PlayerBoard) playQueued() {
	if p.queued == nil {
		return
	}
	pm := *p.queued
	p.queued = nil
	if p.engine.over {
		return
	}
	if _, err := p.engine.SubmitMove(p.wireMove(pm)); err != nil {
		log.Debug().Stringer("game", p.engine.history.ID()).Stringer("premove", pm).
			Msg("pre-move discarded")
	}
}

// wireMove lowers a queued pre-move back to wire form. Castle pre-moves
// carry no squares, so they are addressed to the king's castling
// destination; if the right is gone validation fails and the pre-move
// is dropped.
func (p *PlayerBoard) wireMove(pm move.PreMove) move.Move {
	switch pm.Kind {
	case move.ShortCastle:
		c := p.engine.state.Position().Castling(p.side)
		return move.New(c.KingSrc(), c.ShortKingDest())
	case move.LongCastle:
		c := p.engine.state.Position().Castling(p.side)
		return move.New(c.KingSrc(), c.LongKingDest())
	case move.Promoting:
		return move.NewPromotion(pm.From, pm.To, pm.Promotion)
	default:
		return move.New(pm.From, pm.To)
	}
}

// CancelPreMove drops the queued pre-move, if any.
func (p *PlayerBoard) CancelPreMove() {
	p.queued = nil
}

// PreMove returns the queued pre-move.
func (p *PlayerBoard) PreMove() (move.PreMove, bool) {
	if p.queued == nil {
		return move.PreMove{}, false
	}
	return *p.queued, true
}

// View returns the position to draw: the review cursor's position when
// rewound, otherwise the live position with any queued pre-move
// previewed.
func (p *PlayerBoard) View() position.Position {
	if !p.review.AtEnd() {
		return p.review.Position()
	}
	pos := p.engine.Position()
	if p.queued != nil {
		pos.ApplyPreMove(*p.queued)
	}
	return pos
}

// MoveDestinations returns where the piece on from may be sent: legal
// destinations on our turn, the pre-move fan otherwise.
func (p *PlayerBoard) MoveDestinations(from square.Square) square.Mask {
	if p.engine.Turn() == p.side {
		return p.engine.state.LegalMovesFrom(from).Destinations()
	}
	return p.engine.state.PreMovesFrom(from).Destinations()
}

// Side returns the side this board plays.
func (p *PlayerBoard) Side() material.Color {
	return p.side
}

// Turn returns the side to move.
func (p *PlayerBoard) Turn() material.Color {
	return p.engine.Turn()
}

// Position returns the live position, ignoring cursor and pre-move.
func (p *PlayerBoard) Position() position.Position {
	return p.engine.Position()
}

// Result reports the outcome, false while the game is in progress.
func (p *PlayerBoard) Result() (GameResult, bool) {
	return p.engine.Result()
}

// Review returns the board's history cursor.
func (p *PlayerBoard) Review() *Review {
	return p.review
}

// History returns the game record.
func (p *PlayerBoard) History() *History {
	return p.engine.History()
}
