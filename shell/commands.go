package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/game"
	"github.com/blunderdome/chesskit/material"
	"github.com/blunderdome/chesskit/move"
	"github.com/blunderdome/chesskit/movegen"
	"github.com/blunderdome/chesskit/square"
)

const helpText = `Commands:
  new [960 [id]]   start a game, optionally Chess960 with a fixed arrangement
  move <uci>       play a move for the side on turn, e.g. move e2e4 or move e7e8q
  premove <uci>    queue a white move while black is thinking; premove off cancels
  moves [square]   list legal moves, optionally from one square
  show             print the current board
  result           print the game result
  perft <depth>    count move-tree leaves from the current position
  back | forward | start | end
                   step the review cursor through the game
  replay <uci...>  rebuild a game from a move list
  exit             leave the shell`

func parseMove(text string) (move.Move, error) {
	text = strings.ToLower(text)
	if len(text) != 4 && len(text) != 5 {
		return move.Move{}, fmt.Errorf("bad move %q, want e.g. e2e4 or e7e8q", text)
	}
	from, err := square.Parse(text[:2])
	if err != nil {
		return move.Move{}, err
	}
	to, err := square.Parse(text[2:4])
	if err != nil {
		return move.Move{}, err
	}
	if len(text) == 4 {
		return move.New(from, to), nil
	}
	var p move.Promotion
	switch text[4] {
	case 'q':
		p = move.PromoteQueen
	case 'r':
		p = move.PromoteRook
	case 'b':
		p = move.PromoteBishop
	case 'n':
		p = move.PromoteKnight
	default:
		return move.Move{}, fmt.Errorf("bad promotion %q, want q, r, b or n", text[4])
	}
	return move.NewPromotion(from, to, p), nil
}

func (sc *ShellController) newGame(args []string) (string, error) {
	var br backrank.BackRank
	var err error
	switch {
	case len(args) == 0:
		br, err = backrank.New(sc.cfg.BackRankID())
	case args[0] == "960" && len(args) == 1:
		br = backrank.Shuffled()
	case args[0] == "960" && len(args) == 2:
		var id uint64
		id, err = strconv.ParseUint(args[1], 10, 16)
		if err == nil {
			br, err = backrank.New(uint16(id))
		}
	default:
		return "", errors.New("usage: new [960 [id]]")
	}
	if err != nil {
		return "", err
	}
	sc.board = game.NewPlayerBoardFor(game.NewGameID(), material.White, br)
	return fmt.Sprintf("game %v starting from %v\n%s",
		sc.board.History().ID(), br, sc.show()), nil
}

func (sc *ShellController) playMove(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: move <uci>")
	}
	mv, err := parseMove(args[0])
	if err != nil {
		return "", err
	}
	if sc.board.Turn() == sc.board.Side() {
		err = sc.board.SubmitOurMove(mv)
	} else {
		err = sc.board.SubmitTheirMove(mv)
	}
	if err != nil {
		return "", err
	}
	return sc.show(), nil
}

func (sc *ShellController) preMove(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: premove <uci|off>")
	}
	if args[0] == "off" {
		sc.board.CancelPreMove()
		return "pre-move cancelled", nil
	}
	if sc.board.Turn() == sc.board.Side() {
		return "", errors.New("it is white's turn; play with move")
	}
	mv, err := parseMove(args[0])
	if err != nil {
		return "", err
	}
	if err := sc.board.SubmitOurMove(mv); err != nil {
		return "", err
	}
	pm, _ := sc.board.PreMove()
	return fmt.Sprintf("pre-move queued: %v", pm), nil
}

func (sc *ShellController) listMoves(args []string) (string, error) {
	uci := func(m move.LegalMove, _ int) string { return m.String() }
	s := movegen.NewState(sc.board.Position())
	if len(args) == 0 {
		all := s.AllLegalMoves()
		if len(all) == 0 {
			return "no legal moves", nil
		}
		return strings.Join(lo.Map(all, uci), " "), nil
	}
	sq, err := square.Parse(args[0])
	if err != nil {
		return "", err
	}
	from := s.LegalMovesFrom(sq).Values()
	if len(from) == 0 {
		return "no legal moves from " + args[0], nil
	}
	return strings.Join(lo.Map(from, uci), " "), nil
}

func (sc *ShellController) show() string {
	var sb strings.Builder
	sb.WriteString(sc.board.View().String())
	if movegen.NewState(sc.board.Position()).IsCheck() {
		sb.WriteString("\ncheck")
	}
	if pm, ok := sc.board.PreMove(); ok {
		fmt.Fprintf(&sb, "\npre-move queued: %v", pm)
	}
	if res, over := sc.board.Result(); over {
		fmt.Fprintf(&sb, "\n%v", res)
	}
	return sb.String()
}

func (sc *ShellController) gameResult() string {
	res, over := sc.board.Result()
	if !over {
		return "game in progress"
	}
	return res.String()
}

func (sc *ShellController) perft(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: perft <depth>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return "", err
	}
	if depth < 0 || depth > 7 {
		return "", errors.New("depth must be between 0 and 7")
	}
	start := time.Now()
	nodes := movegen.Perft(movegen.NewState(sc.board.Position()), depth)
	return fmt.Sprintf("perft(%d) = %d (%v)", depth, nodes, time.Since(start)), nil
}

func (sc *ShellController) navigate(cmd string) (string, error) {
	r := sc.board.Review()
	switch cmd {
	case "back":
		if !r.Back() {
			return "", errors.New("at the start of the game")
		}
	case "forward":
		if !r.Forward() {
			return "", errors.New("at the end of the game")
		}
	case "start":
		r.Start()
	default:
		r.End()
	}
	return fmt.Sprintf("ply %d/%d\n%v",
		r.Ply(), sc.board.History().Len(), r.Position()), nil
}

func (sc *ShellController) replay(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: replay <uci...>")
	}
	moves := make([]move.Move, len(args))
	for i, a := range args {
		mv, err := parseMove(a)
		if err != nil {
			return "", err
		}
		moves[i] = mv
	}
	board, err := game.ReplayPlayer(game.NewGameID(), material.White, moves)
	if err != nil {
		return "", err
	}
	sc.board = board
	return sc.show(), nil
}
