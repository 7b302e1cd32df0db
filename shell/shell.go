// Package shell implements the interactive REPL. The user plays white;
// black's replies are entered with the same move command, which lets a
// queued white pre-move fire automatically.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/blunderdome/chesskit/backrank"
	"github.com/blunderdome/chesskit/config"
	"github.com/blunderdome/chesskit/game"
	"github.com/blunderdome/chesskit/material"
)

var errExit = errors.New("exit")

type ShellController struct {
	l     *readline.Instance
	cfg   *config.Config
	board *game.PlayerBoard
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mchesskit>\033[0m ",
		HistoryFile:     "/tmp/readline-chesskit.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, cfg: cfg}
	br, err := backrank.New(cfg.BackRankID())
	if err != nil {
		log.Err(err).Msg("bad configured back rank, using standard")
		br = backrank.Standard()
	}
	sc.board = game.NewPlayerBoardFor(game.NewGameID(), material.White, br)
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// Execute runs a single command line, for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	if err := sc.run(line); err != nil && !errors.Is(err, errExit) {
		sc.showError(err)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err := sc.run(strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop")
	sig <- syscall.SIGINT
}

func (sc *ShellController) run(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	msg, err := sc.dispatch(fields[0], fields[1:])
	if err != nil {
		return err
	}
	if msg != "" {
		sc.showMessage(msg)
	}
	return nil
}

func (sc *ShellController) dispatch(cmd string, args []string) (string, error) {
	switch cmd {
	case "new":
		return sc.newGame(args)
	case "move", "m":
		return sc.playMove(args)
	case "premove", "pm":
		return sc.preMove(args)
	case "moves":
		return sc.listMoves(args)
	case "show", "s":
		return sc.show(), nil
	case "result":
		return sc.gameResult(), nil
	case "perft":
		return sc.perft(args)
	case "back", "forward", "start", "end":
		return sc.navigate(cmd)
	case "replay":
		return sc.replay(args)
	case "help":
		return helpText, nil
	case "exit", "quit":
		return "", errExit
	}
	return "", errors.New("unknown command " + cmd + "; try help")
}

func (sc *ShellController) Cleanup() {}
