package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"woodpusher/chess"
	"woodpusher/engine"
)

const defaultDepth = 3

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	uciLoop()
}

// uciLoop speaks just enough of the UCI protocol to drive the engine from a
// GUI or by hand: "position startpos [moves ...]" and "go depth N". FEN
// positions are not supported since the core has no FEN import.
func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	board := chess.NewStandardBoard()
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name woodpusher")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			board = chess.NewStandardBoard()
		case "position":
			next, err := setPosition(tokens[1:])
			if err != nil {
				log.Warn().Err(err).Msg("ignoring position command")
				continue
			}
			board = next
		case "go":
			depth := defaultDepth
			for i := 1; i < len(tokens)-1; i++ {
				if tokens[i] == "depth" {
					if d, err := strconv.Atoi(tokens[i+1]); err == nil && d > 0 {
						depth = d
					}
				}
			}
			move := engine.NewMinimax(depth).Execute(board)
			if move.IsNull() {
				log.Warn().Msg("no legal moves in current position")
				continue
			}
			fmt.Println("bestmove", move.UCI())
		case "d", "print":
			fmt.Print(board)
			fmt.Println(chess.ToFEN(board))
		case "quit":
			return
		}
	}
}

// setPosition handles the argument list of a "position" command.
func setPosition(tokens []string) (*chess.Board, error) {
	if len(tokens) == 0 || tokens[0] != "startpos" {
		return nil, errors.New("only startpos positions are supported")
	}
	board := chess.NewStandardBoard()
	if len(tokens) >= 2 && tokens[1] == "moves" {
		return applyMoves(board, tokens[2:])
	}
	return board, nil
}

// applyMoves plays a sequence of coordinate moves ("e2e4") from the given
// position, validating each against the legal move set.
func applyMoves(b *chess.Board, moves []string) (*chess.Board, error) {
	for _, token := range moves {
		next, err := applyMove(b, token)
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}

func applyMove(b *chess.Board, token string) (*chess.Board, error) {
	if len(token) < 4 {
		return nil, errors.Errorf("invalid move %q", token)
	}
	from, err := chess.ParseSquare(token[:2])
	if err != nil {
		return nil, errors.Wrapf(err, "move %q", token)
	}
	to, err := chess.ParseSquare(token[2:4])
	if err != nil {
		return nil, errors.Wrapf(err, "move %q", token)
	}
	move := b.FindMove(from, to)
	if move.IsNull() {
		return nil, errors.Errorf("no legal move %q in position %s", token, chess.ToFEN(b))
	}
	transition := b.CurrentPlayer().MakeMove(move)
	if !transition.Status.IsDone() {
		return nil, errors.Errorf("move %q rejected: %s", token, transition.Status)
	}
	return transition.Board, nil
}
