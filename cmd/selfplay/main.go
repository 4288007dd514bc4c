package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"woodpusher/chess"
	"woodpusher/engine"
)

// selfplay pits two fixed-depth searchers against each other and logs the
// game, mostly as a smoke test for the search and the legality filter.
func main() {
	whiteDepth := flag.Int("white-depth", 2, "search depth in plies for White")
	blackDepth := flag.Int("black-depth", 2, "search depth in plies for Black")
	maxMoves := flag.Int("max-moves", 200, "abort the game after this many plies")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	strategies := map[chess.Side]engine.Strategy{
		chess.White: engine.NewMinimax(*whiteDepth),
		chess.Black: engine.NewMinimax(*blackDepth),
	}

	board := chess.NewStandardBoard()
	for ply := 0; ply < *maxMoves; ply++ {
		player := board.CurrentPlayer()
		if board.InCheckmate() {
			fmt.Print(board)
			fmt.Printf("checkmate, %s wins after %d plies\n", player.Side().Opponent(), ply)
			return
		}
		if board.InStalemate() {
			fmt.Print(board)
			fmt.Printf("stalemate after %d plies\n", ply)
			return
		}

		move := strategies[player.Side()].Execute(board)
		log.Info().
			Int("ply", ply+1).
			Stringer("side", player.Side()).
			Stringer("move", move).
			Msg("played")
		board = player.MakeMove(move).Board
	}
	fmt.Print(board)
	fmt.Printf("game aborted after %d plies: %s\n", *maxMoves, chess.ToFEN(board))
}
