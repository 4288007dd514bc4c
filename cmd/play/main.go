package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"woodpusher/chess"
	"woodpusher/engine"
)

// play is a terminal front-end: the human enters coordinate moves and the
// minimax engine answers. Configuration comes from woodpusher.yaml in the
// working directory or WOODPUSHER_* environment variables.
func main() {
	viper.SetDefault("depth", 3)
	viper.SetDefault("side", "white")
	viper.SetDefault("debug", false)
	viper.SetEnvPrefix("woodpusher")
	viper.AutomaticEnv()
	viper.SetConfigName("woodpusher")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
			os.Exit(2)
		}
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if viper.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	humanSide := chess.White
	if strings.ToLower(viper.GetString("side")) == "black" {
		humanSide = chess.Black
	}
	strategy := engine.NewMinimax(viper.GetInt("depth"))
	log.Info().
		Stringer("human", humanSide).
		Int("depth", viper.GetInt("depth")).
		Msg("starting game")

	board := chess.NewStandardBoard()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Print(board)

		player := board.CurrentPlayer()
		if board.InCheckmate() {
			fmt.Printf("checkmate, %s wins\n", player.Side().Opponent())
			return
		}
		if board.InStalemate() {
			fmt.Println("stalemate")
			return
		}
		if player.InCheck() {
			fmt.Println("check")
		}

		if player.Side() == humanSide {
			next := humanMove(scanner, board)
			if next == nil {
				return
			}
			board = next
		} else {
			move := strategy.Execute(board)
			fmt.Printf("engine plays %s\n", move)
			board = player.MakeMove(move).Board
		}
	}
}

// humanMove prompts until the human enters a move the legality filter
// accepts. Returns nil on quit or end of input.
func humanMove(scanner *bufio.Scanner, board *chess.Board) *chess.Board {
	for {
		fmt.Print("your move (e.g. e2e4, or quit): ")
		if !scanner.Scan() {
			return nil
		}
		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "quit":
			return nil
		case "fen":
			fmt.Println(chess.ToFEN(board))
			continue
		}
		if len(text) != 4 {
			fmt.Println("enter moves as origin and destination, e.g. e2e4")
			continue
		}
		from, err := chess.ParseSquare(text[:2])
		if err == nil {
			var to chess.Square
			to, err = chess.ParseSquare(text[2:])
			if err == nil {
				move := board.FindMove(from, to)
				if move.IsNull() {
					fmt.Println("no such move")
					continue
				}
				transition := board.CurrentPlayer().MakeMove(move)
				if !transition.Status.IsDone() {
					fmt.Printf("move rejected: %s\n", transition.Status)
					continue
				}
				return transition.Board
			}
		}
		fmt.Printf("%v\n", err)
	}
}
