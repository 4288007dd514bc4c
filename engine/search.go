package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"woodpusher/chess"
)

// Strategy selects a move for the side to move in a position.
type Strategy interface {
	Execute(b *chess.Board) chess.Move
}

// Minimax is a fixed-depth exhaustive adversarial search. It explores the
// full game tree to the configured depth with no pruning, which bounds
// practical depth to small values (around 4 plies). The search is a pure
// function of the position: it has no side effects, performs no I/O, and
// independent searches over different boards may run concurrently.
type Minimax struct {
	depth int
}

var _ Strategy = (*Minimax)(nil)

// NewMinimax returns a searcher for the given depth in plies. Panics if
// depth is not positive.
func NewMinimax(depth int) *Minimax {
	if depth < 1 {
		panic("engine: search depth must be positive")
	}
	return &Minimax{depth: depth}
}

// Execute returns the legal move whose resulting score is best for the side
// to move: maximum for White, minimum for Black, since Evaluate scores from
// White's fixed perspective. Ties keep the first move found in generation
// order. Returns NullMove only when the side to move has no legal move;
// callers must check for checkmate and stalemate first.
func (mm *Minimax) Execute(b *chess.Board) chess.Move {
	start := time.Now()
	player := b.CurrentPlayer()
	log.Info().
		Stringer("side", player.Side()).
		Int("depth", mm.depth).
		Msg("searching")

	best := chess.NullMove
	highest := math.MinInt
	lowest := math.MaxInt
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		if player.Side() == chess.White {
			if value := mm.min(transition.Board, mm.depth-1); value > highest {
				highest = value
				best = move
			}
		} else {
			if value := mm.max(transition.Board, mm.depth-1); value < lowest {
				lowest = value
				best = move
			}
		}
	}

	log.Debug().
		Stringer("move", best).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")
	return best
}

// min and max are mutually co-recursive: min picks the reply worst for White
// one ply down, max the reply best for White. Both bottom out at depth zero
// or a finished game and return the static evaluation.

func (mm *Minimax) min(b *chess.Board, depth int) int {
	if depth == 0 || gameOver(b) {
		return Evaluate(b, depth)
	}
	lowest := math.MaxInt
	player := b.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		if value := mm.max(transition.Board, depth-1); value < lowest {
			lowest = value
		}
	}
	return lowest
}

func (mm *Minimax) max(b *chess.Board, depth int) int {
	if depth == 0 || gameOver(b) {
		return Evaluate(b, depth)
	}
	highest := math.MinInt
	player := b.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		if value := mm.min(transition.Board, depth-1); value > highest {
			highest = value
		}
	}
	return highest
}

func gameOver(b *chess.Board) bool {
	player := b.CurrentPlayer()
	return player.InCheckmate() || player.InStalemate()
}
