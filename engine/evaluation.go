package engine

import "woodpusher/chess"

// =============================================================================
// EVALUATION BONUSES
// =============================================================================
const (
	checkBonus     = 50
	checkmateBonus = 10000
	depthFactor    = 100
	castleBonus    = 60
)

// Evaluate scores a position from the fixed perspective of White: positive
// favors White, negative favors Black, regardless of whose turn it is. The
// score combines material, mobility, a bonus for giving check, a large
// depth-scaled bonus for checkmate (preferring faster mates) and a bonus for
// having castled.
func Evaluate(b *chess.Board, depth int) int {
	return scorePlayer(b.WhitePlayer(), depth) - scorePlayer(b.BlackPlayer(), depth)
}

func scorePlayer(p *chess.Player, depth int) int {
	return material(p) + mobility(p) + check(p) + checkmate(p, depth) + castled(p)
}

func material(p *chess.Player) int {
	score := 0
	for _, piece := range p.ActivePieces() {
		score += piece.Type.Value()
	}
	return score
}

func mobility(p *chess.Player) int {
	return len(p.LegalMoves())
}

func check(p *chess.Player) int {
	if p.Opponent().InCheck() {
		return checkBonus
	}
	return 0
}

func checkmate(p *chess.Player, depth int) int {
	if p.Opponent().InCheckmate() {
		return checkmateBonus * depthBonus(depth)
	}
	return 0
}

func depthBonus(depth int) int {
	if depth == 0 {
		return 1
	}
	return depthFactor * depth
}

func castled(p *chess.Player) int {
	if p.HasCastled() {
		return castleBonus
	}
	return 0
}
