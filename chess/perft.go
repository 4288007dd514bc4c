package chess

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Only transitions accepted by the legality filter are followed, so the
// counts match the published perft tables and exercise every generator and
// the re-simulation filter together.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	player := b.CurrentPlayer()
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if t.Status.IsDone() {
			nodes += Perft(t.Board, depth-1)
		}
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts at the given depth,
// keyed by coordinate notation.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	player := b.CurrentPlayer()
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if t.Status.IsDone() {
			div[m.UCI()] = Perft(t.Board, depth-1)
		}
	}
	return div
}
