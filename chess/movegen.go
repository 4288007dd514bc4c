package chess

// Candidate move offsets per piece archetype, in the fixed order they are
// generated. Offsets are row-major square deltas: +1 east, +8 south.
var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	bishopOffsets = []int{-9, -7, 7, 9}
	rookOffsets   = []int{-8, -1, 1, 8}
	queenOffsets  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	pawnOffsets   = []int{8, 16, 7, 9}
)

// pseudoLegalMoves produces every pseudo-legal move for the given pieces:
// legal with respect to occupancy and board edges, not yet filtered for
// leaving the own king attacked. Pieces are iterated in board order and
// offsets in declared order, so the output is deterministic.
func (b *Board) pseudoLegalMoves(pieces []Piece) []Move {
	var moves []Move
	for _, p := range pieces {
		moves = append(moves, b.pieceMoves(p)...)
	}
	return moves
}

func (b *Board) pieceMoves(p Piece) []Move {
	switch p.Type {
	case Pawn:
		return b.pawnMoves(p)
	case Knight:
		return b.steppingMoves(p, knightOffsets, knightExcluded)
	case Bishop:
		return b.slidingMoves(p, bishopOffsets)
	case Rook:
		return b.slidingMoves(p, rookOffsets)
	case Queen:
		return b.slidingMoves(p, queenOffsets)
	case King:
		return b.steppingMoves(p, kingOffsets, sliderExcluded)
	}
	panic("chess: move generation for unknown piece type")
}

// slidingMoves walks each direction offset until an edge, an own piece or an
// enemy piece is hit: one quiet move per empty square, one capture on the
// first enemy piece, then the direction stops.
func (b *Board) slidingMoves(p Piece, offsets []int) []Move {
	var moves []Move
	for _, off := range offsets {
		for cur := p.Square; ; {
			if sliderExcluded(cur, off) {
				break
			}
			cur += Square(off)
			if !cur.Valid() {
				break
			}
			target := b.slots[cur]
			if target.Type == NoPieceType {
				moves = append(moves, Move{Kind: QuietMove, Piece: p, To: cur})
				continue
			}
			if target.Side != p.Side {
				moves = append(moves, Move{Kind: CaptureMove, Piece: p, To: cur, Captured: target})
			}
			break
		}
	}
	return moves
}

// steppingMoves applies each offset once, filtered by the piece's column
// exclusion table.
func (b *Board) steppingMoves(p Piece, offsets []int, excluded func(Square, int) bool) []Move {
	var moves []Move
	for _, off := range offsets {
		if excluded(p.Square, off) {
			continue
		}
		dest := p.Square + Square(off)
		if !dest.Valid() {
			continue
		}
		target := b.slots[dest]
		if target.Type == NoPieceType {
			moves = append(moves, Move{Kind: QuietMove, Piece: p, To: dest})
		} else if target.Side != p.Side {
			moves = append(moves, Move{Kind: CaptureMove, Piece: p, To: dest, Captured: target})
		}
	}
	return moves
}

// pawnMoves handles the four pawn offset cases: single advance (promoting on
// the far rank), double advance from the start rank, and the two diagonal
// captures (normal, promotion or en passant).
func (b *Board) pawnMoves(p Piece) []Move {
	var moves []Move
	dir := p.Side.Forward()
	for _, off := range pawnOffsets {
		dest := p.Square + Square(dir*off)
		if !dest.Valid() {
			continue
		}
		switch off {
		case 8:
			if b.Occupied(dest) {
				continue
			}
			push := Move{Kind: QuietMove, Piece: p, To: dest}
			if rankTable[p.Side.PromotionRank()][dest] {
				push = promote(push)
			}
			moves = append(moves, push)
		case 16:
			if p.Moved || !rankTable[p.Side.PawnStartRank()][p.Square] {
				continue
			}
			behind := p.Square + Square(dir*8)
			if b.Occupied(behind) || b.Occupied(dest) {
				continue
			}
			moves = append(moves, Move{Kind: PawnJumpMove, Piece: p, To: dest})
		case 7:
			if (eighthFile[p.Square] && p.Side == White) || (firstFile[p.Square] && p.Side == Black) {
				continue
			}
			moves = append(moves, b.pawnAttacks(p, dest, p.Square+Square(-dir))...)
		case 9:
			if (firstFile[p.Square] && p.Side == White) || (eighthFile[p.Square] && p.Side == Black) {
				continue
			}
			moves = append(moves, b.pawnAttacks(p, dest, p.Square+Square(dir))...)
		}
	}
	return moves
}

// pawnAttacks resolves one diagonal: a capture (or promotion capture) when
// the square holds an enemy piece, or an en-passant capture when the square
// is empty but the adjacent file neighbor is the position's en-passant pawn.
func (b *Board) pawnAttacks(p Piece, dest, epNeighbor Square) []Move {
	if target := b.slots[dest]; target.Type != NoPieceType {
		if target.Side == p.Side {
			return nil
		}
		capture := Move{Kind: CaptureMove, Piece: p, To: dest, Captured: target}
		if rankTable[p.Side.PromotionRank()][dest] {
			capture = promote(capture)
		}
		return []Move{capture}
	}
	if ep, ok := b.EnPassantPawn(); ok && ep.Square == epNeighbor && ep.Side != p.Side {
		return []Move{{Kind: EnPassantMove, Piece: p, To: dest, Captured: ep}}
	}
	return nil
}

// promote wraps a pawn move reaching the far rank in a promotion move.
func promote(inner Move) Move {
	return Move{Kind: PromotionMove, Piece: inner.Piece, To: inner.To, Inner: &inner}
}

// knightExcluded rejects knight offsets that would wrap across a board edge;
// knight offsets span two files, so both edge file pairs are checked.
func knightExcluded(from Square, off int) bool {
	if firstFile[from] && (off == -17 || off == -10 || off == 6 || off == 15) {
		return true
	}
	if secondFile[from] && (off == -10 || off == 6) {
		return true
	}
	if seventhFile[from] && (off == -6 || off == 10) {
		return true
	}
	return eighthFile[from] && (off == -15 || off == -6 || off == 10 || off == 17)
}

// sliderExcluded rejects single-file offsets that would wrap across the a- or
// h-file edge; shared by the sliding pieces and the king.
func sliderExcluded(at Square, off int) bool {
	if firstFile[at] && (off == -9 || off == -1 || off == 7) {
		return true
	}
	return eighthFile[at] && (off == -7 || off == 1 || off == 9)
}
