package chess

// MoveKind tags the variant of a Move.
type MoveKind uint8

const (
	QuietMove MoveKind = iota
	CaptureMove
	PawnJumpMove
	PromotionMove
	EnPassantMove
	KingsideCastleMove
	QueensideCastleMove
	NullMoveKind
)

// Move is one transition of the game, meaningful only relative to the exact
// Board it was generated from. The variant determines which of the optional
// fields are set: Captured for CaptureMove and EnPassantMove, Rook and RookTo
// for the castle kinds, Inner for PromotionMove (the pawn move being
// promoted).
type Move struct {
	Kind     MoveKind
	Piece    Piece // the moved piece; its Square field is the origin
	To       Square
	Captured Piece
	Rook     Piece
	RookTo   Square
	Inner    *Move
}

// NullMove is the "no such move" sentinel returned by FindMove. It can never
// be applied.
var NullMove = Move{Kind: NullMoveKind}

// From returns the origin square of the move.
func (m Move) From() Square { return m.Piece.Square }

// IsNull reports whether the move is the null sentinel.
func (m Move) IsNull() bool { return m.Kind == NullMoveKind }

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	switch m.Kind {
	case CaptureMove, EnPassantMove:
		return true
	case PromotionMove:
		return m.Inner.IsAttack()
	}
	return false
}

// AttackedPiece returns the captured piece of an attacking move; the zero
// Piece otherwise.
func (m Move) AttackedPiece() Piece {
	switch m.Kind {
	case CaptureMove, EnPassantMove:
		return m.Captured
	case PromotionMove:
		return m.Inner.AttackedPiece()
	}
	return Piece{}
}

// Equal reports whether two moves describe the same transition: same moved
// piece, same origin and same destination.
func (m Move) Equal(o Move) bool {
	return m.Kind == o.Kind && m.Piece == o.Piece && m.To == o.To
}

// Apply builds the successor Board. The generic rule: copy every active
// piece of both sides except the moved piece (and the captured piece, for
// captures), place the moved piece's post-move value, flip the side to move.
// The receiver is never mutated. Applying the null move panics: it signals a
// generation or lookup bug upstream, never a normal game state.
func (b *Board) Apply(m Move) *Board {
	switch m.Kind {
	case NullMoveKind:
		panic("chess: cannot apply the null move")
	case PromotionMove:
		return b.applyPromotion(m)
	}

	bl := NewBuilder()
	bl.setCastled(b.castled)

	for _, p := range b.Pieces(m.Piece.Side) {
		if p == m.Piece {
			continue
		}
		if (m.Kind == KingsideCastleMove || m.Kind == QueensideCastleMove) && p == m.Rook {
			continue
		}
		bl.SetPiece(p)
	}
	for _, p := range b.Pieces(m.Piece.Side.Opponent()) {
		if (m.Kind == CaptureMove || m.Kind == EnPassantMove) && p == m.Captured {
			// En passant removes the pawn from the passed-over square, not
			// the destination; skipping the captured piece value covers both.
			continue
		}
		bl.SetPiece(p)
	}

	moved := m.Piece.moveTo(m.To)
	bl.SetPiece(moved)

	switch m.Kind {
	case PawnJumpMove:
		bl.SetEnPassantPawn(moved)
	case KingsideCastleMove, QueensideCastleMove:
		bl.SetPiece(m.Rook.moveTo(m.RookTo))
		bl.markCastled(m.Piece.Side)
	}

	bl.SetMoveMaker(m.Piece.Side.Opponent())
	return bl.Build()
}

// applyPromotion executes the wrapped pawn move to obtain an intermediate
// position, then replaces the promoted pawn with the promotion piece at the
// same square. Promotion always resolves to a queen.
func (b *Board) applyPromotion(m Move) *Board {
	intermediate := b.Apply(*m.Inner)
	movedPawn := m.Piece.moveTo(m.To)

	bl := NewBuilder()
	bl.setCastled(intermediate.castled)
	for _, side := range []Side{White, Black} {
		for _, p := range intermediate.Pieces(side) {
			if p == movedPawn {
				continue
			}
			bl.SetPiece(p)
		}
	}
	bl.SetPiece(Piece{Type: Queen, Side: m.Piece.Side, Square: m.To, Moved: true})
	bl.SetMoveMaker(intermediate.sideToMove)
	return bl.Build()
}

// UCI returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From().Algebraic() + m.To.Algebraic()
	if m.Kind == PromotionMove {
		s += "q"
	}
	return s
}

// String returns a short algebraic rendering of the move: "O-O"/"O-O-O" for
// castles, "exd5" for pawn captures, "Nf3"/"Nxf3" for piece moves, a bare
// destination for pawn pushes and "=Q" suffixed for promotions.
func (m Move) String() string {
	switch m.Kind {
	case NullMoveKind:
		return "(none)"
	case KingsideCastleMove:
		return "O-O"
	case QueensideCastleMove:
		return "O-O-O"
	case PromotionMove:
		return m.Inner.String() + "=Q"
	case PawnJumpMove:
		return m.To.Algebraic()
	case CaptureMove, EnPassantMove:
		if m.Piece.Type == Pawn {
			return m.From().Algebraic()[:1] + "x" + m.To.Algebraic()
		}
		return m.Piece.Type.Letter() + "x" + m.To.Algebraic()
	}
	if m.Piece.Type == Pawn {
		return m.To.Algebraic()
	}
	return m.Piece.Type.Letter() + m.To.Algebraic()
}
