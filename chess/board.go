package chess

import (
	"strings"
)

// Board is a complete immutable snapshot of the game: piece placement, the
// side to move and the en-passant marker. A Board is created once (the
// initial setup, or through a Builder) and thereafter only by applying a
// Move, which produces an entirely new value. Nothing is ever mutated in
// place, so Boards are safe to share across goroutines.
//
// Invariants: exactly 64 slots, exactly one king per side among the active
// pieces, and every piece's stored square matches its slot index. A missing
// king is a generator defect and panics at construction.
type Board struct {
	slots         [NumSquares]Piece
	whitePieces   []Piece
	blackPieces   []Piece
	sideToMove    Side
	enPassantPawn Piece // zero value when no pawn just jumped
	castled       [2]bool

	white *Player
	black *Player
}

// Builder accumulates a board configuration square by square and produces an
// immutable Board. It is the only way to construct a Board, and may be used
// directly to set up arbitrary positions.
type Builder struct {
	config        map[Square]Piece
	moveMaker     Side
	enPassantPawn Piece
	castled       [2]bool
}

// NewBuilder returns an empty Builder with White to move.
func NewBuilder() *Builder {
	return &Builder{config: make(map[Square]Piece)}
}

// SetPiece places a piece on the square it carries, replacing any previous
// occupant of that square.
func (bl *Builder) SetPiece(p Piece) *Builder {
	bl.config[p.Square] = p
	return bl
}

// SetMoveMaker sets the side to move in the built position.
func (bl *Builder) SetMoveMaker(s Side) *Builder {
	bl.moveMaker = s
	return bl
}

// SetEnPassantPawn marks a pawn that just advanced two squares; the marker
// is live for exactly the one ply that follows.
func (bl *Builder) SetEnPassantPawn(p Piece) *Builder {
	bl.enPassantPawn = p
	return bl
}

func (bl *Builder) setCastled(castled [2]bool) *Builder {
	bl.castled = castled
	return bl
}

func (bl *Builder) markCastled(s Side) *Builder {
	bl.castled[s] = true
	return bl
}

// Build assembles the Board: it fixes the slots, derives the active piece
// lists in board order, computes both sides' pseudo-legal moves and wires up
// the two Players. Panics if either side lacks a king.
func (bl *Builder) Build() *Board {
	b := &Board{
		sideToMove:    bl.moveMaker,
		enPassantPawn: bl.enPassantPawn,
		castled:       bl.castled,
	}
	for sq, p := range bl.config {
		b.slots[sq] = p
	}
	// Active pieces are collected in board order so that move generation is
	// deterministic regardless of builder insertion order.
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.slots[sq]
		if p.Type == NoPieceType {
			continue
		}
		if p.Side == White {
			b.whitePieces = append(b.whitePieces, p)
		} else {
			b.blackPieces = append(b.blackPieces, p)
		}
	}

	whiteMoves := b.pseudoLegalMoves(b.whitePieces)
	blackMoves := b.pseudoLegalMoves(b.blackPieces)
	b.white = newPlayer(b, White, whiteMoves, blackMoves)
	b.black = newPlayer(b, Black, blackMoves, whiteMoves)
	return b
}

// NewStandardBoard builds the standard chess opening position, White to move.
func NewStandardBoard() *Board {
	bl := NewBuilder()

	backRow := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, t := range backRow {
		bl.SetPiece(Piece{Type: t, Side: Black, Square: Square(f)})
		bl.SetPiece(Piece{Type: t, Side: White, Square: Square(56 + f)})
	}
	for f := 0; f < 8; f++ {
		bl.SetPiece(Piece{Type: Pawn, Side: Black, Square: Square(8 + f)})
		bl.SetPiece(Piece{Type: Pawn, Side: White, Square: Square(48 + f)})
	}

	bl.SetMoveMaker(White)
	return bl.Build()
}

// Piece returns the occupant of sq; the zero Piece if the square is empty.
func (b *Board) Piece(sq Square) Piece { return b.slots[sq] }

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool { return b.slots[sq].Type != NoPieceType }

// Pieces returns the active pieces of a side, in board order.
func (b *Board) Pieces(s Side) []Piece {
	if s == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Side { return b.sideToMove }

// EnPassantPawn returns the pawn that advanced two squares on the previous
// ply, if any.
func (b *Board) EnPassantPawn() (Piece, bool) {
	return b.enPassantPawn, b.enPassantPawn.Type == Pawn
}

// WhitePlayer returns the white side's aggregation for this position.
func (b *Board) WhitePlayer() *Player { return b.white }

// BlackPlayer returns the black side's aggregation for this position.
func (b *Board) BlackPlayer() *Player { return b.black }

// Player returns one side's aggregation for this position.
func (b *Board) Player(s Side) *Player {
	if s == White {
		return b.white
	}
	return b.black
}

// CurrentPlayer returns the aggregation of the side to move.
func (b *Board) CurrentPlayer() *Player { return b.Player(b.sideToMove) }

// AllLegalMoves returns the union of both sides' move sets.
func (b *Board) AllLegalMoves() []Move {
	all := make([]Move, 0, len(b.white.legalMoves)+len(b.black.legalMoves))
	all = append(all, b.white.legalMoves...)
	all = append(all, b.black.legalMoves...)
	return all
}

// FindMove scans the side to move's legal moves for one matching the given
// origin and destination. It returns NullMove when no such move exists;
// callers must branch on Move.IsNull.
func (b *Board) FindMove(from, to Square) Move {
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.From() == from && m.To == to {
			return m
		}
	}
	return NullMove
}

// InCheck reports whether the given side's king is attacked in this position.
func (b *Board) InCheck(s Side) bool { return b.Player(s).InCheck() }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool { return b.CurrentPlayer().InCheckmate() }

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool { return b.CurrentPlayer().InStalemate() }

// String renders the board as a rank-major character grid, one character per
// piece (upper case White, lower case Black) and '-' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for sq := Square(0); sq < NumSquares; sq++ {
		ch := byte('-')
		if p := b.slots[sq]; p.Type != NoPieceType {
			ch = p.char()
		}
		sb.WriteByte(ch)
		if (sq+1)%8 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
