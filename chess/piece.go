package chess

// PieceType is the colorless kind of a piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceValues = [...]int{0, 100, 300, 300, 500, 900, 10000}
var pieceLetters = [...]string{"-", "P", "N", "B", "R", "Q", "K"}

// Value returns the material value used by the evaluator.
func (t PieceType) Value() int { return pieceValues[t] }

// Letter returns the upper-case letter used in move notation and rendering.
func (t PieceType) Letter() string { return pieceLetters[t] }

func (t PieceType) String() string { return pieceLetters[t] }

// Piece is an immutable piece value. A piece never changes once created; a
// moved piece is a distinct value at the new square with Moved set. The zero
// value (Type == NoPieceType) marks an empty board slot.
type Piece struct {
	Type   PieceType
	Side   Side
	Square Square
	Moved  bool
}

// moveTo returns the piece value after it moves to sq.
func (p Piece) moveTo(sq Square) Piece {
	p.Square = sq
	p.Moved = true
	return p
}

// char returns the piece's FEN/render character: upper case for White, lower
// case for Black.
func (p Piece) char() byte {
	ch := p.Type.Letter()[0]
	if p.Side == Black {
		ch += 'a' - 'A'
	}
	return ch
}
