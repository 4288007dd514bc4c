package chess

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToFEN exports the position in Forsyth-Edwards notation. The core tracks
// neither the halfmove clock nor the fullmove number, so those fields are
// exported as "0 1". FEN import is deliberately not provided; positions are
// set up through the Builder.
func ToFEN(b *Board) string {
	var sb strings.Builder

	// Piece placement, rank by rank from Black's back rank.
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Piece(Square(rank*8 + file))
			if p.Type == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingRights(b))

	sb.WriteByte(' ')
	if ep, ok := b.EnPassantPawn(); ok {
		// The capture target is the square the jumping pawn passed over.
		target := ep.Square - Square(8*ep.Side.Forward())
		sb.WriteString(target.Algebraic())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

// castlingRights derives the availability string from the king and rook
// has-moved flags.
func castlingRights(b *Board) string {
	var sb strings.Builder
	appendSide := func(side Side, kingside, queenside byte) {
		back := side.backRank()
		king := b.Piece(back + 4)
		if king.Type != King || king.Side != side || king.Moved {
			return
		}
		if r := b.Piece(back + 7); r.Type == Rook && r.Side == side && !r.Moved {
			sb.WriteByte(kingside)
		}
		if r := b.Piece(back); r.Type == Rook && r.Side == side && !r.Moved {
			sb.WriteByte(queenside)
		}
	}
	appendSide(White, 'K', 'Q')
	appendSide(Black, 'k', 'q')
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
