package engine

import (
	"testing"

	"github.com/matryer/is"

	"woodpusher/chess"
)

func TestNewMinimaxRejectsNonPositiveDepth(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	NewMinimax(0)
}

func TestMinimaxFindsMateInOne(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep search in short mode")
	}
	is := is.New(t)

	// The fool's mate position one ply before the end; Black mates with the
	// queen check on h4.
	b := advance(t, chess.NewStandardBoard(), "f2f3", "e7e5", "g2g4")
	move := NewMinimax(4).Execute(b)

	is.Equal(move.Piece.Type, chess.Queen)
	is.Equal(move.To.Algebraic(), "h4")

	transition := b.CurrentPlayer().MakeMove(move)
	is.True(transition.Status.IsDone())
	is.True(transition.Board.InCheckmate())
}

func TestMinimaxTakesHangingQueen(t *testing.T) {
	is := is.New(t)

	bl := chess.NewBuilder()
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.White, Square: mustSquare(t, "g1"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.Queen, Side: chess.White, Square: mustSquare(t, "d1"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.Black, Square: mustSquare(t, "g8"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.Queen, Side: chess.Black, Square: mustSquare(t, "d5"), Moved: true})
	bl.SetMoveMaker(chess.White)
	b := bl.Build()

	move := NewMinimax(2).Execute(b)
	is.Equal(move.Piece.Type, chess.Queen)
	is.Equal(move.To.Algebraic(), "d5")
	is.True(move.IsAttack())
}

func TestMinimaxReturnsNullMoveWhenNoLegalMove(t *testing.T) {
	is := is.New(t)

	bl := chess.NewBuilder()
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.Black, Square: mustSquare(t, "a8"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.White, Square: mustSquare(t, "b6"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.Queen, Side: chess.White, Square: mustSquare(t, "c7"), Moved: true})
	bl.SetMoveMaker(chess.Black)
	b := bl.Build()
	is.True(b.InStalemate())

	is.True(NewMinimax(2).Execute(b).IsNull())
}

func TestMinimaxTieBreakKeepsFirstMove(t *testing.T) {
	is := is.New(t)

	// Bare kings: every move scores identically, so the searcher must return
	// the first legal move in generation order.
	bl := chess.NewBuilder()
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.White, Square: mustSquare(t, "e1"), Moved: true})
	bl.SetPiece(chess.Piece{Type: chess.King, Side: chess.Black, Square: mustSquare(t, "e8"), Moved: true})
	bl.SetMoveMaker(chess.White)
	b := bl.Build()

	got := NewMinimax(1).Execute(b)
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if b.CurrentPlayer().MakeMove(m).Status.IsDone() {
			is.True(got.Equal(m))
			break
		}
	}
}

func mustSquare(t *testing.T, coord string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(coord)
	is.New(t).NoErr(err)
	return sq
}
