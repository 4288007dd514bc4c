package engine

import (
	"testing"

	"github.com/matryer/is"

	"woodpusher/chess"
)

// advance plays a sequence of moves given as origin-destination coordinate
// pairs and returns the resulting position.
func advance(t *testing.T, b *chess.Board, coords ...string) *chess.Board {
	t.Helper()
	is := is.New(t)
	for _, c := range coords {
		from, err := chess.ParseSquare(c[:2])
		is.NoErr(err)
		to, err := chess.ParseSquare(c[2:])
		is.NoErr(err)
		move := b.FindMove(from, to)
		is.True(!move.IsNull())
		transition := b.CurrentPlayer().MakeMove(move)
		is.True(transition.Status.IsDone())
		b = transition.Board
	}
	return b
}

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	is := is.New(t)
	is.Equal(Evaluate(chess.NewStandardBoard(), 0), 0)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	is := is.New(t)

	// The initial position minus Black's a8 rook. The cornered rook has no
	// moves, so the score shift is pure material.
	bl := chess.NewBuilder()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range chess.NewStandardBoard().Pieces(side) {
			if p.Side == chess.Black && p.Type == chess.Rook && p.Square == chess.Square(0) {
				continue
			}
			bl.SetPiece(p)
		}
	}
	bl.SetMoveMaker(chess.White)

	is.Equal(Evaluate(bl.Build(), 0), chess.Rook.Value())
}

func TestEvaluateCheckmateDominates(t *testing.T) {
	is := is.New(t)
	b := advance(t, chess.NewStandardBoard(), "f2f3", "e7e5", "g2g4", "d8h4")
	is.True(b.InCheckmate())

	is.True(Evaluate(b, 0) < -checkmateBonus/2)
	// Deeper remaining depth means a faster mate and scores higher.
	is.True(Evaluate(b, 2) < Evaluate(b, 1))
}

func TestEvaluateCastleBonus(t *testing.T) {
	is := is.New(t)
	b := advance(t, chess.NewStandardBoard(),
		"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1")

	is.True(b.WhitePlayer().HasCastled())
	is.Equal(castled(b.WhitePlayer()), castleBonus)
	is.Equal(castled(b.BlackPlayer()), 0)
}

func TestEvaluateCheckBonus(t *testing.T) {
	is := is.New(t)
	// A lone queen check: Qh5+ against an exposed king after f7f6.
	b := advance(t, chess.NewStandardBoard(), "e2e4", "f7f6", "d1h5")

	is.True(b.InCheck(chess.Black))
	is.Equal(check(b.WhitePlayer()), checkBonus)
	is.Equal(check(b.BlackPlayer()), 0)
}
