package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFENInitialPosition(t *testing.T) {
	assert.Equal(t, FENStartPos, ToFEN(NewStandardBoard()))
}

func TestToFENEnPassantTarget(t *testing.T) {
	b := playMoves(t, NewStandardBoard(), "e2e4")
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", ToFEN(b))

	b = playMoves(t, b, "c7c5")
	assert.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 1", ToFEN(b))

	// The marker expires after the reply.
	b = playMoves(t, b, "g1f3")
	assert.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1", ToFEN(b))
}

func TestToFENCastlingRightsDegrade(t *testing.T) {
	b := playMoves(t, NewStandardBoard(), "e2e4", "e7e5", "e1e2")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 0 1", ToFEN(b))

	b = playMoves(t, b, "h7h6", "h2h3", "h8h7")
	assert.Contains(t, ToFEN(b), " q ")
}

func TestToFENAfterCastle(t *testing.T) {
	b := playMoves(t, NewStandardBoard(), "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1")
	assert.Equal(t, "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 0 1", ToFEN(b))
	assert.True(t, b.WhitePlayer().HasCastled())
}
