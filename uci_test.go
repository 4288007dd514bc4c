package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woodpusher/chess"
)

func TestSetPositionStartpos(t *testing.T) {
	b, err := setPosition([]string{"startpos"})
	require.NoError(t, err)
	assert.Equal(t, chess.FENStartPos, chess.ToFEN(b))
}

func TestSetPositionWithMoves(t *testing.T) {
	b, err := setPosition([]string{"startpos", "moves", "e2e4", "e7e5"})
	require.NoError(t, err)
	assert.Equal(t,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1",
		chess.ToFEN(b))
}

func TestSetPositionRejectsFEN(t *testing.T) {
	_, err := setPosition([]string{"fen", chess.FENStartPos})
	assert.Error(t, err)
}

func TestApplyMoveRejectsIllegalMove(t *testing.T) {
	_, err := applyMoves(chess.NewStandardBoard(), []string{"e2e5"})
	assert.ErrorContains(t, err, "no legal move")
}

func TestApplyMoveRejectsMalformedToken(t *testing.T) {
	for _, token := range []string{"", "e2", "x9z9", "e2e9"} {
		_, err := applyMove(chess.NewStandardBoard(), token)
		assert.Error(t, err, token)
	}
}

func TestApplyMoveRejectsSelfCheck(t *testing.T) {
	// After 1.e4 e5 2.Qh5 the f7 pawn may not advance into the queen's line.
	b, err := setPosition([]string{"startpos", "moves", "e2e4", "e7e5", "d1h5"})
	require.NoError(t, err)

	_, err = applyMove(b, "f7f6")
	assert.ErrorContains(t, err, "rejected")
}
