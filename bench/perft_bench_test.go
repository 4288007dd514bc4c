package bench

import (
	"testing"

	"woodpusher/chess"
)

func benchPerft(b *testing.B, depth int, want uint64) {
	board := chess.NewStandardBoard()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := chess.Perft(board, depth); got != want {
			b.Fatalf("perft(%d) = %d, want %d", depth, got, want)
		}
	}
}

func BenchmarkPerft_Initial_D1(b *testing.B) {
	benchPerft(b, 1, 20)
}

func BenchmarkPerft_Initial_D2(b *testing.B) {
	benchPerft(b, 2, 400)
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, 3, 8902)
}
