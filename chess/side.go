package chess

// Side identifies one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward is the sign of the rank delta a pawn advance takes for this side.
// White pawns move toward rank 0, Black pawns toward rank 7.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the internal rank index the side's pawns start on.
func (s Side) PawnStartRank() int {
	if s == White {
		return 6
	}
	return 1
}

// PromotionRank returns the internal rank index on which the side's pawns
// promote.
func (s Side) PromotionRank() int {
	if s == White {
		return 0
	}
	return 7
}

// backRank returns the square of the a-file corner of the side's back rank.
// King and rook castle squares are offsets from it.
func (s Side) backRank() Square {
	if s == White {
		return 56
	}
	return 0
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}
