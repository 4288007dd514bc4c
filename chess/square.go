package chess

import "github.com/pkg/errors"

// Square indexes a board slot in row-major order. Square 0 is a8 (Black's
// back rank, top left from White's point of view) and square 63 is h1.
type Square int

// NumSquares is the number of slots on the board.
const NumSquares = 64

// Boundary tables, indexed by square. The offset arithmetic used by the move
// generators silently wraps across board edges (e.g. +1 from h4 lands on a3),
// so every offset is paired with the file exclusions that make it invalid.
var (
	firstFile   [NumSquares]bool
	secondFile  [NumSquares]bool
	seventhFile [NumSquares]bool
	eighthFile  [NumSquares]bool

	rankTable [8][NumSquares]bool
)

func init() {
	fillFile(&firstFile, 0)
	fillFile(&secondFile, 1)
	fillFile(&seventhFile, 6)
	fillFile(&eighthFile, 7)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			rankTable[r][r*8+f] = true
		}
	}
}

func fillFile(table *[NumSquares]bool, file int) {
	for sq := file; sq < NumSquares; sq += 8 {
		table[sq] = true
	}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

// File returns the file index in [0,7], file 0 being the a-file.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the internal rank index in [0,7], rank 0 being Black's back
// rank. Note this is not the algebraic rank number.
func (s Square) Rank() int { return int(s) / 8 }

// Algebraic returns the coordinate name of the square, e.g. "e4".
func (s Square) Algebraic() string {
	return string([]byte{byte('a' + s.File()), byte('8' - s.Rank())})
}

func (s Square) String() string { return s.Algebraic() }

// ParseSquare converts an algebraic coordinate such as "e4" into a Square.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return 0, errors.Errorf("invalid square %q", coord)
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, errors.Errorf("invalid square %q", coord)
	}
	return Square((7-rank)*8 + file), nil
}
