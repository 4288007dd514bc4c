package chess

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// MoveStatus classifies the outcome of attempting a move.
type MoveStatus uint8

const (
	// MoveDone means the move was legal and the successor board is live.
	MoveDone MoveStatus = iota
	// MoveIllegal means the (from,to) transition matches no generated move.
	MoveIllegal
	// MoveLeavesKingInCheck means the move was rejected because the mover's
	// king would be attacked afterwards.
	MoveLeavesKingInCheck
)

// IsDone reports whether the attempted move was accepted.
func (s MoveStatus) IsDone() bool { return s == MoveDone }

func (s MoveStatus) String() string {
	switch s {
	case MoveDone:
		return "done"
	case MoveIllegal:
		return "illegal"
	case MoveLeavesKingInCheck:
		return "leaves king in check"
	}
	return "unknown"
}

// MoveTransition is the classified result of attempting a move. Board equals
// the prior board unless Status is MoveDone; repeated rejection never
// mutates the prior position.
type MoveTransition struct {
	Board  *Board
	Move   Move
	Status MoveStatus
}

// Player is one side's derived view of a position: the union of its
// pseudo-legal moves and any legal castles, its king, and an in-check flag.
// It is recomputed fresh for every Board and never mutated.
type Player struct {
	board      *Board
	side       Side
	king       Piece
	legalMoves []Move
	inCheck    bool
}

// newPlayer aggregates a side's move set. Panics if the side has no king:
// such a position indicates a defect in move generation, not a game state.
func newPlayer(b *Board, side Side, own, opp []Move) *Player {
	p := &Player{board: b, side: side}
	p.king = establishKing(b, side)
	p.inCheck = len(attacksOnSquare(p.king.Square, opp)) > 0
	p.legalMoves = append(own, calculateCastles(b, p.king, p.inCheck, opp)...)
	return p
}

func establishKing(b *Board, side Side) Piece {
	for _, p := range b.Pieces(side) {
		if p.Type == King {
			return p
		}
	}
	panic("chess: no king for " + side.String() + ": not a valid board")
}

// attacksOnSquare returns every move in the given set whose destination is
// the square.
func attacksOnSquare(sq Square, moves []Move) []Move {
	return lo.Filter(moves, func(m Move, _ int) bool { return m.To == sq })
}

// Side returns the side this view belongs to.
func (p *Player) Side() Side { return p.side }

// King returns the side's king piece.
func (p *Player) King() Piece { return p.king }

// Opponent returns the other side's view of the same position.
func (p *Player) Opponent() *Player { return p.board.Player(p.side.Opponent()) }

// ActivePieces returns the side's pieces in board order.
func (p *Player) ActivePieces() []Piece { return p.board.Pieces(p.side) }

// LegalMoves returns the side's pseudo-legal moves plus any legal castles.
// Individual moves may still be rejected by MakeMove when they would leave
// the king attacked.
func (p *Player) LegalMoves() []Move { return p.legalMoves }

// InCheck reports whether the side's king is attacked by any opponent move.
func (p *Player) InCheck() bool { return p.inCheck }

// InCheckmate reports check with no escape move.
func (p *Player) InCheckmate() bool { return p.inCheck && !p.hasEscapeMoves() }

// InStalemate reports no escape move without check.
func (p *Player) InStalemate() bool { return !p.inCheck && !p.hasEscapeMoves() }

// HasCastled reports whether the side has castled at some point in the
// game's history leading to this position.
func (p *Player) HasCastled() bool { return p.board.castled[p.side] }

// hasEscapeMoves re-simulates each candidate move and reports whether any
// application survives the legality filter.
func (p *Player) hasEscapeMoves() bool {
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status.IsDone() {
			return true
		}
	}
	return false
}

func (p *Player) isMoveLegal(m Move) bool {
	return slices.ContainsFunc(p.legalMoves, m.Equal)
}

// MakeMove attempts a move and returns the classified transition. Legality
// is verified by full re-simulation: the move is applied and the successor's
// opponent move set is checked for an attack on the mover's king. No pin or
// check information is cached.
func (p *Player) MakeMove(m Move) MoveTransition {
	if !p.isMoveLegal(m) {
		return MoveTransition{Board: p.board, Move: m, Status: MoveIllegal}
	}
	next := p.board.Apply(m)
	moverKing := next.CurrentPlayer().Opponent().King()
	if len(attacksOnSquare(moverKing.Square, next.CurrentPlayer().LegalMoves())) > 0 {
		return MoveTransition{Board: p.board, Move: m, Status: MoveLeavesKingInCheck}
	}
	return MoveTransition{Board: next, Move: m, Status: MoveDone}
}

// calculateCastles computes the side's legal castle moves. Each flank
// requires an unmoved king and rook, empty squares strictly between them,
// and that no square the king stands on, passes through or lands on is
// attacked by any opponent pseudo-legal move.
func calculateCastles(b *Board, king Piece, inCheck bool, opp []Move) []Move {
	if king.Moved || inCheck {
		return nil
	}
	back := king.Side.backRank()
	if king.Square != back+4 {
		return nil
	}
	var castles []Move

	// Kingside: king to g-file, rook from h-file to f-file.
	if !b.Occupied(back+5) && !b.Occupied(back+6) {
		rook := b.Piece(back + 7)
		if rook.Type == Rook && rook.Side == king.Side && !rook.Moved &&
			len(attacksOnSquare(back+5, opp)) == 0 &&
			len(attacksOnSquare(back+6, opp)) == 0 {
			castles = append(castles, Move{
				Kind:   KingsideCastleMove,
				Piece:  king,
				To:     back + 6,
				Rook:   rook,
				RookTo: back + 5,
			})
		}
	}

	// Queenside: king to c-file, rook from a-file to d-file.
	if !b.Occupied(back+1) && !b.Occupied(back+2) && !b.Occupied(back+3) {
		rook := b.Piece(back)
		if rook.Type == Rook && rook.Side == king.Side && !rook.Moved &&
			len(attacksOnSquare(back+2, opp)) == 0 &&
			len(attacksOnSquare(back+3, opp)) == 0 {
			castles = append(castles, Move{
				Kind:   QueensideCastleMove,
				Piece:  king,
				To:     back + 2,
				Rook:   rook,
				RookTo: back + 3,
			})
		}
	}
	return castles
}
