package pentago

import "errors"

var ErrGameOver = errors.New("game is over")

// Game is a single game session: a board plus whose turn it is. The
// turn only changes when MakeMove commits a move.
type Game struct {
	board  *Board
	toMove Color
	moves  []Move
}

func NewGame(cfg Config) (*Game, error) {
	b, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{board: b, toMove: White}, nil
}

// FromBoard starts a game at an existing position with toMove on
// turn. The game takes ownership of b.
func FromBoard(b *Board, toMove Color) *Game {
	return &Game{board: b, toMove: toMove}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) ToMove() Color {
	return g.toMove
}

// MoveNumber is the number of moves committed so far.
func (g *Game) MoveNumber() int {
	return len(g.moves)
}

func (g *Game) Moves() []Move {
	return g.moves
}

func (g *Game) IsLegal(m Move) bool {
	return g.board.IsLegal(m)
}

// MakeMove applies m for the player on turn and passes the turn. An
// illegal move, or any move after the game has ended, leaves the game
// unchanged.
func (g *Game) MakeMove(m Move) error {
	if g.board.Outcome().Over() {
		return ErrGameOver
	}
	if err := g.board.MakeMove(m, g.toMove); err != nil {
		return err
	}
	g.moves = append(g.moves, m)
	g.toMove = g.toMove.Flip()
	return nil
}

func (g *Game) Outcome() Outcome {
	return g.board.Outcome()
}

func (g *Game) Reset() {
	g.board.Reset()
	g.moves = nil
	g.toMove = White
}
