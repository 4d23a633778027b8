package pentago

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

type Direction int8

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Directions lists the rotation directions in the order the search
// engine tries them.
var Directions = []Direction{Clockwise, CounterClockwise}

// Quadrants is the number of rotatable quadrants on every board.
const Quadrants = 4

func (d Direction) Valid() bool {
	return lo.Contains(Directions, d)
}

func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Move places a marble at (Row, Col) and then rotates Quadrant in
// Direction.
type Move struct {
	Row, Col  int
	Quadrant  int
	Direction Direction
}

func (m Move) Square() Square {
	return Square{m.Row, m.Col}
}

var (
	ErrOutOfBounds  = errors.New("square is off the board")
	ErrOccupied     = errors.New("square is occupied")
	ErrBadQuadrant  = errors.New("no such quadrant")
	ErrBadDirection = errors.New("rotation must be clockwise or counter-clockwise")
	ErrNoColor      = errors.New("move requires a player color")
)

// CheckMove reports why m is illegal on b, or nil. Legality does not
// depend on whose turn it is.
func (b *Board) CheckMove(m Move) error {
	switch {
	case !b.InBounds(m.Row, m.Col):
		return ErrOutOfBounds
	case b.At(m.Row, m.Col) != Empty:
		return ErrOccupied
	case m.Quadrant < 0 || m.Quadrant >= Quadrants:
		return ErrBadQuadrant
	case !m.Direction.Valid():
		return ErrBadDirection
	}
	return nil
}

func (b *Board) IsLegal(m Move) bool {
	return b.CheckMove(m) == nil
}

// MakeMove places a c marble and applies the rotation. The board is
// unchanged if the move is illegal.
func (b *Board) MakeMove(m Move, c Color) error {
	if c != White && c != Black {
		return ErrNoColor
	}
	if err := b.CheckMove(m); err != nil {
		return err
	}
	b.Set(m.Row, m.Col, c)
	b.RotateQuadrant(m.Quadrant, m.Direction)
	return nil
}

// UnmakeMove reverses MakeMove: it undoes the rotation and then clears
// the placed marble.
func (b *Board) UnmakeMove(m Move) {
	b.RotateQuadrant(m.Quadrant, m.Direction.Opposite())
	b.Set(m.Row, m.Col, Empty)
}
