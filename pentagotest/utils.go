package pentagotest

import (
	"strings"

	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

func Move(s string) pentago.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

// Moves parses a comma-separated list of moves.
func Moves(s string) []pentago.Move {
	if s == "" {
		return nil
	}
	var ms []pentago.Move
	for _, b := range strings.Split(s, ",") {
		ms = append(ms, Move(b))
	}
	return ms
}

// Board builds a board from one string per row, using the notation
// cell characters.
func Board(winLength int, rows ...string) *pentago.Board {
	b, e := notation.ParseBoard(strings.Join(rows, "/"), winLength)
	if e != nil {
		panic(e)
	}
	return b
}

// Game plays the given moves from an empty board.
func Game(size, winLength int, ms string) *pentago.Game {
	g, e := pentago.NewGame(pentago.Config{Size: size, WinLength: winLength})
	if e != nil {
		panic(e)
	}
	for _, m := range Moves(ms) {
		if e := g.MakeMove(m); e != nil {
			panic(e)
		}
	}
	return g
}
