package pentago_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/pentago/pentago"
	"github.com/nelhage/pentago/pentagotest"
)

func TestIsLegal(t *testing.T) {
	b := pentagotest.Board(5,
		"x.....",
		"......",
		"......",
		"......",
		"......",
		".....o",
	)
	cases := []struct {
		m   pentago.Move
		err error
	}{
		{pentago.Move{Row: 0, Col: 1, Quadrant: 0, Direction: pentago.Clockwise}, nil},
		{pentago.Move{Row: 3, Col: 3, Quadrant: 3, Direction: pentago.CounterClockwise}, nil},
		{pentago.Move{Row: 0, Col: 0, Quadrant: 0, Direction: pentago.Clockwise}, pentago.ErrOccupied},
		{pentago.Move{Row: 5, Col: 5, Quadrant: 1, Direction: pentago.Clockwise}, pentago.ErrOccupied},
		{pentago.Move{Row: 1, Col: 1, Quadrant: 4, Direction: pentago.Clockwise}, pentago.ErrBadQuadrant},
		{pentago.Move{Row: 1, Col: 1, Quadrant: -1, Direction: pentago.Clockwise}, pentago.ErrBadQuadrant},
		{pentago.Move{Row: 1, Col: 1, Quadrant: 2, Direction: 0}, pentago.ErrBadDirection},
		{pentago.Move{Row: 1, Col: 1, Quadrant: 2, Direction: 3}, pentago.ErrBadDirection},
		{pentago.Move{Row: 6, Col: 1, Quadrant: 2, Direction: pentago.Clockwise}, pentago.ErrOutOfBounds},
		{pentago.Move{Row: 1, Col: -1, Quadrant: 2, Direction: pentago.Clockwise}, pentago.ErrOutOfBounds},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.err == nil, b.IsLegal(tc.m), "move=%+v", tc.m)
		assert.Equal(t, tc.err, b.CheckMove(tc.m), "move=%+v", tc.m)
	}
}

func TestMakeMoveCount(t *testing.T) {
	b := pentago.MustNew(pentago.Config{Size: 6})
	moves := pentagotest.Moves("0 0 0 1,1 1 0 -1,2 2 1 1,3 3 3 1,5 5 2 -1")
	c := pentago.White
	for i, m := range moves {
		require.NoError(t, b.MakeMove(m, c))
		assert.Equal(t, i+1, b.Marbles())
		c = c.Flip()
	}

	before := b.Clone()
	err := b.MakeMove(pentago.Move{Row: 9, Col: 0, Quadrant: 0, Direction: pentago.Clockwise}, c)
	assert.ErrorIs(t, err, pentago.ErrOutOfBounds)
	err = b.MakeMove(pentago.Move{Row: 4, Col: 4, Quadrant: 0, Direction: pentago.Clockwise}, pentago.NoColor)
	assert.ErrorIs(t, err, pentago.ErrNoColor)
	assert.True(t, before.Equal(b))
}

func TestUnmakeMove(t *testing.T) {
	b := pentagotest.Board(5,
		"xo....",
		".x....",
		"..o...",
		"...x..",
		"....o.",
		"......",
	)
	before := b.Clone()
	for _, sq := range before.EmptyPositions() {
		for q := 0; q < pentago.Quadrants; q++ {
			for _, d := range pentago.Directions {
				m := pentago.Move{Row: sq.Row, Col: sq.Col, Quadrant: q, Direction: d}
				require.NoError(t, b.MakeMove(m, pentago.Black))
				b.UnmakeMove(m)
				require.True(t, before.Equal(b), "move=%+v", m)
			}
		}
	}
}

func TestCheckWinnerRows(t *testing.T) {
	for row := 0; row < 6; row++ {
		for start := 0; start <= 1; start++ {
			b := pentago.MustNew(pentago.Config{Size: 6, WinLength: 5})
			for c := start; c < start+5; c++ {
				b.Set(row, c, pentago.Black)
			}
			o := pentago.CheckWinner(b)
			assert.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.Black}, o,
				"row=%d start=%d", row, start)
		}
	}
}

func TestCheckWinnerLines(t *testing.T) {
	cases := []struct {
		name  string
		cells [][2]int
	}{
		{"column", [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}}},
		{"main diagonal", [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{"upper diagonal", [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}},
		{"lower diagonal", [][2]int{{1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 4}}},
		{"anti diagonal", [][2]int{{1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}}},
		{"upper anti diagonal", [][2]int{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}}},
		{"lower anti diagonal", [][2]int{{1, 5}, {2, 4}, {3, 3}, {4, 2}, {5, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := pentago.MustNew(pentago.Config{Size: 6, WinLength: 5})
			for i, sq := range tc.cells {
				b.Set(sq[0], sq[1], pentago.White)
				o := pentago.CheckWinner(b)
				if i < len(tc.cells)-1 {
					assert.Equal(t, pentago.InProgress, o.State)
				} else {
					assert.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.White}, o)
				}
			}
		})
	}
}

func TestCheckWinnerBrokenRun(t *testing.T) {
	b := pentagotest.Board(5,
		"xxxoxx",
		"xx.xxx",
		"......",
		"......",
		"......",
		"......",
	)
	assert.Equal(t, pentago.InProgress, pentago.CheckWinner(b).State)
}

func TestCheckWinnerShortLength(t *testing.T) {
	b := pentagotest.Board(3,
		"......",
		"......",
		"......",
		"o.....",
		".o....",
		"..o...",
	)
	assert.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.Black}, pentago.CheckWinner(b))
}

func TestSimultaneousWinIsDraw(t *testing.T) {
	b := pentagotest.Board(5,
		".....o",
		".....o",
		".....o",
		"xxxoo.",
		"...x..",
		"...x..",
	)
	g := pentago.FromBoard(b, pentago.White)
	require.Equal(t, pentago.InProgress, g.Outcome().State)

	require.NoError(t, g.MakeMove(pentago.Move{Row: 5, Col: 0, Quadrant: 3, Direction: pentago.Clockwise}))

	o := pentago.CheckWinner(b)
	assert.Equal(t, pentago.Outcome{State: pentago.Draw}, o)
	assert.True(t, pentago.IsDraw(o, b))
	assert.False(t, b.Full())
	assert.Equal(t, pentago.Draw, g.Outcome().State)
}

func TestFullBoardDraw(t *testing.T) {
	b := pentagotest.Board(5,
		"xxxxox",
		"oooxox",
		"oooxoo",
		"xoxxxx",
		"xoxooo",
		"oxoxox",
	)
	o := pentago.CheckWinner(b)
	assert.Equal(t, pentago.InProgress, o.State)
	assert.True(t, pentago.IsDraw(o, b))
	assert.Equal(t, pentago.Outcome{State: pentago.Draw}, b.Outcome())

	b.Set(0, 4, pentago.Empty)
	assert.False(t, pentago.IsDraw(pentago.CheckWinner(b), b))
}

func TestIsDrawNotOnWin(t *testing.T) {
	b := pentagotest.Board(5,
		"xxxxxo",
		"oooxox",
		"oooxoo",
		"xoxxxx",
		"xoxooo",
		"oxoxox",
	)
	o := pentago.CheckWinner(b)
	require.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.White}, o)
	assert.False(t, pentago.IsDraw(o, b))
}

func TestEndToEndRowWin(t *testing.T) {
	g := pentagotest.Game(6, 5,
		"0 0 3 1,5 0 3 1,0 1 3 1,5 1 3 1,0 2 3 -1,5 2 3 -1,0 3 3 1,4 0 3 1")
	require.Equal(t, pentago.InProgress, g.Outcome().State)
	require.Equal(t, pentago.White, g.ToMove())

	require.NoError(t, g.MakeMove(pentagotest.Move("0 4 3 1")))
	assert.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.White},
		pentago.CheckWinner(g.Board()))
	assert.ErrorIs(t, g.MakeMove(pentagotest.Move("2 2 0 1")), pentago.ErrGameOver)
}
