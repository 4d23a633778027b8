package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/pentago/pentago"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in  string
		out pentago.Move
		err bool
	}{
		{"0 1 2 1", pentago.Move{Row: 0, Col: 1, Quadrant: 2, Direction: pentago.Clockwise}, false},
		{"  5\t4 3 -1\n", pentago.Move{Row: 5, Col: 4, Quadrant: 3, Direction: pentago.CounterClockwise}, false},
		// range checks are the rules engine's job
		{"9 9 9 7", pentago.Move{Row: 9, Col: 9, Quadrant: 9, Direction: 7}, false},
		{"0 1 2", pentago.Move{}, true},
		{"0 1 2 1 1", pentago.Move{}, true},
		{"", pentago.Move{}, true},
		{"a b c d", pentago.Move{}, true},
		{"0 1 2 cw", pentago.Move{}, true},
		{"0,1,2,1", pentago.Move{}, true},
	}
	for _, tc := range cases {
		m, err := ParseMove(tc.in)
		if tc.err {
			assert.ErrorIs(t, err, ErrMoveTokens, "in=%q", tc.in)
			continue
		}
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.out, m)
	}
}

func TestFormatMove(t *testing.T) {
	m := pentago.Move{Row: 3, Col: 0, Quadrant: 1, Direction: pentago.CounterClockwise}
	assert.Equal(t, "3 0 1 -1", FormatMove(m))
	back, err := ParseMove(FormatMove(m))
	require.NoError(t, err)
	assert.Equal(t, m, back)
	assert.Equal(t, "row 3, col 0, rotate quadrant 1 counter-clockwise", DescribeMove(m))
}

func TestBoard(t *testing.T) {
	s := "x....o/....../....../...x../....../o....."
	b, err := ParseBoard(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Size())
	assert.Equal(t, 5, b.WinLength())
	assert.Equal(t, pentago.White, b.At(0, 0))
	assert.Equal(t, pentago.Black, b.At(0, 5))
	assert.Equal(t, pentago.White, b.At(3, 3))
	assert.Equal(t, pentago.Black, b.At(5, 0))
	assert.Equal(t, 4, b.Marbles())
	assert.Equal(t, s, FormatBoard(b))
}

func TestBoardErrors(t *testing.T) {
	cases := []string{
		"x..o/....",
		"x..",
		"xo/o",
		"....",
		"..../..../..../...z",
	}
	for _, c := range cases {
		_, err := ParseBoard(c, 0)
		assert.Error(t, err, "in=%q", c)
	}
	_, err := ParseBoard("....../....../....../....../....../......", 7)
	assert.ErrorIs(t, err, pentago.ErrBadWinLength)
}

func TestPosition(t *testing.T) {
	g, err := ParsePosition("..../.x../..o./.... 2", 3)
	require.NoError(t, err)
	assert.Equal(t, pentago.Black, g.ToMove())
	assert.Equal(t, 3, g.Board().WinLength())
	assert.Equal(t, "..../.x../..o./.... 2", FormatPosition(g))

	for _, bad := range []string{"..../..../..../....", "..../..../..../.... 3", "..../..../..../.... x", "../.. 1 1"} {
		_, err := ParsePosition(bad, 0)
		assert.Error(t, err, "in=%q", bad)
	}
}
