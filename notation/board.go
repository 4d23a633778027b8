package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/nelhage/pentago/pentago"
)

const (
	whiteChar = 'x'
	blackChar = 'o'
	emptyChar = '.'
)

func cellChar(c pentago.Color) byte {
	switch c {
	case pentago.White:
		return whiteChar
	case pentago.Black:
		return blackChar
	default:
		return emptyChar
	}
}

// ParseBoard parses rows from top to bottom separated by `/`, one
// character per cell: `x` for white, `o` for black and `.` for an empty
// cell. A zero winLength selects the default for the board size.
func ParseBoard(s string, winLength int) (*pentago.Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	b, err := pentago.New(pentago.Config{Size: len(rows), WinLength: winLength})
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d bad length: %d", r, len(row))
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case whiteChar:
				b.Set(r, c, pentago.White)
			case blackChar:
				b.Set(r, c, pentago.Black)
			case emptyChar:
			default:
				return nil, fmt.Errorf("row %d: bad cell %q", r, row[c])
			}
		}
	}
	return b, nil
}

func FormatBoard(b *pentago.Board) string {
	rows := lo.Times(b.Size(), func(r int) string {
		row := make([]byte, b.Size())
		for c := range row {
			row[c] = cellChar(b.At(r, c))
		}
		return string(row)
	})
	return strings.Join(rows, "/")
}

// ParsePosition parses a board followed by the player on turn, 1 or 2.
func ParsePosition(s string, winLength int) (*pentago.Game, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, fmt.Errorf("bad position %q: want `board turn`", s)
	}
	b, err := ParseBoard(words[0], winLength)
	if err != nil {
		return nil, err
	}
	turn, err := strconv.Atoi(words[1])
	if err != nil || (turn != 1 && turn != 2) {
		return nil, fmt.Errorf("bad turn: %s", words[1])
	}
	toMove := pentago.White
	if turn == 2 {
		toMove = pentago.Black
	}
	return pentago.FromBoard(b, toMove), nil
}

func FormatPosition(g *pentago.Game) string {
	return fmt.Sprintf("%s %d", FormatBoard(g.Board()), g.ToMove().Number())
}
