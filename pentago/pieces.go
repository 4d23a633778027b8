package pentago

import "fmt"

// Color identifies a player, and doubles as the contents of a cell.
// The numeric values match the player ids used in move logs: White is
// player 1 and moves first, Black is player -1.
type Color int8

const (
	White   Color = 1
	Black   Color = -1
	NoColor Color = 0

	Empty = NoColor
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %d", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White, Black, NoColor:
		return -c
	default:
		panic(fmt.Sprintf("bad color: %d", int(c)))
	}
}

// Number is the 1-based player number, for display.
func (c Color) Number() int {
	switch c {
	case White:
		return 1
	case Black:
		return 2
	}
	return 0
}
