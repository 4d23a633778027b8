package pentago

import "fmt"

type State byte

const (
	InProgress State = iota
	Win
	Draw
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is derived from a board after each move; it is never stored.
type Outcome struct {
	State  State
	Winner Color
}

func (o Outcome) Over() bool {
	return o.State != InProgress
}

func (o Outcome) String() string {
	if o.State == Win {
		return fmt.Sprintf("%s wins", o.Winner)
	}
	return o.State.String()
}

// hasRun reports whether line holds win consecutive c marbles.
func (b *Board) hasRun(line []int, c Color, win int) bool {
	run := 0
	for _, i := range line {
		if b.cells[i] != c {
			run = 0
			continue
		}
		run++
		if run >= win {
			return true
		}
	}
	return false
}

func (b *Board) hasLine(c Color) bool {
	win := b.WinLength()
	for _, line := range b.g.lines {
		if b.hasRun(line, c, win) {
			return true
		}
	}
	return false
}

// CheckWinner scans every row, column and diagonal for a run of
// WinLength marbles. If both players have one, which a single rotation
// can cause, the result is a draw.
func CheckWinner(b *Board) Outcome {
	white, black := b.hasLine(White), b.hasLine(Black)
	switch {
	case white && black:
		return Outcome{State: Draw}
	case white:
		return Outcome{State: Win, Winner: White}
	case black:
		return Outcome{State: Win, Winner: Black}
	default:
		return Outcome{State: InProgress}
	}
}

// IsDraw reports whether the game is drawn given the outcome of
// CheckWinner: either both players completed a line at once, or nobody
// has and the board is full.
func IsDraw(o Outcome, b *Board) bool {
	switch o.State {
	case Draw:
		return true
	case Win:
		return false
	default:
		return b.Full()
	}
}

// Outcome combines CheckWinner and IsDraw.
func (b *Board) Outcome() Outcome {
	o := CheckWinner(b)
	if o.State == InProgress && b.Full() {
		o.State = Draw
	}
	return o
}
