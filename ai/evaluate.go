package ai

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/nelhage/pentago/pentago"
)

// Weights are the bases of the window scores: an uncontested window
// holding n of a player's marbles is worth Reward^n to them, and a
// window holding only n opponent marbles costs them Penalty^n.
type Weights struct {
	Reward  float64 `json:"reward" yaml:"reward"`
	Penalty float64 `json:"penalty" yaml:"penalty"`
}

var DefaultWeights = Weights{
	Reward:  10,
	Penalty: 5,
}

// EvaluationFunc scores b from me's point of view. It must not modify
// the board.
type EvaluationFunc func(b *pentago.Board, me pentago.Color) float64

func MakeEvaluator(w *Weights) EvaluationFunc {
	return func(b *pentago.Board, me pentago.Color) float64 {
		return evaluate(w, b, me)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

// Evaluate scores b for me with the default weights.
func Evaluate(b *pentago.Board, me pentago.Color) float64 {
	return DefaultEvaluate(b, me)
}

func evaluate(w *Weights, b *pentago.Board, me pentago.Color) float64 {
	if o := pentago.CheckWinner(b); o.State == pentago.Win {
		if o.Winner == me {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return windowScore(w, b, me) - windowScore(w, b, me.Flip())
}

func windowScore(w *Weights, b *pentago.Board, c pentago.Color) float64 {
	var score float64
	eachWindow(b, c, func(own, theirs int) {
		switch {
		case theirs == 0:
			score += math.Pow(w.Reward, float64(own))
		case own == 0:
			score -= math.Pow(w.Penalty, float64(theirs))
		}
	})
	return score
}

// eachWindow slides a WinLength window along every line of b, calling
// fn with the number of c's marbles and of the opponent's marbles in
// each window.
func eachWindow(b *pentago.Board, c pentago.Color, fn func(own, theirs int)) {
	win := b.WinLength()
	opp := c.Flip()
	for _, line := range b.Lines() {
		own, theirs := 0, 0
		for i, idx := range line {
			switch b.Cell(idx) {
			case c:
				own++
			case opp:
				theirs++
			}
			if i >= win {
				switch b.Cell(line[i-win]) {
				case c:
					own--
				case opp:
					theirs--
				}
			}
			if i >= win-1 {
				fn(own, theirs)
			}
		}
	}
}

type windowTally struct {
	open    []int
	blocked []int
	mixed   int
	score   float64
}

func tally(w *Weights, b *pentago.Board, c pentago.Color) windowTally {
	t := windowTally{
		open:    make([]int, b.WinLength()+1),
		blocked: make([]int, b.WinLength()+1),
	}
	eachWindow(b, c, func(own, theirs int) {
		switch {
		case theirs == 0:
			t.open[own]++
		case own == 0:
			t.blocked[theirs]++
		default:
			t.mixed++
		}
	})
	t.score = windowScore(w, b, c)
	return t
}

// ExplainScore writes a per-player breakdown of the windows behind the
// evaluation of b.
func ExplainScore(w *Weights, out io.Writer, b *pentago.Board) {
	if w == nil {
		w = &DefaultWeights
	}
	white := tally(w, b, pentago.White)
	black := tally(w, b, pentago.Black)

	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\twhite\tblack\n")
	for n := 1; n <= b.WinLength(); n++ {
		fmt.Fprintf(tw, "open%d\t%d\t%d\n", n, white.open[n], black.open[n])
	}
	for n := 1; n <= b.WinLength(); n++ {
		fmt.Fprintf(tw, "threat%d\t%d\t%d\n", n, white.blocked[n], black.blocked[n])
	}
	fmt.Fprintf(tw, "mixed\t%d\t%d\n", white.mixed, black.mixed)
	fmt.Fprintf(tw, "score\t%g\t%g\n", white.score, black.score)
	tw.Flush()
	fmt.Fprintf(out, "eval(white)=%g\n", evaluate(w, b, pentago.White))
}
