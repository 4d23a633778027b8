package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

var ErrAborted = errors.New("player abandoned the game")

type Player interface {
	GetMove(ctx context.Context, b *pentago.Board, me pentago.Color) (pentago.Move, bool)
}

type Glyphs struct {
	White, Black, Empty string
}

type CLI struct {
	g *pentago.Game

	Config pentago.Config
	Glyphs *Glyphs
	Out    io.Writer
	White  Player
	Black  Player
}

var DefaultGlyphs = Glyphs{
	White: "x",
	Black: "o",
	Empty: ".",
}

var UnicodeGlyphs = Glyphs{
	White: "●",
	Black: "○",
	Empty: "·",
}

// Play runs a game between c.White and c.Black until someone wins, the
// game is drawn, or a player stops answering with moves.
func (c *CLI) Play(ctx context.Context) (*pentago.Game, error) {
	g, err := pentago.NewGame(c.Config)
	if err != nil {
		return nil, err
	}
	c.g = g
	for {
		c.render()
		player := c.White
		if g.ToMove() == pentago.Black {
			player = c.Black
		}
		m, ok := player.GetMove(ctx, g.Board(), g.ToMove())
		if !ok {
			return g, ErrAborted
		}
		who := g.ToMove()
		if e := g.MakeMove(m); e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		fmt.Fprintf(c.Out, "%d. Player #%d (%s): %s\n",
			g.MoveNumber(), who.Number(), who, notation.DescribeMove(m))

		if o := g.Outcome(); o.Over() {
			c.render()
			switch {
			case o.State == pentago.Win:
				fmt.Fprintf(c.Out, "Player #%d wins!\n", o.Winner.Number())
			case g.Board().Full():
				fmt.Fprintln(c.Out, "There's no legal move on board!")
				fallthrough
			default:
				fmt.Fprintln(c.Out, "This game is a draw!")
			}
			return g, nil
		}
	}
}

func (c *CLI) Game() *pentago.Game {
	return c.g
}

func (c *CLI) render() {
	fmt.Fprintln(c.Out)
	if !c.g.Outcome().Over() {
		fmt.Fprintf(c.Out, "[%s to play]\n", c.g.ToMove())
	}
	RenderBoard(c.Glyphs, c.Out, c.g.Board())
}

func (g *Glyphs) glyph(c pentago.Color) string {
	switch c {
	case pentago.White:
		return g.White
	case pentago.Black:
		return g.Black
	case pentago.Empty:
		return g.Empty
	default:
		panic(fmt.Sprintf("bad color %d", c))
	}
}

// RenderBoard draws b with row and column indices, separating the
// quadrants with rules.
func RenderBoard(g *Glyphs, out io.Writer, b *pentago.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	q := b.QuadrantSize()
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.Size(); col++ {
		if col == q {
			fmt.Fprintf(w, "\t")
		}
		fmt.Fprintf(w, "%d\t", col)
	}
	fmt.Fprintf(w, "\n")
	for row := 0; row < b.Size(); row++ {
		if row == q {
			fmt.Fprintf(w, "\t")
			for col := 0; col < b.Size(); col++ {
				if col == q {
					fmt.Fprintf(w, "+\t")
				}
				fmt.Fprintf(w, "-\t")
			}
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "%d\t", row)
		for col := 0; col < b.Size(); col++ {
			if col == q {
				fmt.Fprintf(w, "|\t")
			}
			fmt.Fprintf(w, "%s\t", g.glyph(b.At(row, col)))
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	fmt.Fprintf(out, "marbles: %s:%d %s:%d\n",
		g.White, b.Count(pentago.White),
		g.Black, b.Count(pentago.Black))
}
