package analyze

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/pentago/ai"
	"github.com/nelhage/pentago/analysis"
	"github.com/nelhage/pentago/cli"
	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

type Analyzer interface {
	Analyze(ctx context.Context, g *pentago.Game) error
}

type minimaxAnalysis struct {
	cmd     *Command
	out     io.Writer
	ai      *ai.MinimaxAI
	weights *ai.Weights
}

func newMinimaxAnalysis(c *Command, cfg ai.MinimaxConfig, w *ai.Weights) *minimaxAnalysis {
	return &minimaxAnalysis{cmd: c, out: os.Stdout, ai: ai.NewMinimax(cfg), weights: w}
}

func (c *Command) glyphs() *cli.Glyphs {
	if c.unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) render(out io.Writer, g *pentago.Game) {
	if c.quiet {
		return
	}
	fmt.Fprintf(out, "[%s to play]\n", g.ToMove())
	cli.RenderBoard(c.glyphs(), out, g.Board())
}

func (m *minimaxAnalysis) Analyze(ctx context.Context, g *pentago.Game) error {
	p := message.NewPrinter(language.English)
	m.cmd.render(m.out, g)
	if m.cmd.explain {
		ai.ExplainScore(m.weights, m.out, g.Board())
	}
	if m.cmd.eval {
		fmt.Fprintf(m.out, " value=%g\n", m.ai.Evaluate(g.Board(), g.ToMove()))
		return nil
	}
	if o := g.Outcome(); o.Over() {
		fmt.Fprintf(m.out, "game over: %s\n", o)
		return nil
	}

	res, st := m.ai.Analyze(ctx, g.Board(), g.ToMove())
	fmt.Fprintf(m.out, "AI analysis:\n")
	if res.Found {
		fmt.Fprintf(m.out, " move=%s (%s)\n", notation.FormatMove(res.Move), notation.DescribeMove(res.Move))
	} else {
		fmt.Fprintf(m.out, " move=(none)\n")
	}
	fmt.Fprintf(m.out, " value=%g depth=%d\n", res.Score, st.Depth)
	p.Fprintf(m.out, " visited=%d evaluated=%d terminal=%d cut=%d time=%s\n",
		st.Visited, st.Evaluated, st.Terminal, st.CutNodes, st.Elapsed)
	fmt.Fprintln(m.out)

	if !res.Found || m.cmd.quiet {
		return nil
	}
	if err := g.MakeMove(res.Move); err != nil {
		return fmt.Errorf("illegal move from search: %s: %w", notation.FormatMove(res.Move), err)
	}
	fmt.Fprintln(m.out, "Resulting position:")
	m.cmd.render(m.out, g)
	if m.cmd.explain {
		ai.ExplainScore(m.weights, m.out, g.Board())
	}
	fmt.Fprintln(m.out)
	return nil
}

type remoteAnalysis struct {
	cmd    *Command
	client *analysis.Client
	depth  int
}

func (r *remoteAnalysis) Analyze(ctx context.Context, g *pentago.Game) error {
	r.cmd.render(os.Stdout, g)
	resp, err := r.client.Analyze(ctx, analysis.Request{
		Board:     notation.FormatBoard(g.Board()),
		Player:    g.ToMove(),
		WinLength: g.Board().WinLength(),
		Depth:     r.depth,
	})
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	fmt.Printf("Remote analysis:\n")
	if resp.Found {
		fmt.Printf(" move=%s\n", resp.Move)
	} else {
		fmt.Printf(" move=(none)\n")
	}
	p.Printf(" value=%g evaluated=%d\n", resp.Score, resp.Evaluated)
	return nil
}
