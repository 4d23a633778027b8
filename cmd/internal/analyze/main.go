package analyze

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/pentago/analysis"
	"github.com/nelhage/pentago/cmd/internal/opt"
	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

type Command struct {
	/* Options to select the position to analyze */
	file      string
	winLength int
	variation string

	/* Output options */
	quiet   bool
	unicode bool

	/* Options for the minimax engine */
	eval    bool
	explain bool
	remote  string
	mmopt   opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position" }
func (*Command) Usage() string {
	return `analyze [options] [POSITION]

Evaluate a position, given as "BOARD TURN" (for example
"x..../....../....../....../....../...... 2"), or read from the
first line of the file named by -file.

Use -variation to play additional moves prior to analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.file, "file", "", "read the position from the first line of FILE")
	flags.IntVar(&c.winLength, "win-length", 0, "marbles in a row needed to win (0: default for the board size)")
	flags.StringVar(&c.variation, "variation", "", "apply the listed comma-separated moves after the given position")

	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")

	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.StringVar(&c.remote, "remote", "", "analyze on the Analyzer server at ADDR instead of locally")
	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(flag.Args(), " ")
	if c.file != "" {
		var err error
		text, err = firstLine(c.file)
		if err != nil {
			log.Fatal().Err(err).Msg("read position")
		}
	}
	if text == "" {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	g, err := notation.ParsePosition(text, c.winLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse position: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.variation != "" {
		if err := applyVariation(g, c.variation); err != nil {
			fmt.Fprintf(os.Stderr, "-variation: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	a, err := c.buildAnalysis()
	if err != nil {
		log.Fatal().Err(err).Msg("configure analysis")
	}
	if err := a.Analyze(ctx, g); err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r := bufio.NewScanner(f)
	if !r.Scan() {
		if err := r.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%s: empty file", path)
	}
	return r.Text(), nil
}

func applyVariation(g *pentago.Game, variant string) error {
	for _, moveStr := range strings.Split(variant, ",") {
		m, e := notation.ParseMove(moveStr)
		if e != nil {
			return e
		}
		if e := g.MakeMove(m); e != nil {
			return fmt.Errorf("bad move `%s': %w", strings.TrimSpace(moveStr), e)
		}
	}
	return nil
}

func (c *Command) buildAnalysis() (Analyzer, error) {
	cfg, err := c.mmopt.BuildConfig()
	if err != nil {
		return nil, err
	}
	if c.remote != "" {
		conn, err := analysis.Dial(c.remote)
		if err != nil {
			return nil, err
		}
		return &remoteAnalysis{
			cmd:    c,
			client: analysis.NewClient(conn),
			depth:  cfg.Depth,
		}, nil
	}
	w, err := c.mmopt.BuildWeights()
	if err != nil {
		return nil, err
	}
	return newMinimaxAnalysis(c, cfg, &w), nil
}
