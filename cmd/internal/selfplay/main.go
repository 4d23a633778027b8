package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nelhage/pentago/cmd/internal/opt"
	"github.com/nelhage/pentago/notation"
)

type Command struct {
	p1   string
	p2   string
	seed int64

	games   int
	cutoff  int
	swap    bool
	threads int

	out     string
	summary string
	verbose bool

	game opt.Game
	mm   opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are "minimax[:DEPTH]" or "rand[:SEED]"; minimax players take
their remaining options from the search flags.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")
	flags.Int64Var(&c.seed, "game-seed", 0, "starting random seed for the games")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies (0: play to the end)")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.out, "out", "", "directory to write games to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.game.AddFlags(flags)
	c.mm.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	mmcfg, err := c.mm.BuildConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("search options")
	}
	p1, err := opt.ParsePlayer(c.p1, mmcfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-p1: %v\n", err)
		return subcommands.ExitUsageError
	}
	p2, err := opt.ParsePlayer(c.p2, mmcfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-p2: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg := &Config{
		Games:     c.games,
		Verbose:   c.verbose,
		P1:        p1,
		P2:        p2,
		Size:      c.game.Size,
		WinLength: c.game.WinLength,
		Swap:      c.swap,
		Threads:   c.threads,
		Seed:      c.seed,
		Cutoff:    c.cutoff,
	}
	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("simulate")
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if err := writeGame(c.out, &st.Games[i]); err != nil {
				log.Error().Err(err).Msg("writing game")
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, p1, p2, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.seed).
		Int("ties", st.Ties).
		Int("cutoff", st.Cutoff).
		Int("white", st.White).
		Int("black", st.Black).
		Dur("elapsed", time.Since(start)).
		Msg("done")
	report(os.Stderr, p1.String(), p2.String(), &st)
	return subcommands.ExitSuccess
}

func report(out io.Writer, p1, p2 string, st *Stats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "p1=%s wins=%d p2=%s wins=%d of %d games\n",
		p1, st.Players[0].Wins, p2, st.Players[1].Wins, st.Count())

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\twhite\tblack\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].WhiteWins, st.Players[0].BlackWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].WhiteWins, st.Players[1].BlackWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	fmt.Fprintf(out, "p[one-sided]=%f\n", binomTest(a, b, 0.5))
}

// binomTest returns the probability of at least succ successes in
// succ+fail trials with success probability p.
func binomTest(succ, fail int64, p float64) float64 {
	n := succ + fail
	if n == 0 || succ == 0 {
		return 1
	}
	d := distuv.Binomial{N: float64(n), P: p}
	return d.Survival(float64(succ - 1))
}

func writeGame(d string, r *Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", notation.FormatPosition(r.Final))
	fmt.Fprintf(&buf, "# player1=%s result=%s\n", r.spec.p1color, r.Outcome)
	for _, m := range r.Final.Moves() {
		fmt.Fprintln(&buf, notation.FormatMove(m))
	}
	return os.WriteFile(path.Join(d, fmt.Sprintf("%d.txt", r.spec.i)), []byte(buf.String()), 0644)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Stats   *Stats
}

func (c *Command) writeSummary(path string, p1, p2 opt.Factory, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: p1.String(),
		Player2: p2.String(),
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
