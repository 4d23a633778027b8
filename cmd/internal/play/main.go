package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/pentago/cli"
	"github.com/nelhage/pentago/cmd/internal/opt"
	"github.com/nelhage/pentago/notation"
)

type Command struct {
	white string
	black string
	out   string

	unicode bool
	plain   bool

	game opt.Game
	mm   opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Pentago from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Pentago on the command-line, against a human or AI.
Players are "human", "minimax[:DEPTH]" or "rand[:SEED]".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "human", "white player (player #1)")
	flags.StringVar(&c.black, "black", "minimax", "black player (player #2)")
	flags.StringVar(&c.out, "out", "", "write the final position and moves to file")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.plain, "plain", false, "read moves without line editing")
	c.game.AddFlags(flags)
	c.mm.AddFlags(flags)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in cli.LineReader
	if c.white == "human" || c.black == "human" {
		if c.plain {
			in = cli.NewBufioReader(os.Stdout, bufio.NewReader(os.Stdin))
		} else {
			rl, err := readline.NewEx(&readline.Config{
				FuncFilterInputRune: filterInput,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("readline")
			}
			defer rl.Close()
			in = cli.NewReadlineReader(rl)
		}
	}

	white, err := c.parsePlayer(in, c.white, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-white: %v\n", err)
		return subcommands.ExitUsageError
	}
	black, err := c.parsePlayer(in, c.black, 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-black: %v\n", err)
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		Config: c.game.Config(),
		Out:    os.Stdout,
		White:  white,
		Black:  black,
		Glyphs: glyphs(c.unicode),
	}
	g, err := st.Play(ctx)
	if g == nil {
		log.Fatal().Err(err).Msg("start game")
	}
	if err != nil {
		log.Info().Err(err).Int("moves", g.MoveNumber()).Msg("game ended early")
	}
	if c.out != "" {
		var buf strings.Builder
		fmt.Fprintln(&buf, notation.FormatPosition(g))
		for _, m := range g.Moves() {
			fmt.Fprintln(&buf, notation.FormatMove(m))
		}
		if err := os.WriteFile(c.out, []byte(buf.String()), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write game")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in cli.LineReader, s string, salt int64) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	cfg, err := c.mm.BuildConfig()
	if err != nil {
		return nil, err
	}
	f, err := opt.ParsePlayer(s, cfg)
	if err != nil {
		return nil, err
	}
	var seed int64
	if cfg.Seed != 0 {
		seed = cfg.Seed + salt
	}
	return f.NewPlayer(seed), nil
}
