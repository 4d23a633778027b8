package selfplay

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/pentago/cmd/internal/opt"
	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 opt.Factory

	Size      int
	WinLength int

	Swap    bool
	Threads int
	Seed    int64
	// Cutoff stops games after this many plies; zero plays them out.
	Cutoff int
}

type PlayerStats struct {
	Wins      int
	WhiteWins int
	BlackWins int
}

type Stats struct {
	Players      [2]PlayerStats
	White, Black int
	Ties         int
	Cutoff       int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Ties + s.Cutoff
}

type gameSpec struct {
	i       int
	seed    int64
	p1color pentago.Color
}

type Result struct {
	spec    gameSpec
	Final   *pentago.Game
	Outcome pentago.Outcome
}

func (s *Stats) add(r *Result) {
	switch {
	case r.Outcome.State == pentago.Win && r.Outcome.Winner == pentago.White:
		s.White++
	case r.Outcome.State == pentago.Win:
		s.Black++
	case r.Outcome.State == pentago.Draw:
		s.Ties++
	default:
		s.Cutoff++
	}
	if r.Outcome.State != pentago.Win {
		return
	}
	pst := &s.Players[0]
	if r.Outcome.Winner != r.spec.p1color {
		pst = &s.Players[1]
	}
	if r.Outcome.Winner == pentago.White {
		pst.WhiteWins++
	} else {
		pst.BlackWins++
	}
	pst.Wins++
}

// Simulate plays c.Games games (twice as many with c.Swap) between
// c.P1 and c.P2 on up to c.Threads goroutines. Results are tallied in
// game order, so a fixed seed gives the same Stats.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	n := c.Games
	if c.Swap {
		n *= 2
	}
	threads := c.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make([]Result, n)
	var eg errgroup.Group
	eg.SetLimit(threads)
	for i := 0; i < n; i++ {
		spec := gameSpec{
			i:       i,
			seed:    c.Seed + int64(i) + 1,
			p1color: pentago.White,
		}
		if c.Swap && i%2 == 1 {
			spec.p1color = pentago.Black
		}
		eg.Go(func() error {
			r, err := playGame(ctx, c, spec)
			if err != nil {
				return err
			}
			results[spec.i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}

	var st Stats
	for i := range results {
		r := &results[i]
		if c.Verbose {
			zerolog.Ctx(ctx).Info().
				Int("game", r.spec.i).
				Int("plies", r.Final.MoveNumber()).
				Stringer("p1", r.spec.p1color).
				Stringer("result", r.Outcome).
				Msg("game")
		}
		st.add(r)
	}
	st.Games = results
	return st, nil
}

func playGame(ctx context.Context, c *Config, spec gameSpec) (Result, error) {
	g, err := pentago.NewGame(pentago.Config{Size: c.Size, WinLength: c.WinLength})
	if err != nil {
		return Result{}, err
	}
	white := c.P1.NewPlayer(spec.seed)
	black := c.P2.NewPlayer(-spec.seed)
	if spec.p1color != pentago.White {
		white, black = black, white
	}

	for c.Cutoff == 0 || g.MoveNumber() < c.Cutoff {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		player := white
		if g.ToMove() == pentago.Black {
			player = black
		}
		m, ok := player.GetMove(ctx, g.Board(), g.ToMove())
		if !ok {
			break
		}
		if err := g.MakeMove(m); err != nil {
			return Result{}, fmt.Errorf("game %d: illegal move %s: %w", spec.i, notation.FormatMove(m), err)
		}
		if g.Outcome().Over() {
			break
		}
	}
	return Result{
		spec:    spec,
		Final:   g,
		Outcome: g.Outcome(),
	}, nil
}
