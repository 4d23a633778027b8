package ai

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

const (
	defaultDepth      = 2
	defaultEarlyDepth = 1
	defaultLargeBoard = 8
)

type MinimaxAI struct {
	cfg  MinimaxConfig
	rand *frand.RNG

	st Stats

	evaluate EvaluationFunc
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64

	Fallback bool
	Elapsed  time.Duration
}

// MinimaxConfig controls the search. Zero fields take their defaults;
// a negative LargeBoard disables the early-game depth reduction.
type MinimaxConfig struct {
	Depth int

	// On boards at least LargeBoard wide holding fewer than
	// EarlyMoves marbles (default: the board size), search only
	// EarlyDepth plies.
	EarlyDepth int
	LargeBoard int
	EarlyMoves int

	Seed  int64
	Debug int

	Evaluate EvaluationFunc
}

type SearchResult struct {
	Score float64
	Move  pentago.Move
	Found bool
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = defaultDepth
	}
	if m.cfg.EarlyDepth <= 0 {
		m.cfg.EarlyDepth = defaultEarlyDepth
	}
	if m.cfg.LargeBoard == 0 {
		m.cfg.LargeBoard = defaultLargeBoard
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	m.rand = newRNG(cfg.Seed)
	return m
}

func (m *MinimaxAI) Config() MinimaxConfig {
	return m.cfg
}

func (m *MinimaxAI) depthFor(b *pentago.Board) int {
	depth := m.cfg.Depth
	if m.cfg.LargeBoard < 0 || b.Size() < m.cfg.LargeBoard {
		return depth
	}
	early := m.cfg.EarlyMoves
	if early <= 0 {
		early = b.Size()
	}
	if b.Marbles() < early && m.cfg.EarlyDepth < depth {
		depth = m.cfg.EarlyDepth
	}
	return depth
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *pentago.Board, me pentago.Color) (pentago.Move, bool) {
	res, _ := m.Analyze(ctx, b, me)
	if res.Found {
		return res.Move, true
	}
	mv, ok := randomMove(m.rand, b)
	if ok {
		m.st.Fallback = true
		if m.cfg.Debug > 0 {
			zerolog.Ctx(ctx).Debug().
				Str("move", notation.FormatMove(mv)).
				Msg("[minimax] no move found, playing at random")
		}
	}
	return mv, ok
}

// Analyze searches b for the best move for me. The board is used as
// scratch space and is restored before Analyze returns.
func (m *MinimaxAI) Analyze(ctx context.Context, b *pentago.Board, me pentago.Color) (SearchResult, Stats) {
	start := time.Now()
	depth := m.depthFor(b)
	m.st = Stats{Depth: depth}
	res := m.minimax(b, me, depth, math.Inf(-1), math.Inf(1), true)
	m.st.Elapsed = time.Since(start)

	if m.cfg.Debug > 0 {
		ev := zerolog.Ctx(ctx).Debug().
			Int("depth", depth).
			Float64("score", res.Score).
			Bool("found", res.Found).
			Uint64("evaluated", m.st.Evaluated).
			Dur("elapsed", m.st.Elapsed)
		if res.Found {
			ev = ev.Str("move", notation.FormatMove(res.Move))
		}
		ev.Msg("[minimax] search")
	}
	if m.cfg.Debug > 1 {
		zerolog.Ctx(ctx).Debug().
			Uint64("visited", m.st.Visited).
			Uint64("terminal", m.st.Terminal).
			Uint64("cut", m.st.CutNodes).
			Msg("[minimax]  stats")
	}
	return res, m.st
}

// Evaluate applies the configured static evaluation to b.
func (m *MinimaxAI) Evaluate(b *pentago.Board, me pentago.Color) float64 {
	return m.evaluate(b, me)
}

func (m *MinimaxAI) Stats() Stats {
	return m.st
}

func (m *MinimaxAI) minimax(
	b *pentago.Board,
	me pentago.Color,
	depth int,
	α, β float64,
	maximizing bool) SearchResult {
	o := pentago.CheckWinner(b)
	switch {
	case o.State == pentago.Draw:
		m.st.Terminal++
		return SearchResult{Score: 0}
	case o.State == pentago.Win || depth == 0:
		if o.Over() {
			m.st.Terminal++
		}
		m.st.Evaluated++
		return SearchResult{Score: m.evaluate(b, me)}
	case b.Full():
		m.st.Terminal++
		return SearchResult{Score: 0}
	}
	m.st.Visited++

	mover := me
	best := SearchResult{Score: math.Inf(-1)}
	if !maximizing {
		mover = me.Flip()
		best.Score = math.Inf(1)
	}

	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.At(row, col) != pentago.Empty {
				continue
			}
			for q := 0; q < pentago.Quadrants; q++ {
				for _, d := range pentago.Directions {
					mv := pentago.Move{Row: row, Col: col, Quadrant: q, Direction: d}
					b.Set(row, col, mover)
					b.RotateQuadrant(q, d)
					child := m.minimax(b, me, depth-1, α, β, !maximizing)
					b.UnmakeMove(mv)

					if maximizing {
						if !best.Found || child.Score > best.Score {
							best = SearchResult{Score: child.Score, Move: mv, Found: true}
						}
						α = math.Max(α, child.Score)
					} else {
						if !best.Found || child.Score < best.Score {
							best = SearchResult{Score: child.Score, Move: mv, Found: true}
						}
						β = math.Min(β, child.Score)
					}
					if β <= α {
						m.st.CutNodes++
						return best
					}
				}
			}
		}
	}
	return best
}
