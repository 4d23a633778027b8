package selfplay

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/pentago/ai"
	"github.com/nelhage/pentago/cmd/internal/opt"
	"github.com/nelhage/pentago/pentago"
)

func factory(t *testing.T, s string) opt.Factory {
	f, err := opt.ParsePlayer(s, ai.MinimaxConfig{Depth: 1})
	require.NoError(t, err)
	return f
}

func TestSimulate(t *testing.T) {
	cfg := &Config{
		Games:   4,
		P1:      factory(t, "rand"),
		P2:      factory(t, "rand"),
		Size:    4,
		Swap:    true,
		Threads: 3,
		Seed:    11,
	}
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, st.Count())
	assert.Len(t, st.Games, 8)
	assert.Equal(t, st.White+st.Black, st.Players[0].Wins+st.Players[1].Wins)
	assert.Zero(t, st.Cutoff)
	for i, r := range st.Games {
		assert.True(t, r.Outcome.Over(), "game %d", i)
		if i%2 == 1 {
			assert.Equal(t, pentago.Black, r.spec.p1color)
		}
	}

	again, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, st.Players, again.Players)
	assert.Equal(t, st.Ties, again.Ties)
}

func TestSimulateCutoff(t *testing.T) {
	cfg := &Config{
		Games:   3,
		P1:      factory(t, "minimax"),
		P2:      factory(t, "rand:5"),
		Size:    4,
		Threads: 2,
		Cutoff:  2,
	}
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Cutoff)
	for _, r := range st.Games {
		assert.Equal(t, 2, r.Final.MoveNumber())
	}
}

func TestSimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simulate(ctx, &Config{
		Games: 1,
		P1:    factory(t, "rand"),
		P2:    factory(t, "rand"),
		Size:  4,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBinomTest(t *testing.T) {
	assert.InDelta(t, 1.0/1024, binomTest(10, 0, 0.5), 1e-12)
	assert.InDelta(t, 638.0/1024, binomTest(5, 5, 0.5), 1e-9)
	assert.Equal(t, 1.0, binomTest(0, 0, 0.5))
}

func TestReportAndSummary(t *testing.T) {
	st := Stats{White: 3, Black: 1}
	st.Players[0] = PlayerStats{Wins: 3, WhiteWins: 2, BlackWins: 1}
	st.Players[1] = PlayerStats{Wins: 1, WhiteWins: 1}

	var out bytes.Buffer
	report(&out, "minimax@2", "rand", &st)
	assert.Contains(t, out.String(), "p1=minimax@2 wins=3 p2=rand wins=1 of 4 games")
	assert.Contains(t, out.String(), "p[one-sided]=0.312500")

	path := filepath.Join(t.TempDir(), "summary.json")
	c := &Command{}
	require.NoError(t, c.writeSummary(path, factory(t, "minimax"), factory(t, "rand"), &st))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var s Summary
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, "minimax@1", s.Player1)
	assert.Equal(t, 3, s.Stats.White)
}
