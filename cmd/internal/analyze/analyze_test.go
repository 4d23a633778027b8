package analyze

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/pentago/ai"
	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

const threat = "xxxx../....../....../....../....o./oo...o 1"

func TestMinimaxAnalysis(t *testing.T) {
	g, err := notation.ParsePosition(threat, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	a := newMinimaxAnalysis(&Command{explain: true}, ai.MinimaxConfig{Seed: 1}, nil)
	a.out = &out
	require.NoError(t, a.Analyze(context.Background(), g))

	s := out.String()
	assert.Contains(t, s, "[white to play]")
	assert.Contains(t, s, "move=0 4 2 1 (row 0, col 4, rotate quadrant 2 clockwise)")
	assert.Contains(t, s, "value=+Inf depth=2")
	assert.Contains(t, s, "Resulting position:")
	assert.Contains(t, s, "eval(white)=+Inf")
	assert.Equal(t, pentago.Outcome{State: pentago.Win, Winner: pentago.White}, g.Outcome())
}

func TestStaticEvaluation(t *testing.T) {
	g, err := notation.ParsePosition("x.../..../..../.... 1", 0)
	require.NoError(t, err)
	var out bytes.Buffer
	a := newMinimaxAnalysis(&Command{eval: true, quiet: true}, ai.MinimaxConfig{}, nil)
	a.out = &out
	require.NoError(t, a.Analyze(context.Background(), g))
	assert.Equal(t, " value=45\n", out.String())
}

func TestApplyVariation(t *testing.T) {
	g, err := notation.ParsePosition("....../....../....../....../....../...... 1", 0)
	require.NoError(t, err)
	require.NoError(t, applyVariation(g, "0 0 3 1, 5 5 0 -1"))
	assert.Equal(t, 2, g.MoveNumber())
	assert.Equal(t, pentago.White, g.ToMove())

	assert.ErrorIs(t, applyVariation(g, "2 0 1 1"), pentago.ErrOccupied)
	assert.ErrorIs(t, applyVariation(g, "0 0 1"), notation.ErrMoveTokens)
}

func TestFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte(threat+"\n0 0 3 1\n"), 0644))
	line, err := firstLine(path)
	require.NoError(t, err)
	assert.Equal(t, threat, line)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = firstLine(empty)
	assert.Error(t, err)
}
