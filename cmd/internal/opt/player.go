package opt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/pentago/ai"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Factory builds a fresh computer player for every game, so games
// running in parallel never share search state.
type Factory interface {
	NewPlayer(seed int64) ai.PentagoPlayer
	String() string
}

type minimaxFactory struct {
	cfg ai.MinimaxConfig
}

func (m *minimaxFactory) NewPlayer(seed int64) ai.PentagoPlayer {
	cfg := m.cfg
	if cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return ai.NewMinimax(cfg)
}

func (m *minimaxFactory) String() string {
	return fmt.Sprintf("minimax@%d", m.cfg.Depth)
}

type randomFactory struct {
	seed int64
}

func (r *randomFactory) NewPlayer(seed int64) ai.PentagoPlayer {
	if r.seed != 0 {
		seed = r.seed
	}
	return ai.NewRandom(seed)
}

func (r *randomFactory) String() string {
	if r.seed != 0 {
		return fmt.Sprintf("rand:%d", r.seed)
	}
	return "rand"
}

// ParsePlayer parses a computer player spec: "minimax", "minimax:DEPTH",
// "rand" or "rand:SEED". Minimax players start from base.
func ParsePlayer(s string, base ai.MinimaxConfig) (Factory, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	var n int64
	if hasArg {
		var err error
		n, err = strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", s, err)
		}
	}
	switch name {
	case "minimax":
		cfg := base
		if hasArg {
			cfg.Depth = int(n)
		}
		return &minimaxFactory{cfg}, nil
	case "rand":
		return &randomFactory{n}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
	}
}
