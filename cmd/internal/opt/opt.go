package opt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nelhage/pentago/ai"
	"github.com/nelhage/pentago/pentago"
)

type Minimax struct {
	ConfigFile string
	Seed       int64
	Debug      int
	Depth      int
	EarlyDepth int
	LargeBoard int
	EarlyMoves int
	Weights    string

	flags *flag.FlagSet
}

// File is the YAML form of the search options. Fields left out of the
// file fall back to the flag values.
type File struct {
	Seed       int64       `yaml:"seed"`
	Debug      int         `yaml:"debug"`
	Depth      int         `yaml:"depth"`
	EarlyDepth int         `yaml:"early_depth"`
	LargeBoard int         `yaml:"large_board"`
	EarlyMoves int         `yaml:"early_moves"`
	Weights    *ai.Weights `yaml:"weights"`
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	o.flags = flags
	flags.StringVar(&o.ConfigFile, "config", "", "YAML file of search options; flags given explicitly take precedence")
	flags.IntVar(&o.Debug, "debug", 1, "debug level")
	flags.Int64Var(&o.Seed, "seed", 0, "specify a seed")
	flags.IntVar(&o.Depth, "depth", 2, "minimax depth")
	flags.IntVar(&o.EarlyDepth, "early-depth", 1, "minimax depth early in the game on large boards")
	flags.IntVar(&o.LargeBoard, "large-board", 8, "smallest board size that searches shallower early on (-1 to disable)")
	flags.IntVar(&o.EarlyMoves, "early-moves", 0, "marbles on the board before the full depth is used (0: the board size)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func pick[T comparable](set bool, flagVal, fileVal T) T {
	var zero T
	if set || fileVal == zero {
		return flagVal
	}
	return fileVal
}

func (o *Minimax) BuildConfig() (ai.MinimaxConfig, error) {
	var f File
	if o.ConfigFile != "" {
		loaded, err := LoadFile(o.ConfigFile)
		if err != nil {
			return ai.MinimaxConfig{}, err
		}
		f = *loaded
	}
	set := make(map[string]bool)
	if o.flags != nil {
		o.flags.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	}

	w, err := o.weights(&f)
	if err != nil {
		return ai.MinimaxConfig{}, err
	}

	return ai.MinimaxConfig{
		Seed:       pick(set["seed"], o.Seed, f.Seed),
		Debug:      pick(set["debug"], o.Debug, f.Debug),
		Depth:      pick(set["depth"], o.Depth, f.Depth),
		EarlyDepth: pick(set["early-depth"], o.EarlyDepth, f.EarlyDepth),
		LargeBoard: pick(set["large-board"], o.LargeBoard, f.LargeBoard),
		EarlyMoves: pick(set["early-moves"], o.EarlyMoves, f.EarlyMoves),

		Evaluate: ai.MakeEvaluator(&w),
	}, nil
}

// BuildWeights returns the evaluation weights BuildConfig would use.
func (o *Minimax) BuildWeights() (ai.Weights, error) {
	var f File
	if o.ConfigFile != "" {
		loaded, err := LoadFile(o.ConfigFile)
		if err != nil {
			return ai.Weights{}, err
		}
		f = *loaded
	}
	return o.weights(&f)
}

func (o *Minimax) weights(f *File) (ai.Weights, error) {
	w := ai.DefaultWeights
	switch {
	case o.Weights != "":
		if err := json.Unmarshal([]byte(o.Weights), &w); err != nil {
			return ai.Weights{}, fmt.Errorf("parse weights: %w", err)
		}
	case f.Weights != nil:
		w = *f.Weights
	}
	return w, nil
}

type Game struct {
	Size      int
	WinLength int
}

func (g *Game) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&g.Size, "size", 6, "board size")
	flags.IntVar(&g.WinLength, "win-length", 0, "marbles in a row needed to win (0: size-1 on boards of 6 or more, else size)")
}

func (g *Game) Config() pentago.Config {
	return pentago.Config{Size: g.Size, WinLength: g.WinLength}
}
