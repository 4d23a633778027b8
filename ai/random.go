package ai

import (
	"context"
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/nelhage/pentago/pentago"
)

type RandomAI struct {
	r *frand.RNG
}

func (r *RandomAI) GetMove(ctx context.Context, b *pentago.Board, me pentago.Color) (pentago.Move, bool) {
	return randomMove(r.r, b)
}

// NewRandom returns a player that picks uniformly among the legal
// moves. A zero seed draws one from the system entropy source.
func NewRandom(seed int64) *RandomAI {
	return &RandomAI{r: newRNG(seed)}
}

func newRNG(seed int64) *frand.RNG {
	var key [32]byte
	if seed == 0 {
		frand.Read(key[:])
	} else {
		binary.LittleEndian.PutUint64(key[:], uint64(seed))
	}
	return frand.NewCustom(key[:], 1024, 12)
}

func randomMove(r *frand.RNG, b *pentago.Board) (pentago.Move, bool) {
	empty := b.EmptyPositions()
	if len(empty) == 0 {
		return pentago.Move{}, false
	}
	sq := empty[r.Intn(len(empty))]
	return pentago.Move{
		Row:       sq.Row,
		Col:       sq.Col,
		Quadrant:  r.Intn(pentago.Quadrants),
		Direction: pentago.Directions[r.Intn(len(pentago.Directions))],
	}, true
}
