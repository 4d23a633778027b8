package ai

import (
	"context"

	"github.com/nelhage/pentago/pentago"
)

// PentagoPlayer chooses a move for me on b. It returns false only if b
// has no empty cell left. Implementations may use b as scratch space but
// must leave it as they found it.
type PentagoPlayer interface {
	GetMove(ctx context.Context, b *pentago.Board, me pentago.Color) (pentago.Move, bool)
}
