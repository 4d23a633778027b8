package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/pentago/pentago"
)

var ErrMoveTokens = errors.New("move must be four integers: row col quadrant direction")

// ParseMove parses the `row col quadrant direction` encoding used for
// human input, where direction is 1 for clockwise and -1 for
// counter-clockwise. It does not check legality.
func ParseMove(s string) (pentago.Move, error) {
	words := strings.Fields(s)
	if len(words) != 4 {
		return pentago.Move{}, ErrMoveTokens
	}
	var vals [4]int
	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return pentago.Move{}, fmt.Errorf("%w: %q", ErrMoveTokens, w)
		}
		vals[i] = v
	}
	return pentago.Move{
		Row:       vals[0],
		Col:       vals[1],
		Quadrant:  vals[2],
		Direction: pentago.Direction(vals[3]),
	}, nil
}

func FormatMove(m pentago.Move) string {
	return fmt.Sprintf("%d %d %d %d", m.Row, m.Col, m.Quadrant, int(m.Direction))
}

// DescribeMove renders a move for humans.
func DescribeMove(m pentago.Move) string {
	return fmt.Sprintf("row %d, col %d, rotate quadrant %d %s",
		m.Row, m.Col, m.Quadrant, m.Direction)
}
