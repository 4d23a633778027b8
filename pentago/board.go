package pentago

import (
	"errors"
	"fmt"
)

type Config struct {
	Size         int
	QuadrantSize int
	WinLength    int
}

var (
	ErrBadSize         = errors.New("board size must be positive and even")
	ErrBadQuadrantSize = errors.New("quadrant size must be half the board size")
	ErrBadWinLength    = errors.New("win length must be between 1 and the board size")
)

// DefaultWinLength is the line length needed to win on a board of the
// given size when the config does not specify one: five on the
// standard 6x6 board.
func DefaultWinLength(size int) int {
	if size >= 6 {
		return size - 1
	}
	return size
}

func (c *Config) validate() error {
	if c.Size <= 0 || c.Size%2 != 0 {
		return fmt.Errorf("size %d: %w", c.Size, ErrBadSize)
	}
	if c.QuadrantSize == 0 {
		c.QuadrantSize = c.Size / 2
	}
	if c.QuadrantSize*2 != c.Size {
		return fmt.Errorf("quadrant size %d: %w", c.QuadrantSize, ErrBadQuadrantSize)
	}
	if c.WinLength == 0 {
		c.WinLength = DefaultWinLength(c.Size)
	}
	if c.WinLength < 1 || c.WinLength > c.Size {
		return fmt.Errorf("win length %d: %w", c.WinLength, ErrBadWinLength)
	}
	return nil
}

// Square is a (row, col) coordinate on the board.
type Square struct {
	Row, Col int
}

type geometry struct {
	cfg     Config
	origins [4]Square
	lines   [][]int
}

// Board is a Pentago grid. Cells are stored row-major.
//
// A Board is a single mutable buffer; the search engine mutates it in
// place and restores it before returning, so it must not be shared
// between goroutines.
type Board struct {
	g       *geometry
	cells   []Color
	scratch []Color
}

func New(cfg Config) (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &geometry{cfg: cfg}
	q := cfg.QuadrantSize
	g.origins = [4]Square{{0, 0}, {0, q}, {q, 0}, {q, q}}
	g.lines = computeLines(cfg.Size, cfg.WinLength)
	return &Board{
		g:       g,
		cells:   make([]Color, cfg.Size*cfg.Size),
		scratch: make([]Color, q*q),
	}, nil
}

// MustNew is like New but panics on a bad config.
func MustNew(cfg Config) *Board {
	b, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Config() Config {
	return b.g.cfg
}

func (b *Board) Size() int {
	return b.g.cfg.Size
}

func (b *Board) QuadrantSize() int {
	return b.g.cfg.QuadrantSize
}

func (b *Board) WinLength() int {
	return b.g.cfg.WinLength
}

// QuadrantOrigin returns the top-left cell of quadrant q.
func (b *Board) QuadrantOrigin(q int) Square {
	return b.g.origins[q]
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size() && col >= 0 && col < b.Size()
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("square (%d,%d) out of range for size %d", row, col, b.Size()))
	}
	return row*b.Size() + col
}

func (b *Board) At(row, col int) Color {
	return b.cells[b.index(row, col)]
}

// Set writes a cell unconditionally. Callers are responsible for
// legality.
func (b *Board) Set(row, col int, c Color) {
	b.cells[b.index(row, col)] = c
}

// RotateQuadrant rotates quadrant q by 90 degrees in direction d. It
// returns false, leaving the board untouched, if either argument is
// invalid.
func (b *Board) RotateQuadrant(q int, d Direction) bool {
	if q < 0 || q >= len(b.g.origins) || !d.Valid() {
		return false
	}
	n := b.QuadrantSize()
	size := b.Size()
	o := b.g.origins[q]
	base := o.Row*size + o.Col
	for r := 0; r < n; r++ {
		copy(b.scratch[r*n:(r+1)*n], b.cells[base+r*size:base+r*size+n])
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var src Color
			if d == Clockwise {
				src = b.scratch[(n-1-c)*n+r]
			} else {
				src = b.scratch[c*n+(n-1-r)]
			}
			b.cells[base+r*size+c] = src
		}
	}
	return true
}

// EmptyPositions lists every empty cell in row-major order.
func (b *Board) EmptyPositions() []Square {
	var out []Square
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, Square{i / b.Size(), i % b.Size()})
		}
	}
	return out
}

func (b *Board) Count(c Color) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Marbles counts the marbles of both colors on the board.
func (b *Board) Marbles() int {
	return len(b.cells) - b.Count(Empty)
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Clone returns an independent copy sharing the immutable geometry.
func (b *Board) Clone() *Board {
	out := &Board{
		g:       b.g,
		cells:   make([]Color, len(b.cells)),
		scratch: make([]Color, len(b.scratch)),
	}
	copy(out.cells, b.cells)
	return out
}

func (b *Board) Equal(o *Board) bool {
	if b.g.cfg != o.g.cfg {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Lines returns every row, column and diagonal long enough to hold a
// winning line, as slices of row-major cell indices. The result is
// shared and must not be modified.
func (b *Board) Lines() [][]int {
	return b.g.lines
}

// Cell reads a cell by row-major index, as returned by Lines.
func (b *Board) Cell(i int) Color {
	return b.cells[i]
}

func computeLines(size, win int) [][]int {
	var lines [][]int
	for r := 0; r < size; r++ {
		line := make([]int, size)
		for c := 0; c < size; c++ {
			line[c] = r*size + c
		}
		lines = append(lines, line)
	}
	for c := 0; c < size; c++ {
		line := make([]int, size)
		for r := 0; r < size; r++ {
			line[r] = r*size + c
		}
		lines = append(lines, line)
	}

	diagonal := func(r, c, dc int) {
		var line []int
		for r < size && c >= 0 && c < size {
			line = append(line, r*size+c)
			r++
			c += dc
		}
		if len(line) >= win {
			lines = append(lines, line)
		}
	}
	// down-right diagonals start on the top row or the left column;
	// down-left ones on the top row or the right column.
	for c := 0; c < size; c++ {
		diagonal(0, c, 1)
	}
	for r := 1; r < size; r++ {
		diagonal(r, 0, 1)
	}
	for c := 0; c < size; c++ {
		diagonal(0, c, -1)
	}
	for r := 1; r < size; r++ {
		diagonal(r, size-1, -1)
	}
	return lines
}
