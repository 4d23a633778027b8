package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

// LineReader shows prompt and returns the next line of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func NewReadlineReader(rl *readline.Instance) LineReader {
	return &readlineReader{rl}
}

type bufioReader struct {
	out io.Writer
	in  *bufio.Reader
}

func (r *bufioReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func NewBufioReader(out io.Writer, in *bufio.Reader) LineReader {
	return &bufioReader{out, in}
}

func NewCLIPlayer(out io.Writer, in LineReader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  LineReader
}

func (c *cliPlayer) GetMove(ctx context.Context, b *pentago.Board, me pentago.Color) (pentago.Move, bool) {
	prompt := fmt.Sprintf("Player #%d, enter your move (row col quadrant direction): ", me.Number())
	for {
		line, err := c.in.ReadLine(prompt)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("input closed")
			return pentago.Move{}, false
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input format. Please enter 4 integers separated by spaces.")
			continue
		}
		if err := b.CheckMove(m); err != nil {
			fmt.Fprintf(c.out, "Invalid move! Please try again. (%v)\n", err)
			continue
		}
		return m, true
	}
}
