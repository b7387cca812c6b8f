// Package console is the line-based I/O the game is played through.
//
// Two implementations share the Console interface:
//   - Line: bufio.Scanner over any reader; used for pipes and tests.
//   - Terminal: chzyer/readline with line editing, used when stdin is a TTY.
//
// Both report end of input (EOF, Ctrl-D, Ctrl-C) as ErrClosed.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrClosed means no more input will arrive.
var ErrClosed = errors.New("console: input closed")

// Console reads guesses and prints game output.
type Console interface {
	ReadLine(prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Close() error
}

// Open returns a Terminal console when in is an interactive terminal,
// otherwise a Line console.
func Open(in *os.File, out io.Writer) (Console, error) {
	if term.IsTerminal(int(in.Fd())) {
		return NewTerminal(in, out)
	}
	return NewLine(in, out), nil
}

// Line is a Console over a plain reader/writer pair.
type Line struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{in: bufio.NewScanner(r), out: w}
}

func (c *Line) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return c.in.Text(), nil
}

func (c *Line) Println(a ...any)               { fmt.Fprintln(c.out, a...) }
func (c *Line) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }
func (c *Line) Close() error                   { return nil }

// Terminal is a Console backed by readline.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal sets up readline on in/out. History stays in memory only.
func NewTerminal(in io.ReadCloser, out io.Writer) (*Terminal, error) {
	return newTerminal(terminalConfig(in, out))
}

func terminalConfig(in io.ReadCloser, out io.Writer) *readline.Config {
	return &readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
}

func newTerminal(cfg *readline.Config) (*Terminal, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("console: readline: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

func (c *Terminal) ReadLine(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	line, err := c.rl.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", ErrClosed
	}
	return line, err
}

func (c *Terminal) Println(a ...any)               { fmt.Fprintln(c.rl.Stdout(), a...) }
func (c *Terminal) Printf(format string, a ...any) { fmt.Fprintf(c.rl.Stdout(), format, a...) }
func (c *Terminal) Close() error                   { return c.rl.Close() }
