// Package console is the line-oriented terminal I/O shared by every game:
// print a prompt, read one line back, wrap long text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// DefaultWidth is the column stories and descriptions are wrapped at.
const DefaultWidth = 72

// MaxLine is the longest answer kept. Anything past it on the same line is
// read and discarded.
const MaxLine = 4096

type lineResult struct {
	line string
	err  error
}

// Prompter asks questions on out and reads answers from in, one line each.
// Lines are read on a background goroutine so Ask can give up when its
// context is cancelled.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	width int
	lines chan lineResult
	err   error // sticky read error, io.EOF once input ends
}

// New constructs a Prompter. A width <= 0 falls back to DefaultWidth.
func New(in io.Reader, out io.Writer, width int) *Prompter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Prompter{in: bufio.NewReader(in), out: out, width: width}
}

// Ask writes prompt and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted and
// ctx.Err() if ctx ends while waiting.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	if p.lines == nil {
		p.lines = make(chan lineResult)
		go p.readLines()
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r := <-p.lines:
		if r.err != nil {
			p.err = r.err
			// Keep the terminal tidy when input ends mid-prompt.
			fmt.Fprintln(p.out)
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

// readLines feeds p.lines until the first read error, which it sends last.
func (p *Prompter) readLines() {
	for {
		line, err := readLine(p.in, MaxLine)
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			p.lines <- lineResult{err: err}
			return
		}
		p.lines <- lineResult{line: line}
		if err != nil {
			p.lines <- lineResult{err: err}
			return
		}
	}
}

// readLine returns one line without its terminator, keeping at most max
// bytes. A final line without a newline comes back together with io.EOF.
func readLine(r *bufio.Reader, max int) (string, error) {
	var b strings.Builder
	for {
		chunk, err := r.ReadSlice('\n')
		if room := max - b.Len(); room > 0 {
			if len(chunk) > room {
				b.Write(chunk[:room])
			} else {
				b.Write(chunk)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return strings.TrimRight(b.String(), "\r\n"), err
	}
}

// Say writes one line.
func (p *Prompter) Say(line string) {
	fmt.Fprintln(p.out, line)
}

// Sayf writes one formatted line.
func (p *Prompter) Sayf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// SayWrapped writes text wrapped at the prompter's width.
func (p *Prompter) SayWrapped(text string) {
	fmt.Fprintln(p.out, Wrap(text, p.width))
}

// Wrap folds text into lines of at most width columns, breaking on spaces.
// Words longer than width are left intact.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.WrapString(strings.Join(strings.Fields(text), " "), uint(width))
}
