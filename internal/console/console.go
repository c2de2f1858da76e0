// Package console implements the line-based game collaborators for plain
// terminals.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/hangman/internal/game"
)

// Reader solicits guesses from a line-based input. Invalid lines are
// rejected and re-solicited here so the game loop only ever sees a single
// lowercase letter.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader wraps an input stream and the prompt destination.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

// Next blocks until a valid guess character is read.
func (r *Reader) Next() (rune, error) {
	for {
		if _, err := fmt.Fprint(r.out, "guess char: "); err != nil {
			return 0, err
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		line := strings.TrimSpace(r.scanner.Text())
		runes := []rune(line)
		if len(runes) != 1 {
			continue
		}
		if runes[0] < 'a' || runes[0] > 'z' {
			continue
		}
		return runes[0], nil
	}
}

// Presenter renders turns to a plain terminal, clearing the screen between
// turns when attached to one.
type Presenter struct {
	out    io.Writer
	isTerm bool
}

// NewPresenter builds a presenter for the given output stream.
func NewPresenter(out io.Writer) *Presenter {
	p := &Presenter{out: out}
	if f, ok := out.(*os.File); ok {
		p.isTerm = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// RenderTurn prints lives, the masked word, and the guess history.
func (p *Presenter) RenderTurn(v game.TurnView) {
	p.clear()
	p.printf("%d / %d\n", v.Lives, v.TotalLives)
	p.printf("%s\n", v.Masked)
	guessed := make([]string, len(v.History))
	for i, record := range v.History {
		guessed[i] = string(record.Char)
	}
	p.printf("%s\n", strings.Join(guessed, ", "))
}

// RenderEnd reveals the word and the result.
func (p *Presenter) RenderEnd(v game.EndView) {
	p.clear()
	p.printf("the word was:\n")
	p.printf("%s\n", spacedOut(v.Word))
	if v.Won {
		p.printf("you won\n")
	} else {
		p.printf("you lost\n")
	}
}

func (p *Presenter) clear() {
	if !p.isTerm {
		return
	}
	p.printf("\033[2J\033[H")
}

func (p *Presenter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		// Best-effort terminal output.
		_ = err
	}
}

func spacedOut(word string) string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
