// Package puzzle models the hidden word and its per-character state.
package puzzle

import "strings"

// Placeholder renders in place of unguessed letters.
const Placeholder = '_'

// Cell is one character of the word plus whether it has been guessed.
// Only lowercase Latin letters are guessable; anything else (hyphens,
// apostrophes, spaces) is shown in full and never counts toward the win.
type Cell struct {
	Char    rune
	Guessed bool
}

// Guessable reports whether the cell's character can be guessed.
func (c Cell) Guessable() bool {
	return c.Char >= 'a' && c.Char <= 'z'
}

// Display returns the rendered form of the cell.
func (c Cell) Display() string {
	if c.Guessable() && !c.Guessed {
		return string(Placeholder)
	}
	return string(c.Char)
}

// Word is the puzzle state of the chosen word. Its length and content are
// fixed at creation; only the guessed flags change.
type Word struct {
	cells []Cell
}

// New builds a puzzle with every cell unguessed.
func New(word string) *Word {
	runes := []rune(word)
	cells := make([]Cell, len(runes))
	for i, r := range runes {
		cells[i] = Cell{Char: r}
	}
	return &Word{cells: cells}
}

// Chars returns the word's characters in order, duplicates preserved.
func (w *Word) Chars() []rune {
	chars := make([]rune, len(w.cells))
	for i, c := range w.cells {
		chars[i] = c.Char
	}
	return chars
}

// Contains reports whether the character appears anywhere in the word.
func (w *Word) Contains(r rune) bool {
	for _, c := range w.cells {
		if c.Char == r {
			return true
		}
	}
	return false
}

// Reveal marks every cell matching the character as guessed. Revealing a
// character twice, or one not present, changes nothing.
func (w *Word) Reveal(r rune) {
	for i := range w.cells {
		if w.cells[i].Char == r {
			w.cells[i].Guessed = true
		}
	}
}

// Display renders the word with placeholders for unguessed letters,
// cells joined with a single space.
func (w *Word) Display() string {
	parts := make([]string, len(w.cells))
	for i, c := range w.cells {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}

// HasWon reports whether every guessable cell has been guessed.
func (w *Word) HasWon() bool {
	for _, c := range w.cells {
		if c.Guessable() && !c.Guessed {
			return false
		}
	}
	return true
}

// String returns the literal word with no separators.
func (w *Word) String() string {
	return string(w.Chars())
}
