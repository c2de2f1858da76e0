package puzzle

import "testing"

func TestStringRoundTrip(t *testing.T) {
	for _, word := range []string{"cat", "co-op", "don't", "x"} {
		if got := New(word).String(); got != word {
			t.Fatalf("expected %q, got %q", word, got)
		}
	}
}

func TestDisplayMasksOnlyGuessableCells(t *testing.T) {
	w := New("co-op")
	if got := w.Display(); got != "_ _ - _ _" {
		t.Fatalf("unexpected initial display: %q", got)
	}
	w.Reveal('o')
	if got := w.Display(); got != "_ o - o _" {
		t.Fatalf("unexpected display after reveal: %q", got)
	}
}

func TestHasWonIgnoresNonGuessable(t *testing.T) {
	w := New("co-op")
	for _, r := range []rune{'c', 'o', 'p'} {
		if w.HasWon() {
			t.Fatalf("won before revealing %q", r)
		}
		w.Reveal(r)
	}
	if !w.HasWon() {
		t.Fatalf("expected win after revealing all letters")
	}
}

func TestRevealAbsentIsNoOp(t *testing.T) {
	w := New("cat")
	before := w.Display()
	w.Reveal('z')
	if got := w.Display(); got != before {
		t.Fatalf("display changed after absent reveal: %q -> %q", before, got)
	}
	if w.HasWon() {
		t.Fatalf("unexpected win")
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	w := New("banana")
	w.Reveal('a')
	first := w.Display()
	w.Reveal('a')
	if got := w.Display(); got != first {
		t.Fatalf("second reveal changed state: %q -> %q", first, got)
	}
}

func TestContains(t *testing.T) {
	w := New("banana")
	if !w.Contains('n') {
		t.Fatalf("expected word to contain n")
	}
	if w.Contains('z') {
		t.Fatalf("did not expect word to contain z")
	}
}
