package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
)

func TestReaderSkipsInvalidInput(t *testing.T) {
	in := strings.NewReader("ab\n!\nQ\n\nq\n")
	var prompts bytes.Buffer
	r := NewReader(in, &prompts)

	got, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != 'q' {
		t.Fatalf("expected q, got %q", got)
	}
	if strings.Count(prompts.String(), "guess char:") != 5 {
		t.Fatalf("expected a prompt per attempt, got %q", prompts.String())
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestRenderTurn(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)
	p.RenderTurn(game.TurnView{
		Lives:      2,
		TotalLives: 8,
		Masked:     "_ a _ a _ a",
		History: []model.GuessRecord{
			{Char: 'a', Outcome: model.OutcomeCorrect},
			{Char: 'z', Outcome: model.OutcomeIncorrect},
		},
	})
	out := buf.String()
	for _, want := range []string{"2 / 8", "_ a _ a _ a", "a, z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("turn output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEndLossRevealsWord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)
	p.RenderEnd(game.EndView{Word: "hi", Won: false})
	out := buf.String()
	for _, want := range []string{"the word was:", "h i", "you lost"} {
		if !strings.Contains(out, want) {
			t.Fatalf("end output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEndWin(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)
	p.RenderEnd(game.EndView{Word: "hi", Won: true})
	if !strings.Contains(buf.String(), "you won") {
		t.Fatalf("expected win message:\n%s", buf.String())
	}
}
