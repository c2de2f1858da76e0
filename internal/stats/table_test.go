package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Letter", "Miss Rate", "Correct"}
	rows := [][]string{
		{"a", "10.0%", "12"},
		{"z", "100.0%", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter Miss Rate Correct" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a          10.0%      12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "z         100.0%       3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
