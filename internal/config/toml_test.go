package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsEmpty(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Lives != nil {
		t.Fatalf("expected empty config, got %+v", cfg.Game)
	}
}

func TestLoadConfigParsesGameSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[game]
target-frequency = 12.5
selection-range = 40
allow-punctuation = true
lives = 6
lose-life-on-duplicate = true
corpus = "/tmp/words.yml"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	game := cfg.Game
	if game.TargetFrequency == nil || *game.TargetFrequency != 12.5 {
		t.Fatalf("unexpected target frequency: %+v", game.TargetFrequency)
	}
	if game.SelectionRange == nil || *game.SelectionRange != 40 {
		t.Fatalf("unexpected selection range: %+v", game.SelectionRange)
	}
	if game.AllowPunctuation == nil || !*game.AllowPunctuation {
		t.Fatalf("unexpected allow-punctuation: %+v", game.AllowPunctuation)
	}
	if game.Lives == nil || *game.Lives != 6 {
		t.Fatalf("unexpected lives: %+v", game.Lives)
	}
	if game.LoseLifeOnDuplicate == nil || !*game.LoseLifeOnDuplicate {
		t.Fatalf("unexpected lose-life-on-duplicate: %+v", game.LoseLifeOnDuplicate)
	}
	if game.Corpus == nil || *game.Corpus != "/tmp/words.yml" {
		t.Fatalf("unexpected corpus: %+v", game.Corpus)
	}
}
