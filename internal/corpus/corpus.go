// Package corpus loads word corpora with frequency metadata.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed words.json
var embeddedCorpus []byte

// Entry is one candidate word with its frequency per million.
type Entry struct {
	Word      string  `json:"word" yaml:"word"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

type corpusFile struct {
	Words []Entry `json:"words" yaml:"words"`
}

// Load reads a corpus from a JSON or YAML file, chosen by extension.
// Entry order is preserved; it breaks ties during word selection.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	entries, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode corpus %s: %w", path, err)
	}
	return entries, nil
}

// Default returns the corpus embedded in the binary.
func Default() ([]Entry, error) {
	entries, err := decode(embeddedCorpus, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded corpus: %w", err)
	}
	return entries, nil
}

func decode(data []byte, ext string) ([]Entry, error) {
	var file corpusFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}
	if len(file.Words) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	for i, entry := range file.Words {
		if strings.TrimSpace(entry.Word) == "" {
			return nil, fmt.Errorf("corpus entry %d has an empty word", i)
		}
	}
	return file.Words, nil
}
