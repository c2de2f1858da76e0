// Package main provides the CLI entrypoint for hangman.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/corpus"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/selector"
	"github.com/verte-zerg/hangman/internal/stats"
	"github.com/verte-zerg/hangman/internal/statsui"
	"github.com/verte-zerg/hangman/internal/store"
	"github.com/verte-zerg/hangman/internal/tui"
)

const (
	defaultTargetFreq  = 10.0
	defaultRange       = 50
	defaultLives       = 8
	defaultCurveWindow = 20
)

// embeddedCorpusLabel names the built-in corpus in config and game records.
const embeddedCorpusLabel = "embedded"

var (
	playTargetFreq  float64
	playRange       int
	playPunctuation bool
	playLives       int
	playLoseOnDup   bool
	playCorpus      string
	playPlain       bool

	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsPlain       bool

	corpusPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Terminal word-guessing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().Float64Var(&playTargetFreq, "target-frequency", defaultTargetFreq, "preferred word frequency per million")
	rootCmd.Flags().IntVar(&playRange, "range", defaultRange, "number of closest-frequency candidates to draw from")
	rootCmd.Flags().BoolVar(&playPunctuation, "punctuation", false, "allow words with punctuation")
	rootCmd.Flags().IntVar(&playLives, "lives", defaultLives, "lives per game")
	rootCmd.Flags().BoolVar(&playLoseOnDup, "lose-life-on-duplicate", false, "charge a life for repeated guesses")
	rootCmd.Flags().StringVar(&playCorpus, "corpus", "", "corpus file (JSON or YAML; default: embedded)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "line-based mode instead of the TUI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCorpusCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "target-frequency", &playTargetFreq, fileCfg.Game.TargetFrequency)
	applyIntConfig(cmd, "range", &playRange, fileCfg.Game.SelectionRange)
	applyBoolConfig(cmd, "punctuation", &playPunctuation, fileCfg.Game.AllowPunctuation)
	applyIntConfig(cmd, "lives", &playLives, fileCfg.Game.Lives)
	applyBoolConfig(cmd, "lose-life-on-duplicate", &playLoseOnDup, fileCfg.Game.LoseLifeOnDuplicate)
	applyStringConfig(cmd, "corpus", &playCorpus, fileCfg.Game.Corpus)

	cfg := model.Config{
		TargetFrequency:     playTargetFreq,
		SelectionRange:      playRange,
		AllowPunctuation:    playPunctuation,
		Lives:               playLives,
		LoseLifeOnDuplicate: playLoseOnDup,
		CorpusPath:          playCorpus,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	entries, label, err := loadCorpus(cfg.CorpusPath)
	if err != nil {
		return err
	}
	cfg.CorpusPath = label

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	sel := selector.New()
	if playPlain {
		return runPlain(cfg, st, sel, entries)
	}

	gameModel, err := tui.NewModel(cfg, st, sel, entries, cfg.CorpusPath)
	if err != nil {
		return err
	}
	program := tea.NewProgram(gameModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func runPlain(cfg model.Config, st *store.Store, sel *selector.Selector, entries []corpus.Entry) error {
	word, err := sel.Select(entries, cfg)
	if err != nil {
		return err
	}
	session := game.NewSession(word, game.Rules{
		Lives:               cfg.Lives,
		LoseLifeOnDuplicate: cfg.LoseLifeOnDuplicate,
	})
	loop := game.NewLoop(
		console.NewReader(os.Stdin, os.Stdout),
		console.NewPresenter(os.Stdout),
	)

	startedAt := time.Now()
	state, err := loop.Run(session)
	if err != nil {
		return fmt.Errorf("failed to read guess: %w", err)
	}
	endedAt := time.Now()

	rec := model.GameRecord{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Word:       session.Puzzle.String(),
		Won:        state == game.StateWon,
		Lives:      session.TotalLives(),
		LivesLeft:  session.Lives,
		CorpusPath: cfg.CorpusPath,
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
	}
	if _, err := st.InsertGame(context.Background(), rec, session.History); err != nil {
		logErrf("failed to save game: %v\n", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show game stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N games")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print stats instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain {
		return printStats(cmd, st, cfg)
	}

	statsModel := statsui.NewModel(st, cfg)
	program := tea.NewProgram(statsModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func printStats(cmd *cobra.Command, st *store.Store, cfg model.StatsConfig) error {
	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report.Games); err != nil {
		return err
	}
	if err := stats.RenderWinCurve(out, report.Games, cfg.CurveWindow); err != nil {
		return err
	}
	return stats.RenderLetterTable(out, report.Letters)
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect a word corpus",
		Args:  cobra.NoArgs,
		RunE:  runCorpusCmd,
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file (JSON or YAML; default: embedded)")
	return cmd
}

func runCorpusCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "corpus", &corpusPath, fileCfg.Game.Corpus)

	entries, label, err := loadCorpus(corpusPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Corpus: %s\n", label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Words: %d\n", len(entries)); err != nil {
		return err
	}
	minFreq, maxFreq := entries[0].Frequency, entries[0].Frequency
	for _, entry := range entries[1:] {
		if entry.Frequency < minFreq {
			minFreq = entry.Frequency
		}
		if entry.Frequency > maxFreq {
			maxFreq = entry.Frequency
		}
	}
	if _, err := fmt.Fprintf(out, "Frequency: %.2f – %.2f per million\n", minFreq, maxFreq); err != nil {
		return err
	}
	return nil
}

func loadCorpus(path string) ([]corpus.Entry, string, error) {
	if path == "" || path == embeddedCorpusLabel {
		entries, err := corpus.Default()
		if err != nil {
			return nil, "", err
		}
		return entries, embeddedCorpusLabel, nil
	}
	entries, err := corpus.Load(path)
	if err != nil {
		return nil, "", err
	}
	return entries, path, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# target-frequency = %.1f   # Preferred word frequency per million
# selection-range = %d      # Closest-frequency candidates to draw from
# allow-punctuation = false # Allow words with punctuation
# lives = %d                # Lives per game
# lose-life-on-duplicate = false # Charge a life for repeated guesses
# corpus = ""               # Corpus file (JSON or YAML; empty = embedded)
`,
		defaultTargetFreq,
		defaultRange,
		defaultLives,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TargetFrequency < 0 {
		return fmt.Errorf("--target-frequency must be >= 0")
	}
	if cfg.SelectionRange <= 0 {
		return fmt.Errorf("--range must be > 0")
	}
	if cfg.Lives <= 0 {
		return fmt.Errorf("--lives must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
