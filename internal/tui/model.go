// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangman/internal/corpus"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/selector"
	"github.com/verte-zerg/hangman/internal/store"
)

// Model implements the Bubble Tea hangman UI.
type Model struct {
	config     model.Config
	store      *store.Store
	sel        *selector.Selector
	entries    []corpus.Entry
	corpusPath string

	session   *game.Session
	started   bool
	startedAt time.Time
	finished  bool

	width  int
	height int

	allGames int
	allWon   int
}

var (
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	gallowsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	livesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6FBF73"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	neutralStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	resultStyle    = lipgloss.NewStyle().Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

var gallowsStages = []string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// NewModel constructs the game TUI model with its first puzzle selected.
func NewModel(cfg model.Config, st *store.Store, sel *selector.Selector, entries []corpus.Entry, corpusPath string) (*Model, error) {
	m := &Model{
		config:     cfg,
		store:      st,
		sel:        sel,
		entries:    entries,
		corpusPath: corpusPath,
	}
	if err := m.newGame(); err != nil {
		return nil, err
	}
	m.loadFooterStats()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.finished {
				if err := m.newGame(); err != nil {
					logErrf("failed to start new game: %v\n", err)
					return m, tea.Quit
				}
			}
			return m, nil
		case tea.KeyRunes:
			return m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session == nil {
		return ""
	}
	var content string
	if m.finished {
		content = m.renderEndgame()
	} else {
		content = m.renderTurn()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) handleRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		if m.finished {
			if r == 'q' {
				return m, tea.Quit
			}
			continue
		}
		if r < 'a' || r > 'z' {
			continue
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
		m.session.Play(r)
		if m.session.State() != game.StateInProgress {
			m.finishGame()
		}
	}
	return m, nil
}

func (m *Model) newGame() error {
	word, err := m.sel.Select(m.entries, m.config)
	if err != nil {
		return err
	}
	m.session = game.NewSession(word, game.Rules{
		Lives:               m.config.Lives,
		LoseLifeOnDuplicate: m.config.LoseLifeOnDuplicate,
	})
	m.started = false
	m.startedAt = time.Time{}
	m.finished = false
	return nil
}

func (m *Model) finishGame() {
	m.finished = true
	won := m.session.State() == game.StateWon
	endedAt := time.Now()
	startedAt := m.startedAt
	if !m.started {
		startedAt = endedAt
	}
	rec := model.GameRecord{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Word:       m.session.Puzzle.String(),
		Won:        won,
		Lives:      m.session.TotalLives(),
		LivesLeft:  m.session.Lives,
		CorpusPath: m.corpusPath,
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
	}
	ctx := context.Background()
	if _, err := m.store.InsertGame(ctx, rec, m.session.History); err != nil {
		logErrf("failed to save game: %v\n", err)
	}
	m.allGames++
	if won {
		m.allWon++
	}
}

func (m *Model) loadFooterStats() {
	ctx := context.Background()
	games, err := m.store.ListGames(ctx, model.StatsConfig{})
	if err != nil {
		logErrf("failed to load game stats: %v\n", err)
		return
	}
	m.allGames = len(games)
	for _, g := range games {
		if g.Won {
			m.allWon++
		}
	}
}

func (m *Model) renderTurn() string {
	lines := []string{
		gallowsStyle.Render(m.renderGallows()),
		"",
		wordStyle.Render(m.session.Puzzle.Display()),
		"",
		livesStyle.Render(fmt.Sprintf("%d / %d", m.session.Lives, m.session.TotalLives())),
	}
	if history := m.renderHistory(); history != "" {
		lines = append(lines, "", history)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEndgame() string {
	result := resultStyle.Inherit(incorrectStyle).Render("you lost")
	if m.session.State() == game.StateWon {
		result = resultStyle.Inherit(correctStyle).Render("you won")
	}
	lines := []string{
		gallowsStyle.Render(m.renderGallows()),
		"",
		"the word was:",
		wordStyle.Render(spacedOut(m.session.Puzzle.String())),
		"",
		result,
		"",
		footerStyle.Render("enter new game · q quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderGallows() string {
	total := m.session.TotalLives()
	if total <= 0 {
		return gallowsStages[len(gallowsStages)-1]
	}
	wrong := total - m.session.Lives
	idx := wrong * (len(gallowsStages) - 1) / total
	if idx < 0 {
		idx = 0
	}
	if idx >= len(gallowsStages) {
		idx = len(gallowsStages) - 1
	}
	return gallowsStages[idx]
}

func (m *Model) renderHistory() string {
	if len(m.session.History) == 0 {
		return ""
	}
	parts := make([]string, len(m.session.History))
	for i, record := range m.session.History {
		ch := string(record.Char)
		switch record.Outcome {
		case model.OutcomeCorrect:
			parts[i] = correctStyle.Render(ch)
		case model.OutcomeIncorrect:
			parts[i] = incorrectStyle.Render(ch)
		default:
			parts[i] = neutralStyle.Render(ch)
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderFooter() string {
	if m.allGames == 0 {
		return footerStyle.Render("No games played yet")
	}
	rate := float64(m.allWon) / float64(m.allGames) * 100
	return footerStyle.Render(fmt.Sprintf("Games %d  Win rate %.1f%%", m.allGames, rate))
}

func spacedOut(word string) string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
