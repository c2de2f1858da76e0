// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/stats"
	"github.com/verte-zerg/hangman/internal/store"
)

const (
	tabOverview = iota
	tabGames
)

const gamesTableLimit = 200

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	games     table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tabs:  []string{"Overview", "Games"},
	}
	m.overview = viewport.New(0, 0)
	m.initGamesTable()
	m.refresh()
	return m
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
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			return m, nil
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	switch m.activeTab {
	case tabOverview:
		m.overview, cmd = m.overview.Update(msg)
	case tabGames:
		m.games, cmd = m.games.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	nav := m.renderNav()
	var body string
	if m.errMsg != "" {
		body = errorStyle.Render(m.errMsg)
	} else {
		switch m.activeTab {
		case tabGames:
			body = m.games.View()
		default:
			body = m.overview.View()
		}
	}
	help := headerStyle.Render("tab switch · r refresh · q quit")
	return strings.Join([]string{nav, body, help}, "\n")
}

func (m *Model) renderNav() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts[i] = activeNavStyle.Render(tab)
		} else {
			parts[i] = inactiveNavStyle.Render(tab)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) initGamesTable() {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Word", Width: 16},
		{Title: "Result", Width: 6},
		{Title: "Lives Left", Width: 10},
		{Title: "Duration", Width: 9},
	}
	m.games = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)
}

func (m *Model) refresh() {
	ctx := context.Background()
	report, err := stats.BuildReport(ctx, m.store, m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load stats: %v", err)
		return
	}
	m.report = report
	m.errMsg = ""
	m.overview.SetContent(m.renderOverview())

	records, err := m.store.ListGameWords(ctx, gamesTableLimit)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load games: %v", err)
		return
	}
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		result := "lost"
		if rec.Won {
			result = "won"
		}
		rows[i] = table.Row{
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.Word,
			result,
			fmt.Sprintf("%d/%d", rec.LivesLeft, rec.Lives),
			(time.Duration(rec.DurationMs) * time.Millisecond).Round(time.Second).String(),
		}
	}
	m.games.SetRows(rows)
}

func (m *Model) renderOverview() string {
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, m.report.Games); err != nil {
		return fmt.Sprintf("failed to render summary: %v", err)
	}
	if err := stats.RenderWinCurve(&buf, m.report.Games, m.cfg.CurveWindow); err != nil {
		return fmt.Sprintf("failed to render win curve: %v", err)
	}
	if err := stats.RenderLetterTable(&buf, m.report.Letters); err != nil {
		return fmt.Sprintf("failed to render letter table: %v", err)
	}
	return buf.String()
}

func (m *Model) resize() {
	bodyHeight := m.height - 5
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	width := m.width
	if width < 1 {
		width = 1
	}
	m.overview.Width = width
	m.overview.Height = bodyHeight
	m.games.SetWidth(width)
	m.games.SetHeight(bodyHeight)
}
