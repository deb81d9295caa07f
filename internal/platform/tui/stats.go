package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/storage"
)

// StatsModel shows lifetime counters, per-mode totals and the achievement
// list.
type StatsModel struct {
	progress *glowbreak.Progress
	modes    map[string]*storage.GameStats
	table    table.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewStatsModel loads progress and totals from the store. A nil store shows
// empty progress.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	svc := core.Services{}
	var modes map[string]*storage.GameStats
	if store != nil {
		svc.Store = store
		if all, err := store.GetAllGamesStats(); err == nil {
			modes = all
		}
	}

	m := StatsModel{
		progress: glowbreak.NewProgress(svc.WithDefaults()),
		modes:    modes,
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

func (m StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Achievement", Width: 16},
		{Title: "Goal", Width: 32},
		{Title: "Progress", Width: 9},
	}

	rows := make([]table.Row, 0, len(glowbreak.Achievements))
	for _, a := range glowbreak.Achievements {
		mark := " "
		if m.progress.Unlocked(a.ID) {
			mark = "*"
		}
		prog := ""
		if cur, goal, ok := a.Goal(m.progress.Stats); ok {
			prog = fmt.Sprintf("%d/%d", cur, goal)
		}
		rows = append(rows, table.Row{mark, a.Name, a.Description, prog})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-12, 3))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("STATS & ACHIEVEMENTS", m.width)))
	b.WriteString("\n\n")

	for _, line := range m.summaryLines() {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("  %d/%d unlocked  |  Up/Down: Scroll  |  Esc: Back  |  Q: Quit",
		m.progress.UnlockedCount(), len(glowbreak.Achievements))))

	return b.String()
}

// summaryLines formats the per-mode totals and lifetime counters.
func (m StatsModel) summaryLines() []string {
	var lines []string
	for _, mode := range []struct{ id, title string }{{CampaignID, "Campaign"}, {EndlessID, "Endless"}} {
		gs := m.modes[mode.id]
		if gs == nil {
			lines = append(lines, fmt.Sprintf("%-9s no games yet", mode.title))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-9s %d games  best %d  avg %.0f  last %s",
			mode.title, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("Jan 02 15:04")))
	}

	s := m.progress.Stats
	lines = append(lines,
		fmt.Sprintf("Perfect bounces %d  Bombs %d  Lightning %d  Freeze %d",
			s.PerfectBounces, s.BombExplosions, s.LightningTriggers, s.FreezeTriggers),
		fmt.Sprintf("S ranks %d  Bosses defeated %d", s.SRankCount, s.BossKills),
	)
	return lines
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.back
}

// RunStats runs the stats screen. Returns true if user wants to go back to menu.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewStatsModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
