package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
)

// Game mode IDs as registered by the glowbreak package.
const (
	CampaignID = "glowbreak"
	EndlessID  = "glowbreak_endless"
)

var presets = []config.Preset{config.PresetEasy, config.PresetNormal, config.PresetHard}

// ModeSelection holds the user's choice from the mode menu.
type ModeSelection struct {
	GameID string
	Preset config.Preset
}

// ModeModel lets users choose the game mode and difficulty.
type ModeModel struct {
	cursor    int
	preset    int // Index into presets
	width     int
	height    int
	keyMapper *KeyMapper
	selection ModeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewModeModel creates a new mode selection model starting at the given preset.
func NewModeModel(width, height int, preset config.Preset) ModeModel {
	idx := 1
	for i, p := range presets {
		if p == preset {
			idx = i
		}
	}
	return ModeModel{
		preset:    idx,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // Campaign, Endless, Difficulty
			m.cursor++
		}
	case MenuActionLeft:
		if m.cursor == 2 {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}
	case MenuActionRight:
		if m.cursor == 2 {
			m.preset = (m.preset + 1) % len(presets)
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(CampaignID)
		case 1:
			return m.choose(EndlessID)
		case 2:
			m.preset = (m.preset + 1) % len(presets)
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ModeModel) choose(gameID string) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = ModeSelection{GameID: gameID, Preset: presets[m.preset]}
	return m, tea.Quit
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G L O W B R E A K", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Campaign (4 bosses)",
		"Endless Mode",
		fmt.Sprintf("Difficulty: < %s >", presets[m.preset]),
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Left/Right: Difficulty  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ModeModel) Selected() *ModeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode selection. A nil selection means the user
// went back or quit; quit reports which.
func RunModeSelector(cfg core.RuntimeConfig, preset config.Preset) (sel *ModeSelection, quit bool, err error) {
	model := NewModeModel(cfg.ScreenW, cfg.ScreenH, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return nil, true, nil
	}
	if m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
