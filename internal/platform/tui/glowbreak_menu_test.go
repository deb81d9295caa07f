package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/config"
)

func sendKeys(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestModeModelChoosesEndless(t *testing.T) {
	m := sendKeys(NewModeModel(80, 24, config.PresetNormal),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	).(ModeModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil, expected a selection")
	}
	if sel.GameID != EndlessID {
		t.Errorf("GameID = %q, expected %q", sel.GameID, EndlessID)
	}
	if sel.Preset != config.PresetNormal {
		t.Errorf("Preset = %v, expected normal", sel.Preset)
	}
}

func TestModeModelCyclesDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected config.Preset
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, config.PresetHard},
		{"right wraps", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}}, config.PresetEasy},
		{"left", []tea.KeyMsg{{Type: tea.KeyLeft}}, config.PresetEasy},
		{"enter", []tea.KeyMsg{{Type: tea.KeyEnter}}, config.PresetHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := append([]tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, tt.keys...)
			keys = append(keys, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
			m := sendKeys(NewModeModel(80, 24, config.PresetNormal), keys...).(ModeModel)

			sel := m.Selected()
			if sel == nil {
				t.Fatal("Selected() = nil, expected a selection")
			}
			if sel.GameID != CampaignID {
				t.Errorf("GameID = %q, expected %q", sel.GameID, CampaignID)
			}
			if sel.Preset != tt.expected {
				t.Errorf("Preset = %v, expected %v", sel.Preset, tt.expected)
			}
		})
	}
}

func TestModeModelBack(t *testing.T) {
	m := sendKeys(NewModeModel(80, 24, config.PresetEasy), tea.KeyMsg{Type: tea.KeyEscape}).(ModeModel)
	if !m.WantsBack() {
		t.Error("WantsBack() = false, expected true")
	}
	if m.Selected() != nil {
		t.Error("Selected() should be nil after back")
	}
}

func TestMenuModelScoreboardShortcut(t *testing.T) {
	m := sendKeys(NewMenuModel(testRuntime(), ""), tea.KeyMsg{Type: tea.KeyTab}).(MenuModel)
	if m.Choice() != ChoiceScores {
		t.Errorf("Choice() = %v, expected ChoiceScores", m.Choice())
	}
}
