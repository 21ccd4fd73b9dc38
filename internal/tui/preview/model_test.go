package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exrconf/internal/experiment"
)

func build(t *testing.T) Model {
	def := experiment.Default()
	def.Algorithms = []string{"b", "e"}
	m, err := Build(def)
	require.NoError(t, err)
	return m
}

func TestBuild(t *testing.T) {
	m := build(t)

	require.Len(t, m.Files, 4)
	assert.Equal(t, "config/addresses.txt", m.Files[0].Title)
	assert.Equal(t, "config/algorithms.txt", m.Files[1].Title)
	assert.Equal(t, "2\nb 5 4 6 1 0 50\ne 4 4 6 1 3\n", m.Files[1].Content)
	assert.Len(t, m.Jobs.Rows(), 2)
	assert.Equal(t, "e 4 4 6 1 3", m.Jobs.Rows()[1][4])
	assert.Len(t, m.Lines.Data, 4)
	assert.Equal(t, uint64(3), m.Lines.Data[1])
}

func TestBuild_rootConfigDir(t *testing.T) {
	def := experiment.Default()
	def.Paths.ConfigDir = ""

	m, err := Build(def)
	require.NoError(t, err)
	assert.Equal(t, "addresses.txt", m.Files[0].Title)
}

func TestUpdate_tabsWrap(t *testing.T) {
	var model tea.Model = build(t)

	for i := 0; i < 4; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m := model.(Model)
	assert.True(t, m.onJobs())
	assert.Contains(t, m.View(), "jobs")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, model.(Model).Active)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 4, model.(Model).Active)
}

func TestUpdate_quit(t *testing.T) {
	_, cmd := build(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_resize(t *testing.T) {
	model, _ := build(t).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := model.(Model)

	assert.Equal(t, 96, m.Viewport.Width)
	assert.Equal(t, 34, m.Viewport.Height)
}
