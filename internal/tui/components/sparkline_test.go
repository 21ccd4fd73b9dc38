package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSparkline_scalesToMax(t *testing.T) {
	s := NewSparkline("lines", lipgloss.NewStyle(), 0, 7, 14)
	assert.Equal(t, "▁▄█", s.Bars())
}

func TestSparkline_allZero(t *testing.T) {
	s := NewSparkline("lines", lipgloss.NewStyle(), 0, 0)
	assert.Equal(t, "▁▁", s.Bars())
}

func TestSparkline_cellWidth(t *testing.T) {
	s := NewSparkline("lines", lipgloss.NewStyle(), 1, 2)
	s.Cell = 3
	assert.Equal(t, "▄▄▄███", s.Bars())
}

func TestSparkline_emptyView(t *testing.T) {
	assert.Empty(t, NewSparkline("lines", lipgloss.NewStyle()).View())
}
