package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var levels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws one cell per value, scaled against the largest value.
type Sparkline struct {
	Label string
	Data  []uint64
	Style lipgloss.Style
	// Cell is the width of each bar; 1 when unset.
	Cell int
}

func NewSparkline(label string, style lipgloss.Style, data ...uint64) Sparkline {
	return Sparkline{Label: label, Data: data, Style: style, Cell: 1}
}

func (s Sparkline) peak() uint64 {
	var m uint64
	for _, v := range s.Data {
		m = max(m, v)
	}
	return m
}

// Bars returns the unstyled bar string.
func (s Sparkline) Bars() string {
	cell := max(s.Cell, 1)
	top := s.peak()

	var b strings.Builder
	for _, v := range s.Data {
		idx := 0
		if top > 0 {
			idx = int(v * uint64(len(levels)-1) / top)
		}
		b.WriteString(strings.Repeat(string(levels[idx]), cell))
	}
	return b.String()
}

func (s Sparkline) View() string {
	if len(s.Data) == 0 {
		return ""
	}
	return s.Style.Render(s.Label+" ") + s.Style.Render(s.Bars())
}
