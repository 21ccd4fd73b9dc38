// Package preview shows what a generation run would write, rendered into
// memory, in a terminal UI.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"exrconf/internal/descriptor"
	"exrconf/internal/experiment"
	"exrconf/internal/tui/components"
	"exrconf/internal/tui/styles"
	"exrconf/internal/writer"
)

// File is one generated artifact.
type File struct {
	Title   string
	Content string
}

type Model struct {
	Files []File
	Jobs  table.Model

	// Active indexes Files; len(Files) selects the jobs table.
	Active   int
	Viewport viewport.Model
	Lines    components.Sparkline

	Width  int
	Height int
}

// Build generates every artifact of def into an in-memory filesystem.
func Build(def experiment.Definition) (Model, error) {
	fs := afero.NewMemMapFs()
	if def.Paths.ConfigDir != "" {
		if err := fs.MkdirAll(def.Paths.ConfigDir, 0755); err != nil {
			return Model{}, err
		}
	}

	report, err := writer.Generate(fs, def)
	if err != nil {
		return Model{}, err
	}

	files := make([]File, 0, len(report.Results))
	lines := make([]uint64, 0, len(report.Results))
	for _, r := range report.Results {
		lines = append(lines, uint64(r.Lines))
		data, err := afero.ReadFile(fs, r.Path)
		if err != nil {
			return Model{}, err
		}
		files = append(files, File{Title: r.Path, Content: string(data)})
	}

	m := Model{
		Files:    files,
		Jobs:     jobsTable(def),
		Viewport: viewport.New(80, 20),
		Lines:    components.NewSparkline("lines per file", styles.Subtle, lines...),
	}
	m.Lines.Cell = 3
	m.Viewport.SetContent(files[0].Content)
	return m, nil
}

func jobsTable(def experiment.Definition) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Rep", Width: 5},
		{Title: "(n,k)", Width: 9},
		{Title: "Algorithm", Width: 16},
		{Title: "Descriptor", Width: 28},
	}

	jobs := def.Jobs()
	rows := make([]table.Row, len(jobs))
	for i, j := range jobs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", j.Repetition),
			j.Geometry.String(),
			fmt.Sprintf("%s (%s)", experiment.CodeName(j.Code), j.Code),
			strings.TrimSuffix(descriptor.For(j).Encode(), "\n"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.ColorPrimary)
	s.Selected = s.Selected.
		Foreground(styles.ColorBg).
		Background(styles.ColorPrimary).
		Bold(true)
	t.SetStyles(s)

	return t
}

func (m Model) tabCount() int {
	return len(m.Files) + 1
}

func (m Model) onJobs() bool {
	return m.Active == len(m.Files)
}

func (m *Model) selectTab(i int) {
	n := m.tabCount()
	m.Active = (i%n + n) % n
	if !m.onJobs() {
		m.Viewport.SetContent(m.Files[m.Active].Content)
		m.Viewport.GotoTop()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// tabs, box border and footer
		h := msg.Height - 6
		if h < 3 {
			h = 3
		}
		m.Viewport.Width = msg.Width - 4
		m.Viewport.Height = h
		m.Jobs.SetWidth(msg.Width - 4)
		m.Jobs.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.selectTab(m.Active + 1)
			return m, nil
		case "shift+tab", "left", "h":
			m.selectTab(m.Active - 1)
			return m, nil
		}
	}

	if m.onJobs() {
		m.Jobs, cmd = m.Jobs.Update(msg)
	} else {
		m.Viewport, cmd = m.Viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var tabs []string
	for i, f := range m.Files {
		tabs = append(tabs, m.tab(i, f.Title))
	}
	tabs = append(tabs, m.tab(len(m.Files), "jobs"))

	body := m.Viewport.View()
	if m.onJobs() {
		body = m.Jobs.View()
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.RenderKey("tab", "next"), "  ",
		styles.RenderKey("shift+tab", "prev"), "  ",
		styles.RenderKey("↑/↓", "scroll"), "  ",
		styles.RenderKey("q", "quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		styles.Box.Render(body),
		m.Lines.View(),
		footer,
	)
}

func (m Model) tab(i int, title string) string {
	if i == m.Active {
		return styles.TabActive.Render(title)
	}
	return styles.TabBase.Render(title)
}
