// Package tui renders parsed diff hunks in an interactive terminal viewer.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	glam "github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ryansobol/gitdiffparser/internal/report"
	"github.com/ryansobol/gitdiffparser/pkg/diff"
)

type model struct {
	hunks []diff.Hunk

	vp     viewport.Model
	width  int
	height int
	ready  bool

	// Glamour-rendered markdown summary shown above the hunks.
	summary string

	border       lipgloss.Style
	headerStyle  lipgloss.Style
	addStyle     lipgloss.Style
	delStyle     lipgloss.Style
	contextStyle lipgloss.Style
	markerStyle  lipgloss.Style
}

func newModel(hunks []diff.Hunk) *model {
	vp := viewport.Model{}
	vp.YPosition = 0

	m := model{
		hunks:        hunks,
		vp:           vp,
		border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		headerStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		addStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		delStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		contextStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		markerStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
	return &m
}

// renderHunks colors each hunk header and line according to its kind.
func (m *model) renderHunks() string {
	var out strings.Builder
	for _, h := range m.hunks {
		out.WriteString(m.headerStyle.Render(h.Header.String()))
		out.WriteString("\n")
		for _, line := range h.Lines {
			text := string(line.Kind.Prefix()) + line.Content
			var styled string
			switch line.Kind {
			case diff.LineAddition:
				styled = m.addStyle.Render(text)
			case diff.LineDeletion:
				styled = m.delStyle.Render(text)
			case diff.LineNoNewline:
				styled = m.markerStyle.Render(text)
			default:
				styled = m.contextStyle.Render(text)
			}
			out.WriteString(styled)
			out.WriteString("\n")
		}
	}
	return out.String()
}

// rebuildSummary re-renders the markdown summary at the given wrap width.
func (m *model) rebuildSummary(wrap int) {
	if wrap < 10 {
		wrap = 10
	}
	md := report.Build(m.hunks).Markdown()
	r, err := glam.NewTermRenderer(
		glam.WithStylePath("dark"), // fixed style to avoid OSC queries
		glam.WithWordWrap(wrap),
	)
	if err != nil {
		m.summary = md
		return
	}
	rendered, err := r.Render(md)
	if err != nil {
		m.summary = md
		return
	}
	m.summary = rendered
}

func (m *model) refresh() {
	m.vp.SetContent(m.summary + m.renderHunks())
}

func (m *model) recalcLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	vpH := m.height - 3
	if vpH < 3 {
		vpH = 3
	}
	m.vp.Width = m.width
	m.vp.Height = vpH
	m.rebuildSummary(m.vp.Width - 2)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		m.ready = true
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				return m, tea.Quit
			}
		}
	}
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Initializing…"
	}
	help := m.markerStyle.Render("↑/↓ scroll · q quit")
	return m.border.Render(m.vp.View()) + "\n" + help
}

// Run launches the hunk viewer for an already-parsed diff body.
// Returns a POSIX-style exit code.
func Run(hunks []diff.Hunk) int {
	// Prevent OSC background color queries from contaminating stdin by
	// explicitly setting color profile and background for lipgloss/termenv.
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)

	p := tea.NewProgram(newModel(hunks), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui error:", err)
		return 1
	}
	return 0
}
