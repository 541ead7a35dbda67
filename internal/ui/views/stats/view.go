package stats

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	statsdto "plant/internal/modules/stats/dto"
	"plant/internal/platform/markdown"
	"plant/internal/ui/components"
	"plant/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Summary(ctx context.Context) (statsdto.SummaryOutput, error)
	Markdown(ctx context.Context) (string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Summary statsdto.SummaryOutput
	Note    string
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	viewport viewport.Model
	renderer *glamour.TermRenderer
	summary  statsdto.SummaryOutput
	note     string
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(0, 1)
	return Model{port: port, viewport: vp, renderer: r}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-6, 3)
		if r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(m.viewport.Width-2),
		); err == nil {
			m.renderer = r
		}
		m.viewport.SetContent(m.render())

	case components.StateChangedMsg:
		return m, m.Reload()

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.summary = msg.Summary
			m.note = msg.Note
		}
		m.viewport.SetContent(m.render())
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Hydration Stats") + "\n" +
		components.ProgressBar(m.summary.Ratio, max(m.width-4, 10)) + "\n" +
		theme.Muted.Render(m.summary.Line) + "\n"
	return header + m.viewport.View()
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Warn.Render("stats unavailable: " + m.err.Error())
	}
	body := markdown.StripFrontmatter(m.note)
	if m.renderer == nil {
		return body
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		return body
	}
	return out
}

// Reload fetches a fresh summary and note.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{Err: fmt.Errorf("stats are not configured")}
		}
		ctx := context.Background()
		summary, err := m.port.Summary(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		note, err := m.port.Markdown(ctx)
		return LoadedMsg{Summary: summary, Note: note, Err: err}
	}
}
