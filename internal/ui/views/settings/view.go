package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	hydrationdto "plant/internal/modules/hydration/dto"
	"plant/internal/ui/components"
	"plant/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	SetUnit(ctx context.Context, unit string) (hydrationdto.StateOutput, error)
	SetGoal(ctx context.Context, goalML float64) (hydrationdto.StateOutput, error)
	SetGlassSize(ctx context.Context, sizeML float64) (hydrationdto.StateOutput, error)
}

type field int

const (
	fieldUnit field = iota
	fieldGoal
	fieldGlass
	fieldCount
)

var fieldLabels = [fieldCount]string{"Unit", "Daily goal", "Glass size"}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	state   hydrationdto.StateOutput
	cursor  field
	input   textinput.Model
	editing bool
	width   int
	height  int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "millilitres"
	ti.CharLimit = 12
	return Model{port: port, input: ti}
}

func (m Model) Init() tea.Cmd { return nil }

// Editing reports whether the numeric input owns the keyboard.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case components.StateChangedMsg:
		m.state = msg.State

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.input.Blur()
				return m, nil
			case "enter":
				m.editing = false
				m.input.Blur()
				return m, m.submit(m.cursor, m.input.Value())
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor + fieldCount - 1) % fieldCount
		case "down", "j":
			m.cursor = (m.cursor + 1) % fieldCount
		case "u":
			return m, m.toggleUnit()
		case "enter":
			if m.cursor == fieldUnit {
				return m, m.toggleUnit()
			}
			m.editing = true
			m.input.SetValue("")
			cmd := m.input.Focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	values := [fieldCount]string{
		m.state.Unit,
		fmt.Sprintf("%.0f mL (%s)", m.state.GoalML, m.state.GoalText),
		fmt.Sprintf("%.0f mL (%s)", m.state.GlassSizeML, m.state.GlassText),
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	for f := field(0); f < fieldCount; f++ {
		line := fmt.Sprintf("%-12s %s", fieldLabels[f], values[f])
		if f == m.cursor {
			sb.WriteString(theme.Hot.Render("› "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	if m.editing {
		sb.WriteString("\n" + fieldLabels[m.cursor] + ": " + m.input.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓ select  enter: edit  u: toggle unit"))
	return theme.Pane.Width(max(m.width-4, 30)).Render(sb.String())
}

func (m Model) toggleUnit() tea.Cmd {
	next := "L"
	if m.state.Unit == "L" {
		next = "oz"
	}
	return m.apply(func(ctx context.Context) (hydrationdto.StateOutput, error) {
		return m.port.SetUnit(ctx, next)
	}, "unit set to "+next)
}

func (m Model) submit(f field, raw string) tea.Cmd {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return func() tea.Msg { return components.ErrorMsg{Err: fmt.Errorf("not a number: %q", raw)} }
	}
	switch f {
	case fieldGoal:
		return m.apply(func(ctx context.Context) (hydrationdto.StateOutput, error) {
			return m.port.SetGoal(ctx, value)
		}, "goal updated")
	case fieldGlass:
		return m.apply(func(ctx context.Context) (hydrationdto.StateOutput, error) {
			return m.port.SetGlassSize(ctx, value)
		}, "glass size updated")
	}
	return nil
}

func (m Model) apply(fn func(context.Context) (hydrationdto.StateOutput, error), status string) tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return components.ErrorMsg{Err: fmt.Errorf("settings are not configured")}
		}
		state, err := fn(context.Background())
		if err != nil {
			return components.ErrorMsg{Err: err}
		}
		return components.StateChangedMsg{State: state, Status: status}
	}
}
