package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	growthdto "plant/internal/modules/growth/dto"
	hydrationdto "plant/internal/modules/hydration/dto"
	"plant/internal/ui/components"
	"plant/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type HydrationPort interface {
	Status(ctx context.Context) (hydrationdto.StateOutput, error)
	LogGlass(ctx context.Context) (hydrationdto.LogGlassOutput, error)
}

type GrowthPort interface {
	Grow(ctx context.Context, ratio float64) (growthdto.GrowOutput, error)
	Frame(ctx context.Context, elapsed time.Duration) (growthdto.FrameOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// GrownMsg reports that the plant was regrown and its sway restarted.
type GrownMsg struct {
	Out growthdto.GrowOutput
	Err error
}

type FrameMsg struct {
	Frame growthdto.FrameOutput
	Err   error
}

type tickMsg time.Time

const frameInterval = 80 * time.Millisecond

// ─── model ───────────────────────────────────────────────────────────────────

// Model draws the plant, the headline and the progress bar. The sway is
// sampled from the growth module on every tick, measured from the moment the
// view first saw the current sway generation. Scale changes are eased locally.
type Model struct {
	hydration  HydrationPort
	growth     GrowthPort
	spinner    spinner.Model
	state      hydrationdto.StateOutput
	frame      growthdto.FrameOutput
	generation uint64
	swayStart  time.Time
	tweens     map[int]scaleTween
	now        time.Time
	loaded     bool
	width      int
	height     int
}

func New(hydration HydrationPort, growth GrowthPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)
	return Model{hydration: hydration, growth: growth, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.LoadState(), m.spinner.Tick, tick())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case components.StateChangedMsg:
		m.state = msg.State
		m.loaded = true
		return m, m.growCmd(msg.State.ProgressRatio)

	case GrownMsg:
		if msg.Err == nil {
			m.now = time.Now()
			m.tweens = startTweens(m.tweens, m.frame, msg.Out.Transitions, m.now)
		}

	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(m.frameCmd(time.Since(m.swayStart)), tick())

	case FrameMsg:
		if msg.Err != nil {
			break
		}
		if msg.Frame.Generation != m.generation {
			// Sampled against the previous sway's clock; start the new one
			// at zero and sample again.
			m.generation = msg.Frame.Generation
			m.swayStart = time.Now()
			return m, m.frameCmd(0)
		}
		m.frame = msg.Frame

	case spinner.TickMsg:
		if !m.loaded {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "l", "enter", " ":
			return m, m.LogGlass()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Watering…")
	}
	plantW := max(24, min(m.width-4, 48))
	plantH := max(10, min(m.height-8, 20))

	var sb strings.Builder
	sb.WriteString(RenderPlant(easedFrame(m.frame, m.tweens, m.now), plantW, plantH) + "\n\n")
	sb.WriteString(theme.Title.Render(m.state.Headline) + "\n")
	sb.WriteString(components.ProgressBar(m.state.ProgressRatio, plantW) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("glass %s  ·  l: log glass  r: reset", m.state.GlassText)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) LoadState() tea.Cmd {
	return func() tea.Msg {
		if m.hydration == nil {
			return components.ErrorMsg{Err: fmt.Errorf("hydration is not configured")}
		}
		state, err := m.hydration.Status(context.Background())
		if err != nil {
			return components.ErrorMsg{Err: err}
		}
		return components.StateChangedMsg{State: state, Status: "ready"}
	}
}

func (m Model) LogGlass() tea.Cmd {
	return func() tea.Msg {
		if m.hydration == nil {
			return components.ErrorMsg{Err: fmt.Errorf("hydration is not configured")}
		}
		out, err := m.hydration.LogGlass(context.Background())
		if err != nil {
			return components.ErrorMsg{Err: err}
		}
		status := "logged " + out.State.GlassText
		if !out.Logged {
			status = "daily goal reached"
		}
		return components.StateChangedMsg{State: out.State, Status: status}
	}
}

func (m Model) growCmd(ratio float64) tea.Cmd {
	return func() tea.Msg {
		if m.growth == nil {
			return GrownMsg{Err: fmt.Errorf("growth is not configured")}
		}
		out, err := m.growth.Grow(context.Background(), ratio)
		return GrownMsg{Out: out, Err: err}
	}
}

func (m Model) frameCmd(elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		if m.growth == nil {
			return FrameMsg{Err: fmt.Errorf("growth is not configured")}
		}
		frame, err := m.growth.Frame(context.Background(), elapsed)
		return FrameMsg{Frame: frame, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
