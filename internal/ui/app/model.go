package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	growthdto "plant/internal/modules/growth/dto"
	hydrationdto "plant/internal/modules/hydration/dto"
	statsdto "plant/internal/modules/stats/dto"
	"plant/internal/ui/components"
	"plant/internal/ui/theme"
	homeview "plant/internal/ui/views/home"
	settingsview "plant/internal/ui/views/settings"
	statsview "plant/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type hydrationPort interface {
	Status(ctx context.Context) (hydrationdto.StateOutput, error)
	LogGlass(ctx context.Context) (hydrationdto.LogGlassOutput, error)
	Reset(ctx context.Context) (hydrationdto.StateOutput, error)
	SetGoal(ctx context.Context, goalML float64) (hydrationdto.StateOutput, error)
	SetUnit(ctx context.Context, unit string) (hydrationdto.StateOutput, error)
	SetGlassSize(ctx context.Context, sizeML float64) (hydrationdto.StateOutput, error)
}

type growthPort interface {
	Grow(ctx context.Context, ratio float64) (growthdto.GrowOutput, error)
	Frame(ctx context.Context, elapsed time.Duration) (growthdto.FrameOutput, error)
	StopSway(ctx context.Context) error
}

type statsPort interface {
	Summary(ctx context.Context) (statsdto.SummaryOutput, error)
	Markdown(ctx context.Context) (string, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabStats
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Stats", "Settings",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Log     key.Binding
	Reset   key.Binding
	Unit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Log:     key.NewBinding(key.WithKeys("l", "enter"), key.WithHelp("l", "log glass")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset intake")),
		Unit:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "toggle unit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Log, k.Reset},
		{k.Unit},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the reset
// confirmation, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	hydration hydrationPort
	growth    growthPort

	homeView     homeview.Model
	statsView    statsview.Model
	settingsView settingsview.Model

	state        hydrationdto.StateOutput
	activeTab    tabID
	keys         keyMap
	help         help.Model
	showHelp     bool
	confirmReset bool
	palette      components.Palette
	status       string
	width        int
	height       int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(hydration hydrationPort, growth growthPort, stats statsPort) Model {
	return Model{
		hydration:    hydration,
		growth:       growth,
		homeView:     homeview.New(hydration, growth),
		statsView:    statsview.New(stats),
		settingsView: settingsview.New(hydration),
		activeTab:    tabHome,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.statsView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		return m, m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.height - 3})

	case components.StateChangedMsg:
		m.state = msg.State
		if msg.Status != "" {
			m.status = msg.Status
		}

	case components.ErrorMsg:
		m.status = "error: " + msg.Err.Error()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.runCommand(msg.Command)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	if m.confirmReset {
		m.confirmReset = false
		if msg.String() == "y" || msg.String() == "Y" {
			return m, m.resetCmd()
		}
		m.status = "reset cancelled"
		return m, nil
	}

	// Yield to the settings input while a value is being typed.
	if m.activeTab == tabSettings && m.settingsView.Editing() {
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case ":":
		return m, m.palette.Open()
	case "r":
		m.askReset()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case tabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case tabSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// broadcast forwards non-key messages to every tab so background tabs stay
// current and the home animation keeps ticking.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var home, stats, settings tea.Cmd
	m.homeView, home = m.homeView.Update(msg)
	m.statsView, stats = m.statsView.Update(msg)
	m.settingsView, settings = m.settingsView.Update(msg)
	return tea.Batch(home, stats, settings)
}

func (m *Model) askReset() {
	m.confirmReset = true
	m.status = "reset today's intake? (y/N)"
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabStats:
		return m.statsView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "plant  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.confirmReset {
		left = theme.Warn.Render(left)
	} else if m.state.Headline != "" {
		left = theme.Hot.Render("● "+m.state.Headline) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	cmd, err := components.ParseCommand(input)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	return m.runCommand(cmd)
}

func (m Model) runCommand(cmd components.Command) (tea.Model, tea.Cmd) {
	switch cmd.Name {
	case components.CmdLog:
		m.activeTab = tabHome
		return m, m.homeView.LogGlass()

	case components.CmdReset:
		m.askReset()
		return m, nil

	case components.CmdGoal:
		return m, m.mutateCmd("goal updated", func(ctx context.Context) (hydrationdto.StateOutput, error) {
			return m.hydration.SetGoal(ctx, cmd.AmountML)
		})

	case components.CmdGlass:
		return m, m.mutateCmd("glass size updated", func(ctx context.Context) (hydrationdto.StateOutput, error) {
			return m.hydration.SetGlassSize(ctx, cmd.AmountML)
		})

	case components.CmdUnit:
		return m, m.mutateCmd("unit set to "+cmd.Unit, func(ctx context.Context) (hydrationdto.StateOutput, error) {
			return m.hydration.SetUnit(ctx, cmd.Unit)
		})

	case components.CmdSway:
		m.activeTab = tabHome
		return m, m.regrowCmd()

	case components.CmdStats:
		m.activeTab = tabStats
		m.status = "switched to Stats tab"

	case components.CmdSettings:
		m.activeTab = tabSettings
		m.status = "switched to Settings tab"
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) resetCmd() tea.Cmd {
	return m.mutateCmd("intake reset", func(ctx context.Context) (hydrationdto.StateOutput, error) {
		return m.hydration.Reset(ctx)
	})
}

func (m Model) mutateCmd(status string, fn func(context.Context) (hydrationdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		if m.hydration == nil {
			return components.ErrorMsg{Err: fmt.Errorf("hydration is not configured")}
		}
		state, err := fn(context.Background())
		if err != nil {
			return components.ErrorMsg{Err: err}
		}
		return components.StateChangedMsg{State: state, Status: status}
	}
}

// regrowCmd replays the current ratio, which also restarts every leaf's sway.
func (m Model) regrowCmd() tea.Cmd {
	ratio := m.state.ProgressRatio
	return func() tea.Msg {
		if m.growth == nil {
			return components.ErrorMsg{Err: fmt.Errorf("growth is not configured")}
		}
		out, err := m.growth.Grow(context.Background(), ratio)
		return homeview.GrownMsg{Out: out, Err: err}
	}
}

// Shutdown stops the sway so nothing keeps sampling after the program exits.
func (m Model) Shutdown(ctx context.Context) error {
	if m.growth == nil {
		return nil
	}
	return m.growth.StopSway(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
