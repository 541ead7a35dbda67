package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plant/internal/ui/theme"
)

type CommandName string

const (
	CmdLog      CommandName = "log"
	CmdReset    CommandName = "reset"
	CmdGoal     CommandName = "goal"
	CmdGlass    CommandName = "glass"
	CmdUnit     CommandName = "unit"
	CmdSway     CommandName = "sway"
	CmdStats    CommandName = "stats"
	CmdSettings CommandName = "settings"
)

type argKind int

const (
	argNone argKind = iota
	argAmount
	argUnit
)

type commandSpec struct {
	name  CommandName
	arg   argKind
	usage string
}

var commandSpecs = []commandSpec{
	{CmdLog, argNone, "log"},
	{CmdReset, argNone, "reset"},
	{CmdGoal, argAmount, "goal <ml>"},
	{CmdGlass, argAmount, "glass <ml>"},
	{CmdUnit, argUnit, "unit <oz|L>"},
	{CmdSway, argNone, "sway"},
	{CmdStats, argNone, "stats"},
	{CmdSettings, argNone, "settings"},
}

// Command is a parsed palette line. AmountML is set for goal and glass,
// Unit for unit.
type Command struct {
	Name     CommandName
	AmountML float64
	Unit     string
}

var errEmptyCommand = errors.New("empty command")

// ParseCommand resolves the first word by exact name or unique prefix and
// checks its argument. Range checks on amounts stay with the hydration module.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, errEmptyCommand
	}
	spec, err := lookupCommand(strings.ToLower(fields[0]))
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Name: spec.name}
	switch spec.arg {
	case argAmount:
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("usage: %s", spec.usage)
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Command{}, fmt.Errorf("invalid amount: %s", fields[1])
		}
		cmd.AmountML = amount
	case argUnit:
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("usage: %s", spec.usage)
		}
		cmd.Unit = fields[1]
	}
	return cmd, nil
}

func lookupCommand(word string) (commandSpec, error) {
	var found []commandSpec
	for _, spec := range commandSpecs {
		if string(spec.name) == word {
			return spec, nil
		}
		if strings.HasPrefix(string(spec.name), word) {
			found = append(found, spec)
		}
	}
	switch len(found) {
	case 0:
		return commandSpec{}, fmt.Errorf("unknown command: %s", word)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, spec := range found {
			names[i] = string(spec.name)
		}
		return commandSpec{}, fmt.Errorf("ambiguous command %q: %s", word, strings.Join(names, ", "))
	}
}

// commandHints lists the usage of every command the typed word could still
// become.
func commandHints(input string) []string {
	word := ""
	if fields := strings.Fields(strings.ToLower(input)); len(fields) > 0 {
		word = fields[0]
	}
	var hints []string
	for _, spec := range commandSpecs {
		if strings.HasPrefix(string(spec.name), word) {
			hints = append(hints, spec.usage)
		}
	}
	return hints
}

// PaletteSubmitMsg carries a command that parsed cleanly.
type PaletteSubmitMsg struct{ Command Command }

type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Teal).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Palette reads one plant command. A line that does not parse keeps the
// palette open with the error shown under the input.
type Palette struct {
	input   textinput.Model
	visible bool
	err     error
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "log, goal 2500, unit L…"
	ti.CharLimit = 32
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.err = nil
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			cmd, err := ParseCommand(p.input.Value())
			if errors.Is(err, errEmptyCommand) {
				p.close()
				return p, func() tea.Msg { return PaletteCancelMsg{} }
			}
			if err != nil {
				p.err = err
				return p, nil
			}
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Command: cmd} }
		}
	}
	p.err = nil
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.err = nil
	p.input.Blur()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Water the plant") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if p.err != nil {
		sb.WriteString(theme.Warn.Render("  "+p.err.Error()) + "\n")
	}
	if hints := commandHints(p.input.Value()); len(hints) > 0 {
		sb.WriteString("\n")
		for _, h := range hints {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 48
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
