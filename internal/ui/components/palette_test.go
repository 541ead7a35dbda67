package components_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"plant/internal/ui/components"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input   string
		want    components.Command
		wantErr string
	}{
		{input: "log", want: components.Command{Name: components.CmdLog}},
		{input: "goal 2500", want: components.Command{Name: components.CmdGoal, AmountML: 2500}},
		{input: "GLASS 330", want: components.Command{Name: components.CmdGlass, AmountML: 330}},
		{input: "unit L", want: components.Command{Name: components.CmdUnit, Unit: "L"}},
		{input: "se", want: components.Command{Name: components.CmdSettings}},
		{input: "goal", wantErr: "usage: goal <ml>"},
		{input: "goal lots", wantErr: "invalid amount: lots"},
		{input: "g 1", wantErr: "ambiguous command"},
		{input: "water", wantErr: "unknown command: water"},
	}
	for _, tc := range cases {
		got, err := components.ParseCommand(tc.input)
		if tc.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("%q: expected error %q, got %v", tc.input, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v want %+v", tc.input, got, tc.want)
		}
	}
}

func TestPaletteKeepsInvalidLineOpen(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open()
	for _, r := range "goal" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || !p.Visible() {
		t.Fatalf("an incomplete command should keep the palette open")
	}
	if !strings.Contains(p.View(), "usage: goal <ml>") {
		t.Fatalf("expected usage hint in view:\n%s", p.View())
	}

	for _, r := range " 2500" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || p.Visible() {
		t.Fatalf("a valid command should close the palette")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Command.Name != components.CmdGoal || msg.Command.AmountML != 2500 {
		t.Fatalf("unexpected submit %#v", msg)
	}
}
