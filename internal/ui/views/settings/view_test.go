package settings_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	hydrationdto "plant/internal/modules/hydration/dto"
	"plant/internal/ui/components"
	"plant/internal/ui/views/settings"
)

type fakePort struct {
	state hydrationdto.StateOutput
	goals []float64
}

func (f *fakePort) SetUnit(_ context.Context, unit string) (hydrationdto.StateOutput, error) {
	f.state.Unit = unit
	return f.state, nil
}

func (f *fakePort) SetGoal(_ context.Context, goalML float64) (hydrationdto.StateOutput, error) {
	f.goals = append(f.goals, goalML)
	f.state.GoalML = goalML
	return f.state, nil
}

func (f *fakePort) SetGlassSize(_ context.Context, sizeML float64) (hydrationdto.StateOutput, error) {
	f.state.GlassSizeML = sizeML
	return f.state, nil
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleUnitBroadcastsState(t *testing.T) {
	t.Parallel()
	port := &fakePort{state: hydrationdto.StateOutput{Unit: "oz", GoalML: 2000}}
	m := settings.New(port)
	m, _ = m.Update(components.StateChangedMsg{State: port.state})
	_, cmd := m.Update(keys("u"))
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(components.StateChangedMsg)
	if !ok {
		t.Fatalf("expected state change message")
	}
	if msg.State.Unit != "L" {
		t.Fatalf("expected unit toggled to L, got %s", msg.State.Unit)
	}
}

func TestEditGoalSubmitsNumber(t *testing.T) {
	t.Parallel()
	port := &fakePort{state: hydrationdto.StateOutput{Unit: "oz", GoalML: 2000}}
	m := settings.New(port)
	m, _ = m.Update(components.StateChangedMsg{State: port.state})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing() {
		t.Fatalf("enter on goal should open the input")
	}
	m, _ = m.Update(keys("2500"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Editing() || cmd == nil {
		t.Fatalf("enter should submit the value")
	}
	if _, ok := cmd().(components.StateChangedMsg); !ok {
		t.Fatalf("expected state change message")
	}
	if len(port.goals) != 1 || port.goals[0] != 2500 {
		t.Fatalf("unexpected goal updates %v", port.goals)
	}
}

func TestEditRejectsNonNumber(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	m := settings.New(port)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keys("lots"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := cmd().(components.ErrorMsg); !ok {
		t.Fatalf("expected an error message for non-numeric input")
	}
	if len(port.goals) != 0 {
		t.Fatalf("invalid input must not reach the port")
	}
}
