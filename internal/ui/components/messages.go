package components

import hydrationdto "plant/internal/modules/hydration/dto"

// StateChangedMsg is broadcast after any hydration mutation so every tab can
// refresh from the same state.
type StateChangedMsg struct {
	State  hydrationdto.StateOutput
	Status string
}

// ErrorMsg reports a failed command to the status bar.
type ErrorMsg struct{ Err error }
