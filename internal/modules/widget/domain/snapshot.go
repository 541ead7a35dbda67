package domain

import (
	"fmt"
	"math"
	"time"
)

// Keys under which the companion surface reads the shared values.
const (
	KeyIntake = "waterIntake"
	KeyGoal   = "dailyGoal"
)

type Snapshot struct {
	ID          string    `json:"id"`
	IntakeML    float64   `json:"water_intake"`
	GoalML      float64   `json:"daily_goal"`
	PublishedAt time.Time `json:"published_at"`
}

func (s Snapshot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("snapshot id is required")
	}
	if s.IntakeML < 0 || math.IsNaN(s.IntakeML) || math.IsInf(s.IntakeML, 0) {
		return fmt.Errorf("snapshot intake must be a non-negative number")
	}
	if !(s.GoalML > 0) || math.IsInf(s.GoalML, 0) {
		return fmt.Errorf("snapshot goal must be positive")
	}
	return nil
}

// Pairs returns the snapshot as the key/value pairs a widget reads.
func (s Snapshot) Pairs() map[string]float64 {
	return map[string]float64{
		KeyIntake: s.IntakeML,
		KeyGoal:   s.GoalML,
	}
}
