package dto

import "time"

type PublishInput struct {
	IntakeML float64
	GoalML   float64
}

type SinkFailure struct {
	Sink  string
	Error string
}

type PublishOutput struct {
	SnapshotID string
	Delivered  []string
	Failures   []SinkFailure
}

type SnapshotOutput struct {
	ID          string    `json:"id"`
	IntakeML    float64   `json:"water_intake"`
	GoalML      float64   `json:"daily_goal"`
	PublishedAt time.Time `json:"published_at"`
}

type WidgetInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}
