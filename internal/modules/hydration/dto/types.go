package dto

type StateOutput struct {
	IntakeML      float64
	GoalML        float64
	Unit          string
	GlassSizeML   float64
	ProgressRatio float64
	IntakeText    string
	GoalText      string
	GlassText     string
	Headline      string
}

type LogGlassOutput struct {
	State  StateOutput
	Logged bool
}

type UpdateGoalInput struct {
	GoalML float64
}

type SetUnitInput struct {
	Unit string
}

type SetGlassSizeInput struct {
	GlassSizeML float64
}

type FormatInput struct {
	AmountML float64
}

type RoundInput struct {
	AmountML  float64
	OunceStep float64
	LiterStep float64
}
