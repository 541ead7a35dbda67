package metrics

// Recorder receives hydration, animation and publication events.
type Recorder interface {
	IncGlassLogged()
	IncGlassBlocked()
	IncReset()
	IncGoalUpdate()
	SetProgressRatio(ratio float64)
	IncSwayRestart(leaves int)
	IncPublish(sink string, ok bool)
}

type NoopRecorder struct{}

func (NoopRecorder) IncGlassLogged()          {}
func (NoopRecorder) IncGlassBlocked()         {}
func (NoopRecorder) IncReset()                {}
func (NoopRecorder) IncGoalUpdate()           {}
func (NoopRecorder) SetProgressRatio(float64) {}
func (NoopRecorder) IncSwayRestart(int)       {}
func (NoopRecorder) IncPublish(string, bool)  {}
