package dto

type GrowInput struct {
	Ratio float64
}

type ScalesInput struct {
	Ratio     float64
	LeafCount int
}

type TransitionOutput struct {
	Index           int     `json:"index"`
	Scale           float64 `json:"scale"`
	DurationSeconds float64 `json:"duration_seconds"`
	Easing          string  `json:"easing"`
}

type SwayOutput struct {
	Index           int     `json:"index"`
	Angle           float64 `json:"angle"`
	DurationSeconds float64 `json:"duration_seconds"`
	Easing          string  `json:"easing"`
	Repeat          string  `json:"repeat"`
	Seed            uint64  `json:"seed"`
	Generation      uint64  `json:"generation"`
}

type GrowOutput struct {
	Transitions []TransitionOutput `json:"transitions"`
	Sway        []SwayOutput       `json:"sway"`
}

type LeafOutput struct {
	Index   int     `json:"index"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	Stage   string  `json:"stage"`
	Swaying bool    `json:"swaying"`
}

type PlantOutput struct {
	Ratio      float64      `json:"ratio"`
	Generation uint64       `json:"generation"`
	Leaves     []LeafOutput `json:"leaves"`
}

// FrameLeaf is one leaf as a renderer should draw it at a point in time.
type FrameLeaf struct {
	Index int
	X     float64
	Y     float64
	Scale float64
	Angle float64
}

type FrameOutput struct {
	Generation uint64
	Leaves     []FrameLeaf
}
