package home

import (
	"time"

	growthdomain "plant/internal/modules/growth/domain"
	growthdto "plant/internal/modules/growth/dto"
)

// scaleTween eases one leaf from its on-screen scale to a transition target.
type scaleTween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func (tw scaleTween) at(now time.Time) float64 {
	if tw.duration <= 0 {
		return tw.to
	}
	if !now.After(tw.start) {
		return tw.from
	}
	progress := float64(now.Sub(tw.start)) / float64(tw.duration)
	if progress >= 1 {
		return tw.to
	}
	return tw.from + (tw.to-tw.from)*growthdomain.EaseInOutProgress(progress)
}

// startTweens begins one tween per transition, each starting from whatever
// scale the leaf shows at now so an interrupted growth continues smoothly.
func startTweens(prev map[int]scaleTween, frame growthdto.FrameOutput, transitions []growthdto.TransitionOutput, now time.Time) map[int]scaleTween {
	next := make(map[int]scaleTween, len(transitions))
	for _, tr := range transitions {
		next[tr.Index] = scaleTween{
			from:     shownScale(prev, frame, tr.Index, now),
			to:       tr.Scale,
			start:    now,
			duration: time.Duration(tr.DurationSeconds * float64(time.Second)),
		}
	}
	return next
}

func shownScale(tweens map[int]scaleTween, frame growthdto.FrameOutput, index int, now time.Time) float64 {
	if tw, ok := tweens[index]; ok {
		return tw.at(now)
	}
	for _, leaf := range frame.Leaves {
		if leaf.Index == index {
			return leaf.Scale
		}
	}
	return 0
}

// easedFrame replaces each leaf's stored scale with its tweened scale at now.
func easedFrame(frame growthdto.FrameOutput, tweens map[int]scaleTween, now time.Time) growthdto.FrameOutput {
	if len(tweens) == 0 {
		return frame
	}
	out := growthdto.FrameOutput{Generation: frame.Generation, Leaves: make([]growthdto.FrameLeaf, len(frame.Leaves))}
	copy(out.Leaves, frame.Leaves)
	for i, leaf := range out.Leaves {
		if tw, ok := tweens[leaf.Index]; ok {
			out.Leaves[i].Scale = tw.at(now)
		}
	}
	return out
}
