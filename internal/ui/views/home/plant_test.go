package home_test

import (
	"strings"
	"testing"

	growthdto "plant/internal/modules/growth/dto"
	"plant/internal/ui/views/home"
)

func TestRenderPlantDormantHasNoLeaves(t *testing.T) {
	t.Parallel()
	frame := growthdto.FrameOutput{Leaves: []growthdto.FrameLeaf{{Index: 0, X: 0.2, Y: 0.5, Scale: 0}}}
	out := home.RenderPlant(frame, 30, 12)
	if strings.Contains(out, "❦") || strings.Contains(out, "∘") {
		t.Fatalf("dormant leaves must not be drawn:\n%s", out)
	}
	if !strings.Contains(out, "│") || !strings.Contains(out, "[") {
		t.Fatalf("expected a sprout stem and a pot:\n%s", out)
	}
}

func TestRenderPlantDrawsGrowthStages(t *testing.T) {
	t.Parallel()
	frame := growthdto.FrameOutput{Leaves: []growthdto.FrameLeaf{
		{Index: 0, X: 0.1, Y: 0.9, Scale: 1},
		{Index: 1, X: 0.9, Y: 0.6, Scale: 0.5},
		{Index: 2, X: 0.1, Y: 0.2, Scale: 0.1},
	}}
	out := home.RenderPlant(frame, 30, 12)
	for _, glyph := range []string{"❦", "∘", "."} {
		if !strings.Contains(out, glyph) {
			t.Fatalf("expected glyph %q in:\n%s", glyph, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
}

func TestRenderPlantSwayShiftsLeaf(t *testing.T) {
	t.Parallel()
	still := growthdto.FrameOutput{Leaves: []growthdto.FrameLeaf{{X: 0.2, Y: 0.8, Scale: 1}}}
	swayed := growthdto.FrameOutput{Leaves: []growthdto.FrameLeaf{{X: 0.2, Y: 0.8, Scale: 1, Angle: 0.015}}}
	a := home.RenderPlant(still, 30, 12)
	b := home.RenderPlant(swayed, 30, 12)
	if a == b {
		t.Fatalf("a full sway should move the leaf")
	}
}
