package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	growthout "plant/internal/modules/growth/adapter/out"
)

func TestJSONAnchorSourceDefaultPlant(t *testing.T) {
	t.Parallel()
	anchors, err := growthout.NewJSONAnchorSource("").Load(context.Background())
	if err != nil {
		t.Fatalf("load default anchors: %v", err)
	}
	if len(anchors) == 0 {
		t.Fatalf("expected built-in anchors")
	}
	for i, a := range anchors {
		if err := a.Validate(); err != nil {
			t.Fatalf("default anchor %d invalid: %v", i, err)
		}
	}
}

func TestJSONAnchorSourceReadsPairs(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "leaf_anchors.json")
	if err := os.WriteFile(path, []byte(`[[0.25, 0.75], [1, 0]]`), 0o644); err != nil {
		t.Fatalf("write anchors: %v", err)
	}
	anchors, err := growthout.NewJSONAnchorSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load anchors: %v", err)
	}
	if len(anchors) != 2 || anchors[0].X != 0.25 || anchors[0].Y != 0.75 || anchors[1].X != 1 {
		t.Fatalf("unexpected anchors: %+v", anchors)
	}
}

func TestDecodeAnchorsRejectsMalformedPair(t *testing.T) {
	t.Parallel()
	if _, err := growthout.DecodeAnchors([]byte(`[[0.1, 0.2, 0.3]]`)); err == nil {
		t.Fatalf("expected error for three-value anchor")
	}
	if _, err := growthout.DecodeAnchors([]byte(`{"x": 1}`)); err == nil {
		t.Fatalf("expected error for non-array document")
	}
}

func TestSeededRandomSourceIsReproducible(t *testing.T) {
	t.Parallel()
	a := growthout.NewRandomSource(42)
	b := growthout.NewRandomSource(42)
	for i := 0; i < 16; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, x)
		}
	}
}
