package out

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"plant/internal/modules/growth/domain"
	growthout "plant/internal/modules/growth/port/out"
)

//go:embed default_anchors.json
var defaultAnchors []byte

// JSONAnchorSource reads a JSON array of [x, y] pairs, one per leaf, in
// stagger order. With no path it serves the built-in plant.
type JSONAnchorSource struct {
	path string
}

func NewJSONAnchorSource(path string) growthout.AnchorSource {
	return &JSONAnchorSource{path: path}
}

func (s *JSONAnchorSource) Load(_ context.Context) ([]domain.Anchor, error) {
	raw := defaultAnchors
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read anchors: %w", err)
		}
		raw = b
	}
	return DecodeAnchors(raw)
}

func DecodeAnchors(raw []byte) ([]domain.Anchor, error) {
	var pairs [][]float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode anchors: %w", err)
	}
	anchors := make([]domain.Anchor, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("anchor %d: expected [x, y], got %d values", i, len(p))
		}
		anchors = append(anchors, domain.Anchor{X: p[0], Y: p[1]})
	}
	return anchors, nil
}
