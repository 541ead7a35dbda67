package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"plant/internal/modules/widget/domain"
	widgetout "plant/internal/modules/widget/port/out"
)

type FileManifestStore struct {
	path string
}

// NewFileManifestStore reads widget manifests from a JSON file; relative
// binary paths resolve against the file's directory.
func NewFileManifestStore(path string) widgetout.ManifestStore {
	return &FileManifestStore{path: path}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read widget manifest store: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode widget manifests: %w", err)
	}
	base := filepath.Dir(s.path)
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(base, manifests[i].Binary))
		}
	}
	return manifests, nil
}
