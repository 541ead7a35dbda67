package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrWidgetDisabled   = errors.New("widget is disabled")
	ErrChecksumMismatch = errors.New("widget checksum mismatch")
	ErrWidgetTimeout    = errors.New("widget timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes a companion widget binary served over go-plugin.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("widget name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("widget version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("widget binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("widget sha256 must be lowercase 64-char hex")
	}
	return nil
}

// ReloadResult is what a widget reports after re-reading a snapshot.
type ReloadResult struct {
	Rendered string
}
