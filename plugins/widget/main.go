package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-plugin"

	widgetrpc "plant/internal/modules/widget/adapter/out/rpc"
)

const mlPerOunce = 29.5735

// server renders a one-line widget face and, when PLANT_WIDGET_OUT is set,
// writes it to that file so other tools can pick it up.
type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *widgetrpc.Empty) (*widgetrpc.Metadata, error) {
	return &widgetrpc.Metadata{Name: "reference", Version: "1.0.0"}, nil
}

func (s *server) Reload(_ context.Context, in *widgetrpc.ReloadRequest) (*widgetrpc.ReloadResponse, error) {
	if in.DailyGoal <= 0 {
		return nil, fmt.Errorf("daily goal must be positive")
	}
	percent := in.WaterIntake / in.DailyGoal * 100
	if percent > 100 {
		percent = 100
	}
	rendered := fmt.Sprintf("%.1f / %.1f oz (%.0f%%)", in.WaterIntake/mlPerOunce, in.DailyGoal/mlPerOunce, percent)
	if out := os.Getenv("PLANT_WIDGET_OUT"); out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return nil, fmt.Errorf("create widget output dir: %w", err)
		}
		line := fmt.Sprintf("%s %s\n", time.Now().UTC().Format(time.RFC3339), rendered)
		if err := os.WriteFile(out, []byte(line), 0o644); err != nil {
			return nil, fmt.Errorf("write widget output: %w", err)
		}
	}
	return &widgetrpc.ReloadResponse{Rendered: rendered}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: widgetrpc.HandshakeConfig,
		Plugins:         widgetrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
