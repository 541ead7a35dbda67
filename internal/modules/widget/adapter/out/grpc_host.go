package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	widgetrpc "plant/internal/modules/widget/adapter/out/rpc"
	"plant/internal/modules/widget/domain"
	widgetout "plant/internal/modules/widget/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 2 * time.Second
)

// GRPCHost launches widget binaries through go-plugin for a single call each.
type GRPCHost struct{}

func NewGRPCHost() widgetout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	if meta.Name != manifest.Name {
		return fmt.Errorf("widget reports name %q, manifest has %q", meta.Name, manifest.Name)
	}
	return nil
}

func (h *GRPCHost) Reload(ctx context.Context, manifest domain.Manifest, snapshot domain.Snapshot) (domain.ReloadResult, error) {
	if !manifest.Enabled {
		return domain.ReloadResult{}, fmt.Errorf("%w: %s", domain.ErrWidgetDisabled, manifest.Name)
	}
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.ReloadResult{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Reload(callCtx, &widgetrpc.ReloadRequest{
		SnapshotID:  snapshot.ID,
		WaterIntake: snapshot.IntakeML,
		DailyGoal:   snapshot.GoalML,
		PublishedAt: snapshot.PublishedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return domain.ReloadResult{}, fmt.Errorf("%w: %s", domain.ErrWidgetTimeout, manifest.Name)
		}
		return domain.ReloadResult{}, fmt.Errorf("reload widget: %w", err)
	}
	return domain.ReloadResult{Rendered: response.Rendered}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (widgetrpc.WidgetClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  widgetrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          widgetrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start widget client: %w", err)
	}
	raw, err := rpcClient.Dispense(widgetrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense widget: %w", err)
	}
	typed, ok := raw.(widgetrpc.WidgetClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("widget rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
