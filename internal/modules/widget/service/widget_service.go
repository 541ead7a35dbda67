package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"plant/internal/modules/widget/domain"
	"plant/internal/modules/widget/dto"
	widgetout "plant/internal/modules/widget/port/out"
	"plant/internal/platform/clock"
	"plant/internal/platform/id"
	"plant/internal/platform/metrics"
)

type WidgetService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     widgetout.SnapshotStore
	sinks     []widgetout.Sink
	manifests widgetout.ManifestStore
	host      widgetout.Host
	recorder  metrics.Recorder
	logger    *log.Logger
}

type Options struct {
	Clock     clock.Clock
	IDs       id.Generator
	Store     widgetout.SnapshotStore
	Sinks     []widgetout.Sink
	Manifests widgetout.ManifestStore
	Host      widgetout.Host
	Recorder  metrics.Recorder
	Logger    *log.Logger
}

func NewWidgetService(opts Options) *WidgetService {
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = id.UUID{}
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &WidgetService{
		clock:     opts.Clock,
		idGen:     opts.IDs,
		store:     opts.Store,
		sinks:     opts.Sinks,
		manifests: opts.Manifests,
		host:      opts.Host,
		recorder:  opts.Recorder,
		logger:    opts.Logger,
	}
}

// Publish writes the snapshot to the store, every extra sink, and then asks
// each enabled widget to reload. No sink failure stops the others and none is
// returned as an error; failures are listed in the output.
func (s *WidgetService) Publish(ctx context.Context, intakeML, goalML float64) (dto.PublishOutput, error) {
	snapshot := domain.Snapshot{
		ID:          s.idGen.New(),
		IntakeML:    intakeML,
		GoalML:      goalML,
		PublishedAt: s.clock.Now(),
	}
	if err := snapshot.Validate(); err != nil {
		return dto.PublishOutput{}, err
	}
	out := dto.PublishOutput{SnapshotID: snapshot.ID}
	deliver := func(name string, err error) {
		s.recorder.IncPublish(name, err == nil)
		if err != nil {
			s.logger.Debug("widget sink failed", "sink", name, "err", err)
			out.Failures = append(out.Failures, dto.SinkFailure{Sink: name, Error: err.Error()})
			return
		}
		out.Delivered = append(out.Delivered, name)
	}

	if s.store != nil {
		deliver(s.store.Name(), s.store.Put(ctx, snapshot))
	}
	for _, sink := range s.sinks {
		deliver(sink.Name(), sink.Put(ctx, snapshot))
	}
	s.reloadWidgets(ctx, snapshot, deliver)
	return out, nil
}

func (s *WidgetService) reloadWidgets(ctx context.Context, snapshot domain.Snapshot, deliver func(string, error)) {
	if s.manifests == nil || s.host == nil {
		return
	}
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		deliver("widgets", err)
		return
	}
	for _, m := range manifests {
		if !m.Enabled {
			continue
		}
		name := "widget:" + m.Name
		if err := m.Validate(); err != nil {
			deliver(name, err)
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			deliver(name, err)
			continue
		}
		result, err := s.host.Reload(ctx, m, snapshot)
		if err == nil {
			s.logger.Debug("widget reloaded", "widget", m.Name, "rendered", result.Rendered)
		}
		deliver(name, err)
	}
}

func (s *WidgetService) Latest(ctx context.Context) (domain.Snapshot, error) {
	if s.store == nil {
		return domain.Snapshot{}, fmt.Errorf("widget store is not configured")
	}
	return s.store.Latest(ctx)
}

func (s *WidgetService) List(ctx context.Context) ([]domain.Manifest, error) {
	if s.manifests == nil {
		return nil, nil
	}
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[m.Name]; ok {
			return nil, fmt.Errorf("duplicate widget name: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *WidgetService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	if s.manifests == nil {
		return nil, nil
	}
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read widget binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
