package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	prom "github.com/prometheus/client_golang/prometheus"

	growthinadapter "plant/internal/modules/growth/adapter/in"
	growthoutadapter "plant/internal/modules/growth/adapter/out"
	growthservice "plant/internal/modules/growth/service"
	growthusecase "plant/internal/modules/growth/usecase"
	hydrationinadapter "plant/internal/modules/hydration/adapter/in"
	hydrationoutadapter "plant/internal/modules/hydration/adapter/out"
	hydrationservice "plant/internal/modules/hydration/service"
	hydrationusecase "plant/internal/modules/hydration/usecase"
	statsinadapter "plant/internal/modules/stats/adapter/in"
	statsoutadapter "plant/internal/modules/stats/adapter/out"
	statsservice "plant/internal/modules/stats/service"
	statsusecase "plant/internal/modules/stats/usecase"
	widgetinadapter "plant/internal/modules/widget/adapter/in"
	widgetoutadapter "plant/internal/modules/widget/adapter/out"
	widgetout "plant/internal/modules/widget/port/out"
	widgetservice "plant/internal/modules/widget/service"
	widgetusecase "plant/internal/modules/widget/usecase"
	"plant/internal/platform/clock"
	"plant/internal/platform/config"
	"plant/internal/platform/id"
	"plant/internal/platform/metrics"
	uiapp "plant/internal/ui/app"
)

type App struct {
	HydrationCLI hydrationinadapter.CLIHandler
	GrowthCLI    growthinadapter.CLIHandler
	GrowthTUI    growthinadapter.TUIHandler
	StatsCLI     statsinadapter.CLIHandler
	WidgetCLI    widgetinadapter.CLIHandler
	WidgetHTTP   *widgetinadapter.HTTPHandler
	Config       config.Config

	logger  *log.Logger
	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	recorder := metrics.NewPrometheusRecorder(prom.NewRegistry())
	app := &App{Config: cfg, logger: logger}

	snapshots, err := widgetoutadapter.NewSQLiteSnapshotStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new widget store: %w", err)
	}
	app.closers = append(app.closers, snapshots.Close)
	var sinks []widgetout.Sink
	if cfg.NATS.URL != "" {
		kv, err := widgetoutadapter.NewNATSKVSink(ctx, cfg.NATS.URL, cfg.NATS.Bucket)
		if err != nil {
			logger.Warn("nats widget sink disabled", "url", cfg.NATS.URL, "err", err)
		} else {
			sinks = append(sinks, kv)
			app.closers = append(app.closers, kv.Close)
		}
	}
	widgetUC := widgetusecase.NewInteractor(widgetservice.NewWidgetService(widgetservice.Options{
		Clock:     clk,
		IDs:       ids,
		Store:     snapshots,
		Sinks:     sinks,
		Manifests: widgetoutadapter.NewFileManifestStore(cfg.WidgetsPath),
		Host:      widgetoutadapter.NewGRPCHost(),
		Recorder:  recorder,
		Logger:    logger,
	}))

	stateStore, err := hydrationoutadapter.NewSQLiteStateStore(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new hydration store: %w", err)
	}
	app.closers = append(app.closers, stateStore.Close)
	hydrationUC := hydrationusecase.NewInteractor(hydrationservice.NewHydrationService(
		stateStore,
		hydrationoutadapter.NewWidgetPublisherAdapter(widgetUC, logger),
		recorder,
		logger,
	))

	growthSvc := growthservice.NewGrowthService(
		growthoutadapter.NewJSONAnchorSource(cfg.AnchorsPath),
		growthoutadapter.NewRandomSource(0),
		recorder,
		logger,
	)
	if err := growthSvc.Load(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	growthUC := growthusecase.NewInteractor(growthSvc)

	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(
		statsoutadapter.NewHydrationReaderAdapter(hydrationUC),
	))

	app.HydrationCLI = hydrationinadapter.NewCLIHandler(hydrationUC)
	app.GrowthCLI = growthinadapter.NewCLIHandler(growthUC)
	app.GrowthTUI = growthinadapter.NewTUIHandler(growthUC)
	app.StatsCLI = statsinadapter.NewCLIHandler(statsUC)
	app.WidgetCLI = widgetinadapter.NewCLIHandler(widgetUC)
	app.WidgetHTTP = widgetinadapter.NewHTTPHandler(widgetUC, recorder.Handler(), logger)
	return app, nil
}

// Close releases the databases and broker connections opened by New.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.HydrationCLI, app.GrowthTUI, app.StatsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if m, ok := final.(uiapp.Model); ok {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if stopErr := m.Shutdown(ctx); stopErr != nil {
			app.logger.Warn("stop sway", "err", stopErr)
		}
	}
	return err
}

// Serve exposes the widget surface on addr until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.WidgetHTTP,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("widget surface listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.logger.Info("shutting down widget surface")
	return srv.Shutdown(shutdownCtx)
}
