package out

import (
	"context"

	"github.com/charmbracelet/log"

	hydrationout "plant/internal/modules/hydration/port/out"
	widgetdto "plant/internal/modules/widget/dto"
	widgetin "plant/internal/modules/widget/port/in"
)

// WidgetPublisherAdapter forwards hydration changes to the widget module.
type WidgetPublisherAdapter struct {
	widget widgetin.Usecase
	logger *log.Logger
}

func NewWidgetPublisherAdapter(widget widgetin.Usecase, logger *log.Logger) hydrationout.SurfacePublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &WidgetPublisherAdapter{widget: widget, logger: logger}
}

func (a *WidgetPublisherAdapter) Publish(ctx context.Context, intakeML, goalML float64) {
	if a.widget == nil {
		return
	}
	out, err := a.widget.Publish(ctx, widgetdto.PublishInput{IntakeML: intakeML, GoalML: goalML})
	if err != nil {
		a.logger.Warn("widget publish failed", "err", err)
		return
	}
	for _, failure := range out.Failures {
		a.logger.Warn("widget sink failed", "sink", failure.Sink, "err", failure.Error)
	}
}
