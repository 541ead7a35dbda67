package out_test

import (
	"context"
	"errors"
	"testing"

	hydrationout "plant/internal/modules/hydration/adapter/out"
	widgetdto "plant/internal/modules/widget/dto"
	"plant/internal/platform/logging"
)

type fakeWidget struct {
	inputs []widgetdto.PublishInput
	err    error
}

func (f *fakeWidget) Publish(_ context.Context, input widgetdto.PublishInput) (widgetdto.PublishOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return widgetdto.PublishOutput{}, f.err
	}
	return widgetdto.PublishOutput{Failures: []widgetdto.SinkFailure{{Sink: "nats", Error: "not connected"}}}, nil
}

func (f *fakeWidget) Latest(context.Context) (widgetdto.SnapshotOutput, error) {
	return widgetdto.SnapshotOutput{}, nil
}
func (f *fakeWidget) List(context.Context) ([]widgetdto.WidgetInfo, error)     { return nil, nil }
func (f *fakeWidget) Doctor(context.Context) ([]widgetdto.DoctorResult, error) { return nil, nil }

func TestWidgetPublisherAdapterIsFireAndForget(t *testing.T) {
	t.Parallel()
	widget := &fakeWidget{}
	pub := hydrationout.NewWidgetPublisherAdapter(widget, logging.Discard())
	pub.Publish(context.Background(), 500, 2000)
	widget.err = errors.New("boom")
	pub.Publish(context.Background(), 750, 2000)
	if len(widget.inputs) != 2 {
		t.Fatalf("expected 2 forwarded publishes, got %d", len(widget.inputs))
	}
	if widget.inputs[1].IntakeML != 750 || widget.inputs[1].GoalML != 2000 {
		t.Fatalf("unexpected forwarded input %+v", widget.inputs[1])
	}
	hydrationout.NewWidgetPublisherAdapter(nil, nil).Publish(context.Background(), 1, 1)
}
