package in_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	widgetin "plant/internal/modules/widget/adapter/in"
	"plant/internal/modules/widget/dto"
	apperrors "plant/internal/platform/errors"
	"plant/internal/platform/logging"
)

type fakeUsecase struct {
	latest *dto.SnapshotOutput
}

func (f *fakeUsecase) Publish(context.Context, dto.PublishInput) (dto.PublishOutput, error) {
	return dto.PublishOutput{}, nil
}

func (f *fakeUsecase) Latest(context.Context) (dto.SnapshotOutput, error) {
	if f.latest == nil {
		return dto.SnapshotOutput{}, fmt.Errorf("%w: nothing yet", apperrors.ErrNotFound)
	}
	return *f.latest, nil
}

func (f *fakeUsecase) List(context.Context) ([]dto.WidgetInfo, error)     { return nil, nil }
func (f *fakeUsecase) Doctor(context.Context) ([]dto.DoctorResult, error) { return nil, nil }

func TestHealth(t *testing.T) {
	t.Parallel()
	h := widgetin.NewHTTPHandler(&fakeUsecase{}, nil, logging.Discard())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestWidgetReturnsLatestSnapshot(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	h := widgetin.NewHTTPHandler(&fakeUsecase{latest: &dto.SnapshotOutput{ID: "s1", IntakeML: 1250, GoalML: 2000, PublishedAt: at}}, nil, logging.Discard())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/widget", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success bool               `json:"success"`
		Data    dto.SnapshotOutput `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.IntakeML != 1250 || resp.Data.GoalML != 2000 || !resp.Data.PublishedAt.Equal(at) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWidgetNotFoundBeforePublish(t *testing.T) {
	t.Parallel()
	h := widgetin.NewHTTPHandler(&fakeUsecase{}, nil, logging.Discard())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/widget", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMetricsRouteDelegates(t *testing.T) {
	t.Parallel()
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("plant_glass_log_attempts_total 1\n"))
	})
	h := widgetin.NewHTTPHandler(&fakeUsecase{}, metrics, logging.Discard())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "plant_glass_log_attempts_total") {
		t.Fatalf("unexpected metrics response %d %q", w.Code, w.Body.String())
	}
}
