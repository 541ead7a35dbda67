package in

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	widgetin "plant/internal/modules/widget/port/in"
	apperrors "plant/internal/platform/errors"
)

// Response is the envelope every JSON endpoint writes.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HTTPHandler exposes the last published widget pair to companion displays
// that poll instead of running as a plugin.
type HTTPHandler struct {
	usecase widgetin.Usecase
	metrics http.Handler
	logger  *log.Logger
	router  *chi.Mux
}

func NewHTTPHandler(usecase widgetin.Usecase, metrics http.Handler, logger *log.Logger) *HTTPHandler {
	if logger == nil {
		logger = log.Default()
	}
	h := &HTTPHandler{usecase: usecase, metrics: metrics, logger: logger, router: chi.NewRouter()}
	h.setupRoutes()
	return h
}

func (h *HTTPHandler) setupRoutes() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.Recoverer)
	h.router.Use(h.requestLogger)
	h.router.Use(middleware.Timeout(10 * time.Second))

	h.router.Get("/health", h.handleHealth)
	h.router.Get("/widget", h.handleWidget)
	if h.metrics != nil {
		h.router.Method(http.MethodGet, "/metrics", h.metrics)
	}
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *HTTPHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

func (h *HTTPHandler) handleWidget(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.usecase.Latest(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, Response{Error: err.Error()})
			return
		}
		h.logger.Error("read widget snapshot", "err", err)
		writeJSON(w, http.StatusInternalServerError, Response{Error: "widget snapshot unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: snapshot})
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
