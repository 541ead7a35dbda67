package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder on a private registry.
type PrometheusRecorder struct {
	registry      *prom.Registry
	glasses       *prom.CounterVec
	resets        prom.Counter
	goalUpdates   prom.Counter
	progressRatio prom.Gauge
	swayRestarts  prom.Counter
	swayLeaves    prom.Gauge
	publishes     *prom.CounterVec
}

func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		glasses: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "plant",
			Name:      "glass_log_attempts_total",
			Help:      "Glass log attempts by result",
		}, []string{"result"}),
		resets: prom.NewCounter(prom.CounterOpts{
			Namespace: "plant",
			Name:      "intake_resets_total",
			Help:      "Daily intake resets",
		}),
		goalUpdates: prom.NewCounter(prom.CounterOpts{
			Namespace: "plant",
			Name:      "goal_updates_total",
			Help:      "Accepted daily goal updates",
		}),
		progressRatio: prom.NewGauge(prom.GaugeOpts{
			Namespace: "plant",
			Name:      "progress_ratio",
			Help:      "Current intake divided by goal",
		}),
		swayRestarts: prom.NewCounter(prom.CounterOpts{
			Namespace: "plant",
			Name:      "sway_restarts_total",
			Help:      "Times the idle sway was regenerated",
		}),
		swayLeaves: prom.NewGauge(prom.GaugeOpts{
			Namespace: "plant",
			Name:      "sway_leaves",
			Help:      "Leaves covered by the current sway set",
		}),
		publishes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "plant",
			Name:      "widget_publishes_total",
			Help:      "Companion surface publishes by sink and result",
		}, []string{"sink", "result"}),
	}
	reg.MustRegister(pr.glasses, pr.resets, pr.goalUpdates, pr.progressRatio, pr.swayRestarts, pr.swayLeaves, pr.publishes)
	reg.MustRegister(promcollect.NewGoCollector())
	return pr
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) IncGlassLogged() {
	p.glasses.WithLabelValues("logged").Inc()
}

func (p *PrometheusRecorder) IncGlassBlocked() {
	p.glasses.WithLabelValues("at_goal").Inc()
}

func (p *PrometheusRecorder) IncReset() {
	p.resets.Inc()
}

func (p *PrometheusRecorder) IncGoalUpdate() {
	p.goalUpdates.Inc()
}

func (p *PrometheusRecorder) SetProgressRatio(ratio float64) {
	p.progressRatio.Set(ratio)
}

func (p *PrometheusRecorder) IncSwayRestart(leaves int) {
	p.swayRestarts.Inc()
	p.swayLeaves.Set(float64(leaves))
}

func (p *PrometheusRecorder) IncPublish(sink string, ok bool) {
	result := "failed"
	if ok {
		result = "ok"
	}
	p.publishes.WithLabelValues(sink, result).Inc()
}
