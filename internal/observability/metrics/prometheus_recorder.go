package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sleep_remind"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	arms           *prom.CounterVec
	cancels        *prom.CounterVec
	sweepRemoved   prom.Counter
	sweepExhausted prom.Counter
	updateDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		arms: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_armed_total",
			Help:      "One-shot notifications armed by kind and outcome",
		}, []string{"kind", "outcome"}),
		cancels: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_cancelled_total",
			Help:      "Notification cancellations by outcome",
		}, []string{"outcome"}),
		sweepRemoved: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_removed_total",
			Help:      "Stray sleep reminders removed by the sweep",
		}),
		sweepExhausted: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_exhausted_total",
			Help:      "Sweeps that gave up with sleep reminders still scheduled",
		}),
		updateDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "schedule_update_duration_seconds",
			Help:      "Duration of schedule updates",
			Buckets:   prom.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(pr.arms, pr.cancels, pr.sweepRemoved, pr.sweepExhausted, pr.updateDuration)

	return pr
}

func (p *PrometheusRecorder) IncArm(kind string, outcome Outcome) {
	if p == nil || p.arms == nil {
		return
	}

	p.arms.WithLabelValues(kind, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncCancel(outcome Outcome) {
	if p == nil || p.cancels == nil {
		return
	}

	p.cancels.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddSweepRemoved(n int) {
	if p == nil || p.sweepRemoved == nil || n <= 0 {
		return
	}

	p.sweepRemoved.Add(float64(n))
}

func (p *PrometheusRecorder) IncSweepExhausted() {
	if p == nil || p.sweepExhausted == nil {
		return
	}

	p.sweepExhausted.Inc()
}

func (p *PrometheusRecorder) ObserveUpdateDuration(outcome Outcome, d time.Duration) {
	if p == nil || p.updateDuration == nil {
		return
	}

	p.updateDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
}
