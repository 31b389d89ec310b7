package grove

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports file lifecycle counters to Prometheus.
type Metrics struct {
	files           prometheus.Gauge
	pendingRemovals prometheus.Gauge
	expired         prometheus.Counter
	revived         prometheus.Counter
	removed         prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		files: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "grove_files",
			Help: "Number of tracked files",
		}),
		pendingRemovals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "grove_pending_removals",
			Help: "Number of expired files waiting for the collector",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grove_files_expired_total",
			Help: "Total number of files that faded out and expired",
		}),
		revived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grove_files_revived_total",
			Help: "Total number of expiring files touched back to life",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grove_files_removed_total",
			Help: "Total number of files finalized by the collector",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.files, m.pendingRemovals, m.expired, m.revived, m.removed)
	}
	return m
}

func (m *Metrics) observe(files, pending int) {
	if m == nil {
		return
	}
	m.files.Set(float64(files))
	m.pendingRemovals.Set(float64(pending))
}

func (m *Metrics) countExpired() {
	if m != nil {
		m.expired.Inc()
	}
}

func (m *Metrics) countRevived() {
	if m != nil {
		m.revived.Inc()
	}
}

func (m *Metrics) countRemoved() {
	if m != nil {
		m.removed.Inc()
	}
}
