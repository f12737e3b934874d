package providers

import (
	"time"

	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncPollsTotal(ok bool)
	ObservePollDuration(duration time.Duration)
	SetPresenceStatus(status string)
	SetMusicActive(active bool)
	IncPlaybackOps(op string)
	IncPlaybackRejected()
	IncContactAccepted()
	IncCacheHits()
	IncCacheMisses()
	SetStreamClients(count int)
}

var presenceStatuses = []string{"online", "idle", "dnd", "offline"}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	pollsTotal       *prometheus.CounterVec
	pollDuration     prometheus.Histogram
	presenceStatus   *prometheus.GaugeVec
	musicActive      prometheus.Gauge
	playbackOps      *prometheus.CounterVec
	playbackRejected prometheus.Counter
	contactAccepted  prometheus.Counter
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	streamClients    prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPollsTotal(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.pollsTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObservePollDuration(duration time.Duration) {
	m.pollDuration.Observe(duration.Seconds())
}

// SetPresenceStatus keeps exactly one status label at 1 so dashboards can
// group by status without a state mapping on their side.
func (m *MetricsProvider) SetPresenceStatus(status string) {
	for _, s := range presenceStatuses {
		v := 0.0
		if s == status {
			v = 1.0
		}
		m.presenceStatus.WithLabelValues(s).Set(v)
	}
}

func (m *MetricsProvider) SetMusicActive(active bool) {
	v := 0.0
	if active {
		v = 1.0
	}
	m.musicActive.Set(v)
}

func (m *MetricsProvider) IncPlaybackOps(op string) {
	m.playbackOps.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncPlaybackRejected() {
	m.playbackRejected.Inc()
}

func (m *MetricsProvider) IncContactAccepted() {
	m.contactAccepted.Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) SetStreamClients(count int) {
	m.streamClients.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "porfolio_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "porfolio_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		pollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "porfolio_presence_polls_total",
			Help: "Total number of presence polls by result",
		}, []string{"result"}),

		pollDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "porfolio_presence_poll_duration_seconds",
			Help:    "Presence poll round-trip duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		presenceStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "porfolio_presence_status",
			Help: "Current presence status (1 for the active status label)",
		}, []string{"status"}),

		musicActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "porfolio_music_session_active",
			Help: "Whether an external music session is currently active",
		}),

		playbackOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "porfolio_playback_ops_total",
			Help: "Total number of playback transport operations",
		}, []string{"op"}),

		playbackRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "porfolio_playback_rejected_total",
			Help: "Total number of playback starts rejected by the output",
		}),

		contactAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "porfolio_contact_accepted_total",
			Help: "Total number of accepted contact messages",
		}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "porfolio_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "porfolio_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		streamClients: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "porfolio_stream_clients",
			Help: "Current number of connected presence stream clients",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncPollsTotal(_ bool)                              {}
func (n *noopMetrics) ObservePollDuration(_ time.Duration)               {}
func (n *noopMetrics) SetPresenceStatus(_ string)                        {}
func (n *noopMetrics) SetMusicActive(_ bool)                             {}
func (n *noopMetrics) IncPlaybackOps(_ string)                           {}
func (n *noopMetrics) IncPlaybackRejected()                              {}
func (n *noopMetrics) IncContactAccepted()                               {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) SetStreamClients(_ int)                            {}
