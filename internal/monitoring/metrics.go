package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grandstay/internal/models"
)

// Metrics owns the prometheus registry of the service and mirrors the
// headline counters into a Monitor.
type Metrics struct {
	registry *prometheus.Registry
	monitor  *Monitor

	bookingsCreated prometheus.Counter
	bookingRevenue  prometheus.Counter
	transitions     *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	chatReplies     *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	wsClients       prometheus.GaugeFunc
}

// NewMetrics registers every collector on a fresh registry. clients may be
// nil when no websocket hub is running.
func NewMetrics(monitor *Monitor, clients func() int) *Metrics {
	if monitor == nil {
		monitor = NewMonitor()
	}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		monitor:  monitor,
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grandstay_bookings_created_total",
			Help: "Reservations created",
		}),
		bookingRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grandstay_booking_revenue_total",
			Help: "Sum of booking totals at creation",
		}),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grandstay_transitions_total",
				Help: "Applied status transitions",
			},
			[]string{"entity", "to"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grandstay_transitions_rejected_total",
				Help: "Status transitions refused by the transition tables",
			},
			[]string{"entity"},
		),
		chatReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grandstay_chat_replies_total",
				Help: "Assistant replies by outcome",
			},
			[]string{"role", "outcome"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grandstay_http_requests_total",
				Help: "HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grandstay_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
	if clients == nil {
		clients = func() int { return 0 }
	}
	m.wsClients = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "grandstay_websocket_clients",
		Help: "Connected notification clients",
	}, func() float64 { return float64(clients()) })

	m.registry.MustRegister(
		m.bookingsCreated,
		m.bookingRevenue,
		m.transitions,
		m.rejections,
		m.chatReplies,
		m.requests,
		m.requestDuration,
		m.wsClients,
	)
	return m
}

// Monitor returns the snapshot monitor fed by m.
func (m *Metrics) Monitor() *Monitor {
	return m.monitor
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) BookingCreated(b models.Booking) {
	m.bookingsCreated.Inc()
	m.bookingRevenue.Add(b.TotalAmount)
	m.monitor.RecordEvent("booking", "created")
}

func (m *Metrics) Transition(entity, _ string, to string) {
	m.transitions.WithLabelValues(entity, to).Inc()
	m.monitor.RecordEvent(entity, "transition")
}

func (m *Metrics) TransitionRejected(entity, _ string, _ string) {
	m.rejections.WithLabelValues(entity).Inc()
	m.monitor.RecordEvent(entity, "rejected")
}

func (m *Metrics) ChatReply(role, outcome string) {
	m.chatReplies.WithLabelValues(role, outcome).Inc()
	m.monitor.RecordEvent("chat", outcome)
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}
