package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for registrations and confirmation messages.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FarmersRegistered    prometheus.Counter
	RegistrationRejected *prometheus.CounterVec
	NotificationsSent    *prometheus.CounterVec
	NotificationDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FarmersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvesthub_farmers_registered_total",
			Help: "Total number of farmer accounts created",
		}),
		RegistrationRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "harvesthub_registrations_rejected_total",
			Help: "Registrations rejected, by reason",
		}, []string{"reason"}),
		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "harvesthub_confirmation_sms_total",
			Help: "Confirmation messages attempted, by result",
		}, []string{"result"}),
		NotificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "harvesthub_confirmation_sms_duration_seconds",
			Help:    "Time taken to hand a confirmation message to the transport",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
	}
}

// IncrementFarmersRegistered records a successful registration.
func (m *Metrics) IncrementFarmersRegistered() {
	if m == nil {
		return
	}
	m.FarmersRegistered.Inc()
}

// IncrementRegistrationRejected records a rejected registration.
func (m *Metrics) IncrementRegistrationRejected(reason string) {
	if m == nil {
		return
	}
	m.RegistrationRejected.WithLabelValues(reason).Inc()
}

// ObserveNotification records the outcome of one confirmation message.
// Call with time.Now() taken before the send.
func (m *Metrics) ObserveNotification(start time.Time, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.NotificationsSent.WithLabelValues(result).Inc()
	m.NotificationDuration.Observe(time.Since(start).Seconds())
}
