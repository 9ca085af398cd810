// Package metrics exposes Prometheus collectors for alert and confirmation traffic.
//
// A nil *Collector is valid and records nothing, so components can take one
// optionally without nil checks at every call site.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "toast"

// Collector groups the toast metrics.
type Collector struct {
	alertsEnqueued       *prometheus.CounterVec
	alertsRemoved        *prometheus.CounterVec
	confirmationsSettled *prometheus.CounterVec
	dispatchDropped      *prometheus.CounterVec
	activeAlerts         prometheus.Gauge
	pendingConfirmations prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// Collectors that are already registered (for example by a previous New with the
// same namespace on the same registry) are reused.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		alertsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "alerts_enqueued_total", Help: "Alerts added to a queue, by kind.",
		}, []string{"kind"}),
		alertsRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "alerts_removed_total", Help: "Alerts removed from a queue, by reason.",
		}, []string{"reason"}),
		confirmationsSettled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "confirmations_settled_total", Help: "Confirmations settled, by result.",
		}, []string{"result"}),
		dispatchDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "dispatch_dropped_total", Help: "Dispatcher calls made while no sink was subscribed, by call.",
		}, []string{"call"}),
		activeAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "active_alerts", Help: "Alerts currently visible across all queues.",
		}),
		pendingConfirmations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "pending_confirmations", Help: "Confirmations currently awaiting an answer across all queues.",
		}),
	}

	var err error
	c.alertsEnqueued, err = register(reg, c.alertsEnqueued)
	if err != nil {
		return nil, err
	}
	if c.alertsRemoved, err = register(reg, c.alertsRemoved); err != nil {
		return nil, err
	}
	if c.confirmationsSettled, err = register(reg, c.confirmationsSettled); err != nil {
		return nil, err
	}
	if c.dispatchDropped, err = register(reg, c.dispatchDropped); err != nil {
		return nil, err
	}
	if c.activeAlerts, err = register(reg, c.activeAlerts); err != nil {
		return nil, err
	}
	if c.pendingConfirmations, err = register(reg, c.pendingConfirmations); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(reg prometheus.Registerer, namespace string) *Collector {
	c, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// AlertEnqueued counts a new alert of kind.
func (c *Collector) AlertEnqueued(kind string) {
	if c == nil {
		return
	}
	c.alertsEnqueued.WithLabelValues(kind).Inc()
	c.activeAlerts.Inc()
}

// AlertRemoved counts an alert leaving a queue.
func (c *Collector) AlertRemoved(reason string) {
	if c == nil {
		return
	}
	c.alertsRemoved.WithLabelValues(reason).Inc()
	c.activeAlerts.Dec()
}

// ConfirmationEnqueued tracks a new pending confirmation.
func (c *Collector) ConfirmationEnqueued() {
	if c == nil {
		return
	}
	c.pendingConfirmations.Inc()
}

// ConfirmationSettled counts a settled confirmation by result ("confirmed" or "cancelled").
func (c *Collector) ConfirmationSettled(result string) {
	if c == nil {
		return
	}
	c.confirmationsSettled.WithLabelValues(result).Inc()
	c.pendingConfirmations.Dec()
}

// DispatchDropped counts a dispatcher call that found no sink.
func (c *Collector) DispatchDropped(call string) {
	if c == nil {
		return
	}
	c.dispatchDropped.WithLabelValues(call).Inc()
}
