package csrf

import "github.com/prometheus/client_golang/prometheus"

type outcome string

const (
	outcomeVerified outcome = "verified"
	outcomeRejected outcome = "rejected"
	outcomeIgnored  outcome = "ignored"
	outcomeExcluded outcome = "excluded"
)

// Metrics counts protector outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	requests *prometheus.CounterVec
	secrets  prometheus.Counter
	tokens   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// It panics on duplicate registration, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csrf",
			Name:      "requests_total",
			Help:      "Requests seen by the CSRF protector, by outcome (verified, rejected, ignored, excluded).",
		}, []string{"outcome"}),
		secrets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csrf",
			Name:      "secrets_issued_total",
			Help:      "Secrets generated because the client had no usable secret cookie.",
		}),
		tokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csrf",
			Name:      "tokens_issued_total",
			Help:      "Tokens attached to responses.",
		}),
	}
	reg.MustRegister(m.requests, m.secrets, m.tokens)
	return m
}

func (m *Metrics) observe(o outcome) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(o)).Inc()
}

func (m *Metrics) secretIssued() {
	if m == nil {
		return
	}
	m.secrets.Inc()
}

func (m *Metrics) tokenIssued() {
	if m == nil {
		return
	}
	m.tokens.Inc()
}
