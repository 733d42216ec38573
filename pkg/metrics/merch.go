package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MerchMetrics records counters for the merchandising modal workflow.
type MerchMetrics struct {
	sessionsOpened *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	bonusApplied   prometheus.Counter
}

// NewMerchMetrics registers the workflow metrics on the provided registerer.
func NewMerchMetrics(reg prometheus.Registerer) *MerchMetrics {
	if reg == nil {
		return &MerchMetrics{}
	}
	sessionsOpened := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "merch_sessions_opened_total",
		Help: "Modal sessions opened, by product handle.",
	}, []string{"handle"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "merch_cart_submissions_total",
		Help: "Cart submissions, by result.",
	}, []string{"result"})
	bonusApplied := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "merch_bonus_applied_total",
		Help: "Submissions that included the promotional bonus item.",
	})
	reg.MustRegister(sessionsOpened, submissions, bonusApplied)
	return &MerchMetrics{
		sessionsOpened: sessionsOpened,
		submissions:    submissions,
		bonusApplied:   bonusApplied,
	}
}

// IncSessionOpened increments the opened-session counter for a handle.
func (m *MerchMetrics) IncSessionOpened(handle string) {
	if m == nil || m.sessionsOpened == nil {
		return
	}
	m.sessionsOpened.WithLabelValues(normalizeLabel(handle)).Inc()
}

// IncSubmission increments the submission counter for the given result label.
func (m *MerchMetrics) IncSubmission(result string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncBonusApplied increments the bonus counter.
func (m *MerchMetrics) IncBonusApplied() {
	if m == nil || m.bonusApplied == nil {
		return
	}
	m.bonusApplied.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
