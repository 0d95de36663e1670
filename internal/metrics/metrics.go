package metrics

import "github.com/prometheus/client_golang/prometheus"

type IntegrationMetrics struct {
	ListFetches     *prometheus.CounterVec
	ListPages       prometheus.Counter
	StepSubmissions *prometheus.CounterVec
}

func NewIntegrationMetrics(reg prometheus.Registerer) *IntegrationMetrics {
	m := &IntegrationMetrics{
		ListFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_integration_list_fetches_total",
			Help: "Mailing list catalog fetches by provider and result.",
		}, []string{"provider", "result"}),
		ListPages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "form_integration_list_pages_total",
			Help: "Mailing list pages requested from providers.",
		}),
		StepSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_integration_step_submissions_total",
			Help: "Wizard step submissions by provider and outcome.",
		}, []string{"provider", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.ListFetches, m.ListPages, m.StepSubmissions)
	}
	return m
}

func (m *IntegrationMetrics) IncListFetch(provider, result string) {
	if m == nil || m.ListFetches == nil {
		return
	}
	m.ListFetches.WithLabelValues(provider, result).Inc()
}

func (m *IntegrationMetrics) IncListPage() {
	if m == nil || m.ListPages == nil {
		return
	}
	m.ListPages.Inc()
}

func (m *IntegrationMetrics) IncStepSubmission(provider, outcome string) {
	if m == nil || m.StepSubmissions == nil {
		return
	}
	m.StepSubmissions.WithLabelValues(provider, outcome).Inc()
}
