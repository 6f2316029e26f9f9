package structs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricConst string

const (
	MetricQuoteDisplayed MetricConst = "ethprice_quote_displayed_total"
	MetricQuoteFailed    MetricConst = "ethprice_quote_failed_total"
)

func (m MetricConst) ToString() string {
	return string(m)
}

var metricHelp = map[MetricConst]string{
	MetricQuoteDisplayed: "Screen loads that displayed a formatted price.",
	MetricQuoteFailed:    "Screen loads that fell back to the failure text.",
}

type Metrics struct {
	Quote map[MetricConst]prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := Metrics{Quote: map[MetricConst]prometheus.Counter{}}

	for name, help := range metricHelp {
		metrics.Quote[name] = promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: name.ToString(),
			Help: help,
		})
	}

	return &metrics
}

// Inc is a no-op on a nil Metrics.
func (m *Metrics) Inc(name MetricConst) {
	if m == nil {
		return
	}

	if c, ok := m.Quote[name]; ok {
		c.Inc()
	}
}
