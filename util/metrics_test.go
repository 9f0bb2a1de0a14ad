package util

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestSumMetricValues(t *testing.T) {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_sum_total"}, []string{"status"})
	assert.Equal(t, 0.0, SumMetricValues(counterVec))

	counterVec.WithLabelValues("sent").Add(3)
	counterVec.WithLabelValues("failed").Inc()
	assert.Equal(t, 4.0, SumMetricValues(counterVec))

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_sum_gauge"})
	gauge.Set(-2)
	assert.Equal(t, -2.0, SumMetricValues(gauge))
}
