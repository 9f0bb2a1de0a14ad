package baseoutput

import (
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
)

// retryWriterMetrics defines metrics of RetryWriter
type retryWriterMetrics struct {
	creationsTotal          promext.RWCounter
	terminalCreationErrors  promext.RWCounter
	transientCreationErrors promext.RWCounter
	writeAttemptsTotal      promext.RWCounter
	terminalWriteErrors     promext.RWCounter
	transientWriteErrors    promext.RWCounter
	writtenCountTotal       promext.RWCounter
	writtenLengthTotal      promext.RWCounter
}

func newRetryWriterMetrics(metricCreator promreg.MetricCreator) retryWriterMetrics {
	outputMetricCreator := metricCreator.AddOrGetPrefix("output_", nil, nil)
	creationErrors := outputMetricCreator.AddOrGetCounterVec("transport_creation_errors_total", "Numbers of failed transport creations", []string{"class"}, nil)
	writeErrors := outputMetricCreator.AddOrGetCounterVec("write_errors_total", "Numbers of failed record writes", []string{"class"}, nil)

	return retryWriterMetrics{
		creationsTotal:          outputMetricCreator.AddOrGetCounter("transport_creations_total", "Numbers of transport creation attempts", nil, nil),
		terminalCreationErrors:  creationErrors.WithLabelValues("terminal"),
		transientCreationErrors: creationErrors.WithLabelValues("transient"),
		writeAttemptsTotal:      outputMetricCreator.AddOrGetCounter("write_attempts_total", "Numbers of record write attempts", nil, nil),
		terminalWriteErrors:     writeErrors.WithLabelValues("terminal"),
		transientWriteErrors:    writeErrors.WithLabelValues("transient"),
		writtenCountTotal:       outputMetricCreator.AddOrGetCounter("written_records_total", "Numbers of written records", nil, nil),
		writtenLengthTotal:      outputMetricCreator.AddOrGetCounter("written_record_bytes_total", "Total length in bytes of written records", nil, nil),
	}
}

func (metrics *retryWriterMetrics) OnCreating() {
	metrics.creationsTotal.Inc()
}

func (metrics *retryWriterMetrics) OnCreationError(terminal bool) {
	if terminal {
		metrics.terminalCreationErrors.Inc()
	} else {
		metrics.transientCreationErrors.Inc()
	}
}

func (metrics *retryWriterMetrics) OnWriting() {
	metrics.writeAttemptsTotal.Inc()
}

func (metrics *retryWriterMetrics) OnWriteError(terminal bool) {
	if terminal {
		metrics.terminalWriteErrors.Inc()
	} else {
		metrics.transientWriteErrors.Inc()
	}
}

func (metrics *retryWriterMetrics) OnWritten(length int) {
	metrics.writtenCountTotal.Inc()
	metrics.writtenLengthTotal.Add(uint64(length))
}
