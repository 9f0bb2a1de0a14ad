package baseoutput

import (
	"io"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/slog-syslog/base"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/syslogprotocol"
)

// RetryWriter writes records through a cached transport, creating a new one from the factory whenever needed
//
// A transport is kept only after a successful write and it's discarded on any failure. Each record is attempted
// up to retryCount+1 times, counting failed creations as attempts, unless the error is terminal.
//
// RetryWriter is not safe for concurrent use.
type RetryWriter struct {
	logger    logger.Logger
	factory   base.TransportFactory
	transport base.Transport // nil if there is no live transport
	metrics   retryWriterMetrics
}

// NewRetryWriter creates a RetryWriter without creating any transport
//
// metricCreator may be nil, in which case metrics are kept in a private factory.
func NewRetryWriter(parentLogger logger.Logger, factory base.TransportFactory, metricCreator promreg.MetricCreator) *RetryWriter {
	if metricCreator == nil {
		metricCreator = promreg.NewMetricFactory("", nil, nil)
	}
	return &RetryWriter{
		logger:    parentLogger.WithField(defs.LabelComponent, "RetryWriter"),
		factory:   factory,
		transport: nil,
		metrics:   newRetryWriterMetrics(metricCreator),
	}
}

// WriteRecord sends one complete record with the given severity and returns the last error if all attempts failed
//
// msg is not retained after the call.
func (writer *RetryWriter) WriteRecord(msg string, severity syslogprotocol.Severity, retryCount uint8) error {
	attempts := int(retryCount) + 1
	for {
		attempts--

		transport := writer.transport
		writer.transport = nil
		if transport == nil {
			writer.metrics.OnCreating()
			created, err := writer.factory.Create()
			if err != nil {
				terminal := base.IsTerminal(err)
				writer.metrics.OnCreationError(terminal)
				writer.logger.Debugf("failed to create transport (terminal=%t, attempts left=%d): %s", terminal, attempts, err.Error())
				if terminal || attempts <= 0 {
					return err
				}
				continue
			}
			writer.logger.Debugf("created transport %T", created)
			transport = created
		}

		writer.metrics.OnWriting()
		err := transport.Write(severity, msg)
		if err == nil {
			writer.transport = transport
			writer.metrics.OnWritten(len(msg))
			return nil
		}

		terminal := base.IsTerminal(err)
		writer.metrics.OnWriteError(terminal)
		writer.logger.Debugf("failed to write record (terminal=%t, attempts left=%d): %s", terminal, attempts, err.Error())
		writer.discard(transport)
		if terminal || attempts <= 0 {
			return err
		}
	}
}

// Close releases the cached transport if there is one
//
// The writer remains usable and would create a new transport for the next record.
func (writer *RetryWriter) Close() {
	if writer.transport != nil {
		writer.discard(writer.transport)
		writer.transport = nil
	}
}

func (writer *RetryWriter) discard(transport base.Transport) {
	closer, ok := transport.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		writer.logger.Debugf("failed to close transport: %s", err.Error())
	}
}
