package client

import (
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

// Logger writes each message as one or more records through a RecordSender, with buffers provided by caller
//
// Logger is not safe for concurrent use.
type Logger struct {
	syslog *Syslog
	sender RecordSender
}

// NewLogger creates a Logger
func NewLogger(syslog *Syslog, sender RecordSender) *Logger {
	return &Logger{
		syslog: syslog,
		sender: sender,
	}
}

// Syslog returns the record settings of this Logger
func (l *Logger) Syslog() *Syslog {
	return l.syslog
}

// WriteString writes text as a complete message using the given buffer, which is cleared afterwards
func (l *Logger) WriteString(buffer *util.BoundedBuffer, severity syslogprotocol.Severity, text string) error {
	record := l.syslog.NewRecord(l.sender, buffer, severity)
	defer record.Close()

	if err := record.WriteString(text); err != nil {
		return err
	}
	return record.FlushWithoutClear()
}

// Record starts a record in the given buffer, to be written in pieces
func (l *Logger) Record(buffer *util.BoundedBuffer, severity syslogprotocol.Severity) *RecordWriter {
	return l.syslog.NewRecord(l.sender, buffer, severity)
}

// WithBuffer creates a BufferedLogger sharing the same sender
func (l *Logger) WithBuffer() *BufferedLogger {
	return &BufferedLogger{
		inner:  l,
		buffer: l.syslog.NewBuffer(),
	}
}

// Close releases the sender if it has anything to release, e.g. the cached transport of RetryWriter
func (l *Logger) Close() {
	if closer, ok := l.sender.(interface{ Close() }); ok {
		closer.Close()
	}
}

// BufferedLogger is a Logger with its own buffer
//
// BufferedLogger is not safe for concurrent use.
type BufferedLogger struct {
	inner  *Logger
	buffer *util.BoundedBuffer
}

// NewBufferedLogger creates a BufferedLogger with a new buffer of syslog.RecordSize()
func NewBufferedLogger(syslog *Syslog, sender RecordSender) *BufferedLogger {
	return NewLogger(syslog, sender).WithBuffer()
}

// Syslog returns the record settings of this Logger
func (l *BufferedLogger) Syslog() *Syslog {
	return l.inner.syslog
}

// WriteString writes text as a complete message
func (l *BufferedLogger) WriteString(severity syslogprotocol.Severity, text string) error {
	return l.inner.WriteString(l.buffer, severity, text)
}

// Record starts a record in the internal buffer
//
// The RecordWriter must be closed before the next call to this BufferedLogger.
func (l *BufferedLogger) Record(severity syslogprotocol.Severity) *RecordWriter {
	return l.inner.Record(l.buffer, severity)
}

// Close releases the sender. See Logger.Close.
func (l *BufferedLogger) Close() {
	l.inner.Close()
}
