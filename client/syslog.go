package client

import (
	"os"
	"time"

	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

// Syslog holds the fixed part of records written by a program: facility, hostname, tag and how they're written
//
// Syslog is immutable; the With* methods return modified copies.
type Syslog struct {
	facility   syslogprotocol.Facility
	hostname   syslogprotocol.Hostname
	tag        syslogprotocol.Tag
	msgID      syslogprotocol.Tag
	pid        uint32
	format     Format
	recordSize int
	retryCount uint8
	clock      func() time.Time
}

// New creates a Syslog for RFC 3164 records from the current process, with the default retry count of 2
func New(facility syslogprotocol.Facility, hostname syslogprotocol.Hostname, tag syslogprotocol.Tag) *Syslog {
	return &Syslog{
		facility:   facility,
		hostname:   hostname,
		tag:        tag,
		msgID:      syslogprotocol.NilTag,
		pid:        uint32(os.Getpid()),
		format:     FormatRFC3164,
		recordSize: 0,
		retryCount: defs.DefaultRetryCount,
		clock:      time.Now,
	}
}

// WithRetryCount sets how many times a record is retried after the first failed attempt
func (s *Syslog) WithRetryCount(retryCount uint8) *Syslog {
	c := *s
	c.retryCount = retryCount
	return &c
}

// WithFormat sets the header format
func (s *Syslog) WithFormat(format Format) *Syslog {
	c := *s
	c.format = format
	return &c
}

// WithMsgID sets MSGID of RFC 5424 records. It's ignored for RFC 3164.
func (s *Syslog) WithMsgID(msgID syslogprotocol.Tag) *Syslog {
	c := *s
	c.msgID = msgID
	return &c
}

// WithPID overrides the process ID in headers
func (s *Syslog) WithPID(pid uint32) *Syslog {
	c := *s
	c.pid = pid
	return &c
}

// WithClock replaces the clock used to timestamp records; nil resets to time.Now
func (s *Syslog) WithClock(clock func() time.Time) *Syslog {
	c := *s
	if clock == nil {
		clock = time.Now
	}
	c.clock = clock
	return &c
}

// WithRecordSize sets the capacity of buffers created by NewBuffer, including header; 0 resets to default
func (s *Syslog) WithRecordSize(size int) *Syslog {
	c := *s
	c.recordSize = size
	return &c
}

// Facility returns the facility of all records
func (s *Syslog) Facility() syslogprotocol.Facility {
	return s.facility
}

// Hostname returns the hostname in headers
func (s *Syslog) Hostname() syslogprotocol.Hostname {
	return s.hostname
}

// Tag returns the tag (APP-NAME) in headers
func (s *Syslog) Tag() syslogprotocol.Tag {
	return s.tag
}

// Format returns the header format
func (s *Syslog) Format() Format {
	return s.format
}

// RetryCount returns the number of retries per record
func (s *Syslog) RetryCount() uint8 {
	return s.retryCount
}

// RecordSize returns the max size of each record including header
func (s *Syslog) RecordSize() int {
	switch {
	case s.recordSize > 0:
		return s.recordSize
	case s.format == FormatRFC5424:
		return defs.RFC5424DefaultRecordSize
	default:
		return defs.RFC3164RecordSize
	}
}

// NewBuffer creates a buffer of RecordSize() to be used by NewRecord
func (s *Syslog) NewBuffer() *util.BoundedBuffer {
	return util.NewBoundedBuffer(s.RecordSize())
}

// NewRecord starts a record with the header written to the given buffer, replacing any previous contents
//
// The caller must Close the returned RecordWriter, normally by defer, before the buffer can be reused.
func (s *Syslog) NewRecord(sender RecordSender, buffer *util.BoundedBuffer, severity syslogprotocol.Severity) *RecordWriter {
	buffer.Clear()
	s.writeHeader(buffer, severity)
	buffer.PushByte(' ')
	return &RecordWriter{
		sender:     sender,
		buffer:     buffer,
		severity:   severity,
		headerSize: buffer.Len(),
		retryCount: s.retryCount,
		closed:     false,
	}
}

func (s *Syslog) writeHeader(buffer *util.BoundedBuffer, severity syslogprotocol.Severity) {
	timestamp := syslogprotocol.NowTimestamp(s.clock)
	switch s.format {
	case FormatRFC5424:
		header := syslogprotocol.RFC5424Header{
			Priority:  severity.Priority(s.facility),
			Timestamp: timestamp,
			Hostname:  s.hostname,
			Tag:       s.tag,
			PID:       s.pid,
			MsgID:     s.msgID,
		}
		header.AppendTo(buffer)
	default:
		header := syslogprotocol.RFC3164Header{
			Priority:  severity.Priority(s.facility),
			Timestamp: timestamp,
			Hostname:  s.hostname,
			Tag:       s.tag,
			PID:       s.pid,
		}
		header.AppendTo(buffer)
	}
}

// NewRFC3164Buffer creates a buffer for RFC 3164 records of max 1024 bytes
func NewRFC3164Buffer() *util.BoundedBuffer {
	return util.NewBoundedBuffer(defs.RFC3164RecordSize)
}
