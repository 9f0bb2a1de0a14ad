package client

import (
	"errors"
	"unicode/utf8"

	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

var (
	// ErrRecordClosed is returned from writes and flushes on a closed RecordWriter
	ErrRecordClosed = errors.New("record already closed")

	// ErrRecordCapacity is returned when the buffer has no room for anything after the header
	ErrRecordCapacity = errors.New("record buffer is too small for any message body")
)

// RecordSender sends complete records, e.g. baseoutput.RetryWriter
type RecordSender interface {
	WriteRecord(msg string, severity syslogprotocol.Severity, retryCount uint8) error
}

// RecordWriter writes one logical message, which is split into as many records as needed when it doesn't fit
// into the buffer. Each record carries the same header.
//
// Nothing is sent until the buffer is full or Flush is called. Close discards anything not flushed.
type RecordWriter struct {
	sender     RecordSender
	buffer     *util.BoundedBuffer
	severity   syslogprotocol.Severity
	headerSize int // header and the space after it
	retryCount uint8
	closed     bool
}

// WriteString appends text to the record, sending the record each time the buffer becomes full
//
// Text is split between UTF-8 characters, unless the body has no room for a whole character.
func (r *RecordWriter) WriteString(text string) error {
	if r.closed {
		return ErrRecordClosed
	}
	for {
		consumed := r.buffer.Push(text)
		if consumed < len(text) {
			// cut at a character boundary unless it'd leave nothing after header
			cut := consumed
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut < consumed && r.buffer.Len()-(consumed-cut) > r.headerSize {
				r.buffer.Truncate(r.buffer.Len() - (consumed - cut))
				consumed = cut
			}
		}
		text = text[consumed:]
		if len(text) == 0 {
			return nil
		}
		if consumed == 0 && r.buffer.Len() <= r.headerSize {
			return ErrRecordCapacity
		}
		if err := r.Flush(); err != nil {
			return err
		}
	}
}

// Write appends p to the record. See WriteString.
func (r *RecordWriter) Write(p []byte) (int, error) {
	if err := r.WriteString(util.StringFromBytes(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush sends the current record if there is anything after header, and then clears the body
//
// The body is kept if sending fails.
func (r *RecordWriter) Flush() error {
	if r.closed {
		return ErrRecordClosed
	}
	if r.buffer.Len() <= r.headerSize {
		return nil
	}
	if err := r.send(); err != nil {
		return err
	}
	r.buffer.Truncate(r.headerSize)
	return nil
}

// FlushWithoutClear sends the current record if there is anything after header, keeping the body in buffer
func (r *RecordWriter) FlushWithoutClear() error {
	if r.closed {
		return ErrRecordClosed
	}
	if r.buffer.Len() <= r.headerSize {
		return nil
	}
	return r.send()
}

// Clear drops the unsent body and keeps the header
func (r *RecordWriter) Clear() {
	if !r.closed {
		r.buffer.Truncate(r.headerSize)
	}
}

// Len returns the length of the current record including header
func (r *RecordWriter) Len() int {
	if r.closed {
		return 0
	}
	return r.buffer.Len()
}

// HeaderSize returns the length of header including the space separating it from body
func (r *RecordWriter) HeaderSize() int {
	return r.headerSize
}

// Close clears the whole buffer without flushing
func (r *RecordWriter) Close() {
	if r.closed {
		return
	}
	r.buffer.Clear()
	r.closed = true
}

func (r *RecordWriter) send() error {
	return r.sender.WriteRecord(r.buffer.String(), r.severity, r.retryCount)
}
