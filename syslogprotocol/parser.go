package syslogprotocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// rfc3164TimestampLen is the length of "Mon DD HH:MM:SS"
const rfc3164TimestampLen = 15

// ErrMalformedRecord is returned by parsers for any record not in the expected format
var ErrMalformedRecord = errors.New("malformed syslog record")

// Message is a parsed syslog record. Timestamp and PID are kept as text.
type Message struct {
	Facility  Facility
	Severity  Severity
	Timestamp string
	Hostname  string
	Tag       string
	PID       string
	MsgID     string // RFC 5424 only
	Body      string
}

// ParseRFC3164 parses a record in the format produced by RFC3164Header followed by a space and message body
func ParseRFC3164(record string) (Message, error) {
	msg := Message{}
	remaining, err := parsePriority(record, &msg)
	if err != nil {
		return msg, err
	}

	if len(remaining) < rfc3164TimestampLen+1 || remaining[rfc3164TimestampLen] != ' ' {
		return msg, malformed("invalid timestamp", record)
	}
	msg.Timestamp = remaining[:rfc3164TimestampLen]
	remaining = remaining[rfc3164TimestampLen+1:]

	ok, val, next := nextFieldBySpace(remaining)
	if !ok {
		return msg, malformed("missing hostname", record)
	}
	msg.Hostname = val
	remaining = next

	// TAG[PID]: body
	colon := strings.IndexByte(remaining, ':')
	if colon == -1 {
		return msg, malformed("unfinished header", record)
	}
	tagPart := remaining[:colon]
	if open := strings.IndexByte(tagPart, '['); open != -1 {
		if !strings.HasSuffix(tagPart, "]") {
			return msg, malformed("invalid pid", record)
		}
		msg.Tag = tagPart[:open]
		msg.PID = tagPart[open+1 : len(tagPart)-1]
	} else {
		msg.Tag = tagPart
	}
	msg.Body = strings.TrimPrefix(remaining[colon+1:], " ")
	return msg, nil
}

// ParseRFC5424 parses a record in the format produced by RFC5424Header followed by a space and message body
//
// A VERSION field of "1" after the priority is accepted and skipped.
func ParseRFC5424(record string) (Message, error) {
	msg := Message{}
	remaining, err := parsePriority(record, &msg)
	if err != nil {
		return msg, err
	}
	remaining = strings.TrimPrefix(remaining, "1 ")

	fields := [...]*string{&msg.Timestamp, &msg.Hostname, &msg.Tag, &msg.PID}
	for _, field := range fields {
		ok, val, next := nextFieldBySpace(remaining)
		if !ok {
			return msg, malformed("missing header field", record)
		}
		*field = val
		remaining = next
	}

	// MSGID is the last header field and may end the record
	if ok, val, next := nextFieldBySpace(remaining); ok {
		msg.MsgID = val
		msg.Body = next
	} else {
		msg.MsgID = remaining
	}
	if msg.MsgID == "" {
		return msg, malformed("missing msgid", record)
	}
	return msg, nil
}

// parsePriority parses "<PRI>" and returns the remaining text after it
func parsePriority(record string, msg *Message) (string, error) {
	if len(record) < 3 || record[0] != '<' {
		return "", malformed("invalid syslog", record)
	}
	end := strings.IndexByte(record, '>')
	if end == -1 || end > 4 {
		return "", malformed("unfinished pri", record)
	}
	priVal, err := strconv.ParseUint(record[1:end], 10, 8)
	if err != nil {
		return "", malformed(fmt.Sprintf("invalid pri value '%s'", record[1:end]), record)
	}
	msg.Facility, msg.Severity = SplitPriority(uint8(priVal))
	return record[end+1:], nil
}

// nextFieldBySpace takes next field value separated by space
// return (ok, value, remaining part not including space)
// Ex: "a b c" will return (true, "a", "b c")
func nextFieldBySpace(s string) (bool, string, string) {
	end := strings.IndexByte(s, ' ')
	if end == -1 {
		return false, "", ""
	}
	return true, s[:end], s[end+1:]
}

const maxQuotedRecordSize = 200 // enough to include all header fields and the start of message

func malformed(reason string, record string) error {
	if len(record) > maxQuotedRecordSize {
		record = record[:maxQuotedRecordSize] + "..."
	}
	return fmt.Errorf("%w: %s: %q", ErrMalformedRecord, reason, record)
}
