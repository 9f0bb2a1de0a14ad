package syslogprotocol

import (
	"strconv"

	"github.com/relex/slog-syslog/util"
)

// RFC3164HeaderSize is the max possible length of RFC 3164 header
const RFC3164HeaderSize = 3 + 2 + // priority (u8) wrapped in <>
	3 + 1 + 2 + 1 + // month abbreviation, day padded with space to 2 characters
	8 + 1 + // time in HH:MM:SS
	HostnameMaxLen + 1 +
	TagMaxLen +
	2 + 10 + // PID (u32) wrapped in []
	1 // ':' before message, the space after it isn't part of the header

// RFC5424HeaderSize is the max possible length of RFC 5424 header
const RFC5424HeaderSize = 3 + 2 + // priority (u8) wrapped in <>
	20 + 1 + // timestamp in YYYY-MM-DDTHH:MM:SSZ
	HostnameMaxLen + 1 +
	TagMaxLen + 1 +
	10 + 1 + // PID (u32)
	TagMaxLen // MSGID

// RFC3164Header is the header of RFC 3164 (BSD syslog) record: "<PRI>Mon DD HH:MM:SS HOSTNAME TAG[PID]:"
type RFC3164Header struct {
	Priority  uint8
	Timestamp Timestamp
	Hostname  Hostname
	Tag       Tag
	PID       uint32
}

// AppendTo writes the header to the given buffer
//
// The buffer must have at least RFC3164HeaderSize bytes remaining, or the header would be cut.
func (h *RFC3164Header) AppendTo(out *util.BoundedBuffer) {
	ts := &h.Timestamp
	appendPriority(out, h.Priority)
	out.Push(ts.RFC3164Month())
	out.PushByte(' ')
	appendPadded(out, uint64(ts.Day), 2, ' ')
	out.PushByte(' ')
	appendClock(out, ts)
	out.PushByte(' ')
	out.Push(h.Hostname.String())
	out.PushByte(' ')
	out.Push(h.Tag.String())
	out.PushByte('[')
	appendPadded(out, uint64(h.PID), 0, '0')
	out.Push("]:")
}

// String returns the formatted header
func (h *RFC3164Header) String() string {
	out := util.NewBoundedBuffer(RFC3164HeaderSize)
	h.AppendTo(out)
	return string(out.Bytes())
}

// RFC5424Header is the header of RFC 5424 record: "<PRI>YYYY-MM-DDTHH:MM:SSZ HOSTNAME TAG PID MSGID"
type RFC5424Header struct {
	Priority  uint8
	Timestamp Timestamp
	Hostname  Hostname
	Tag       Tag
	PID       uint32
	MsgID     Tag // NilTag to omit
}

// AppendTo writes the header to the given buffer
//
// The buffer must have at least RFC5424HeaderSize bytes remaining, or the header would be cut.
func (h *RFC5424Header) AppendTo(out *util.BoundedBuffer) {
	ts := &h.Timestamp
	appendPriority(out, h.Priority)
	appendPadded(out, uint64(ts.Year), 4, '0')
	out.PushByte('-')
	appendPadded(out, uint64(ts.Month)+1, 2, '0')
	out.PushByte('-')
	appendPadded(out, uint64(ts.Day), 2, '0')
	out.PushByte('T')
	appendClock(out, ts)
	out.Push("Z ")
	out.Push(h.Hostname.String())
	out.PushByte(' ')
	out.Push(h.Tag.String())
	out.PushByte(' ')
	appendPadded(out, uint64(h.PID), 0, '0')
	out.PushByte(' ')
	out.Push(h.MsgID.String())
}

// String returns the formatted header
func (h *RFC5424Header) String() string {
	out := util.NewBoundedBuffer(RFC5424HeaderSize)
	h.AppendTo(out)
	return string(out.Bytes())
}

func appendPriority(out *util.BoundedBuffer, pri uint8) {
	out.PushByte('<')
	appendPadded(out, uint64(pri), 0, '0')
	out.PushByte('>')
}

func appendClock(out *util.BoundedBuffer, ts *Timestamp) {
	appendPadded(out, uint64(ts.Hour), 2, '0')
	out.PushByte(':')
	appendPadded(out, uint64(ts.Min), 2, '0')
	out.PushByte(':')
	appendPadded(out, uint64(ts.Sec), 2, '0')
}

// appendPadded writes decimal value left-padded to width
func appendPadded(out *util.BoundedBuffer, value uint64, width int, pad byte) {
	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], value, 10)
	for i := len(digits); i < width; i++ {
		out.PushByte(pad)
	}
	out.PushBytes(digits)
}
