package syslogprotocol

import (
	"math"
	"time"
)

// Timestamp holds the broken-down UTC time written into record headers
type Timestamp struct {
	Year  uint16
	Month uint8 // months since January, 0-11
	Day   uint8 // day of the month, 1-31
	Hour  uint8 // 0-23
	Min   uint8 // 0-59
	Sec   uint8 // 0-60, to allow leap seconds
}

// EpochTimestamp is used when the current time isn't available: 1970-01-01T00:00:00Z
var EpochTimestamp = Timestamp{Year: 1970, Month: 0, Day: 1}

// NewTimestamp converts t to UTC Timestamp
//
// Times that cannot be represented (zero time, years beyond uint16) result in EpochTimestamp.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return EpochTimestamp
	}
	t = t.UTC()
	year, month, day := t.Date()
	if year < 0 || year > math.MaxUint16 {
		return EpochTimestamp
	}
	hour, min, sec := t.Clock()
	return Timestamp{
		Year:  uint16(year),
		Month: uint8(month - time.January),
		Day:   uint8(day),
		Hour:  uint8(hour),
		Min:   uint8(min),
		Sec:   uint8(sec),
	}
}

// NowTimestamp returns the current time from the given clock, or from time.Now if it's nil
func NowTimestamp(clock func() time.Time) Timestamp {
	if clock == nil {
		return NewTimestamp(time.Now())
	}
	return NewTimestamp(clock())
}

var rfc3164Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// RFC3164Month returns the 3-letter English abbreviation of the month, or "???" if Month is out of range
func (ts Timestamp) RFC3164Month() string {
	if int(ts.Month) < len(rfc3164Months) {
		return rfc3164Months[ts.Month]
	}
	return "???"
}
