package syslogprotocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	ts := NewTimestamp(time.Date(2022, time.March, 1, 2, 30, 15, 999, loc))
	assert.Equal(t, Timestamp{Year: 2022, Month: 1, Day: 28, Hour: 23, Min: 30, Sec: 15}, ts)
	assert.Equal(t, "Feb", ts.RFC3164Month())

	assert.Equal(t, EpochTimestamp, NewTimestamp(time.Time{}))
	assert.Equal(t, EpochTimestamp, NewTimestamp(time.Date(70000, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, EpochTimestamp, NewTimestamp(time.Date(-1, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Timestamp{Year: 1970, Month: 0, Day: 1}, EpochTimestamp)
}

func TestNowTimestamp(t *testing.T) {
	fixed := time.Date(2024, time.December, 31, 23, 59, 58, 0, time.UTC)
	assert.Equal(t, Timestamp{Year: 2024, Month: 11, Day: 31, Hour: 23, Min: 59, Sec: 58}, NowTimestamp(func() time.Time { return fixed }))
	assert.Equal(t, EpochTimestamp, NowTimestamp(func() time.Time { return time.Time{} }))

	now := NowTimestamp(nil)
	assert.GreaterOrEqual(t, now.Year, uint16(2024))
}

func TestRFC3164Month(t *testing.T) {
	for month, expected := range []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"} {
		assert.Equal(t, expected, Timestamp{Month: uint8(month)}.RFC3164Month())
	}
	assert.Equal(t, "???", Timestamp{Month: 12}.RFC3164Month())
	assert.Equal(t, "???", Timestamp{Month: 255}.RFC3164Month())
}
