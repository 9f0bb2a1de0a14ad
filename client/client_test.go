package client

import (
	"errors"
	"strings"
	"time"

	"github.com/relex/slog-syslog/syslogprotocol"
)

var errSendFailure = errors.New("send failure")

type sentRecord struct {
	Message    string
	Severity   syslogprotocol.Severity
	RetryCount uint8
}

// recordCollector is a RecordSender keeping copies of all records
type recordCollector struct {
	Records []sentRecord
	Err     error // to be returned from WriteRecord if set
	Closed  bool
}

func (c *recordCollector) WriteRecord(msg string, severity syslogprotocol.Severity, retryCount uint8) error {
	if c.Err != nil {
		return c.Err
	}
	c.Records = append(c.Records, sentRecord{strings.Clone(msg), severity, retryCount})
	return nil
}

func (c *recordCollector) Messages() []string {
	messages := make([]string, len(c.Records))
	for i, r := range c.Records {
		messages[i] = r.Message
	}
	return messages
}

func (c *recordCollector) Close() {
	c.Closed = true
}

func fixedClock() time.Time {
	return time.Date(2023, time.December, 24, 3, 4, 5, 999, time.UTC)
}

// newTestSyslog creates Syslog writing headers of "<14>Dec 24 03:04:05 in.memory app[42]:"
func newTestSyslog() *Syslog {
	return New(syslogprotocol.FacilityUser, syslogprotocol.MustNewHostname("in.memory"), syslogprotocol.MustNewTag("app")).
		WithPID(42).
		WithClock(fixedClock)
}

const testHeader = "<14>Dec 24 03:04:05 in.memory app[42]: "

// bodyPattern makes "0123456789012..." of the given length
func bodyPattern(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte('0' + byte(i%10))
	}
	return sb.String()
}
