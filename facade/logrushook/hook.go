// Package logrushook sends logrus entries to syslog through a BufferedLogger
package logrushook

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/relex/slog-syslog/client"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Hook is a logrus hook writing each entry as one message: the text followed by " key=value" of fields by key
// order. Long messages are split into multiple records.
//
// Hook is safe for concurrent use; entries are written one by one.
type Hook struct {
	mutex  sync.Mutex
	logger *client.BufferedLogger
	levels []logrus.Level
}

// New creates a Hook for the given levels, or all levels if none is specified
func New(logger *client.BufferedLogger, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{
		mutex:  sync.Mutex{},
		logger: logger,
		levels: levels,
	}
}

// Levels returns levels of entries to be sent
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire writes the entry
func (h *Hook) Fire(entry *logrus.Entry) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	record := h.logger.Record(SeverityFromLevel(entry.Level))
	defer record.Close()
	return writeEntry(record, entry)
}

// SeverityFromLevel maps logrus level to syslog severity
func SeverityFromLevel(level logrus.Level) syslogprotocol.Severity {
	switch level {
	case logrus.PanicLevel:
		return syslogprotocol.SeverityEmerg
	case logrus.FatalLevel:
		return syslogprotocol.SeverityCrit
	case logrus.ErrorLevel:
		return syslogprotocol.SeverityErr
	case logrus.WarnLevel:
		return syslogprotocol.SeverityWarning
	case logrus.InfoLevel:
		return syslogprotocol.SeverityNotice
	case logrus.DebugLevel:
		return syslogprotocol.SeverityInfo
	default:
		return syslogprotocol.SeverityDebug
	}
}

// writeEntry writes message and fields, and always makes a final flush even if writing was interrupted
func writeEntry(record *client.RecordWriter, entry *logrus.Entry) (err error) {
	defer func() {
		if ferr := record.FlushWithoutClear(); err == nil {
			err = ferr
		}
	}()

	if err = record.WriteString(entry.Message); err != nil {
		return err
	}

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if err = record.WriteString(" "); err != nil {
			return err
		}
		if err = record.WriteString(key); err != nil {
			return err
		}
		if err = record.WriteString("="); err != nil {
			return err
		}
		if err = record.WriteString(formatValue(entry.Data[key])); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(value interface{}) string {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case error:
		text = v.Error()
	default:
		text = fmt.Sprint(v)
	}
	if text == "" || strings.ContainsAny(text, " \t\n\"") {
		return strconv.Quote(text)
	}
	return text
}
