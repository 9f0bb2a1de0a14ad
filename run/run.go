// Package run loads configuration and sends messages as configured
package run

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gobwas/glob"
	"github.com/relex/gotils/logger"
	"github.com/relex/slog-syslog/client"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/syslogprotocol"
)

// SendStats counts messages processed by Send
type SendStats struct {
	Sent     int
	Failed   int
	Excluded int
}

// Sender writes messages through a BufferedLogger unless they match any of exclusion patterns
type Sender struct {
	logger   logger.Logger
	output   *client.BufferedLogger
	severity syslogprotocol.Severity
	excludes []glob.Glob
	stats    SendStats
}

// NewSender creates a Sender. The exclusion patterns are globs to be matched against the whole message.
func NewSender(parentLogger logger.Logger, output *client.BufferedLogger, severity syslogprotocol.Severity, excludePatterns []string) (*Sender, error) {
	excludes := make([]glob.Glob, 0, len(excludePatterns))
	for _, pattern := range excludePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		excludes = append(excludes, g)
	}
	return &Sender{
		logger:   parentLogger.WithField(defs.LabelComponent, "Sender"),
		output:   output,
		severity: severity,
		excludes: excludes,
		stats:    SendStats{},
	}, nil
}

// Send writes one message, returning false if it's excluded or failed. Failures are logged.
//
// Empty messages are excluded since they would produce no record.
func (s *Sender) Send(message string) bool {
	if message == "" {
		s.stats.Excluded++
		excludedMessagesCounter.Inc()
		return false
	}
	for _, g := range s.excludes {
		if g.Match(message) {
			s.stats.Excluded++
			excludedMessagesCounter.Inc()
			return false
		}
	}
	if err := s.output.WriteString(s.severity, message); err != nil {
		s.logger.Warnf("failed to send message: %s", err.Error())
		s.stats.Failed++
		failedMessagesCounter.Inc()
		return false
	}
	s.stats.Sent++
	sentMessagesCounter.Inc()
	return true
}

// SendLines sends each line from reader as a message until EOF or stopped by SIGINT / SIGTERM
func (s *Sender) SendLines(reader io.Reader) error {
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), defs.RecordMaxSize*16)
	for scanner.Scan() {
		select {
		case sig := <-sigChan:
			s.logger.Infof("received %s, stop sending", sig)
			return nil
		default:
		}
		s.Send(scanner.Text())
	}
	return scanner.Err()
}

// Stats returns the counts of processed messages
func (s *Sender) Stats() SendStats {
	return s.stats
}
