package base

import (
	"errors"

	"github.com/relex/slog-syslog/syslogprotocol"
)

// TransportFactory creates transports on demand, e.g. by dialing a remote collector
//
// A factory is called again whenever the previously created transport has failed.
type TransportFactory interface {
	Create() (Transport, error)
}

// Transport delivers one complete record per Write call
//
// The msg passed may refer to a reusable buffer and is only valid until Write returns, so it must be
// copied if it's retained anywhere. A transport may also implement io.Closer to be closed on disposal.
type Transport interface {
	Write(severity syslogprotocol.Severity, msg string) error
}

// TerminalError is an error which tells whether retrying the same operation is pointless
type TerminalError interface {
	error
	IsTerminal() bool
}

// IsTerminal checks if any error in the chain reports itself as terminal
//
// Errors without classification are considered transient.
func IsTerminal(err error) bool {
	var terr TerminalError
	return errors.As(err, &terr) && terr.IsTerminal()
}

// MarkTerminal wraps the given error to be terminal, or returns nil if err is nil
func MarkTerminal(err error) error {
	if err == nil {
		return nil
	}
	return terminalError{err}
}

type terminalError struct {
	cause error
}

func (e terminalError) Error() string {
	return e.cause.Error()
}

func (e terminalError) Unwrap() error {
	return e.cause
}

func (e terminalError) IsTerminal() bool {
	return true
}
