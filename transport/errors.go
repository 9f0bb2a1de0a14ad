package transport

import (
	"errors"
	"fmt"

	"github.com/relex/slog-syslog/util"
	"golang.org/x/sys/unix"
)

// ErrNoSystemSocket is returned when none of the local syslog sockets exists
var ErrNoSystemSocket = errors.New("no syslog socket found")

// errChannelFull is returned from InMemory when the receiving channel is full
var errChannelFull = errors.New("channel full")

// errChannelClosed is returned from InMemory when the receiving channel has been closed
var errChannelClosed = errors.New("channel closed")

// Error records a failed transport operation with the address involved
//
// Whether it's terminal depends on the cause; see IsTerminal.
type Error struct {
	Op   string // "resolve", "dial" or "write"
	Addr string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Addr, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTerminal returns true if the cause can't be fixed by retrying, e.g. invalid or unavailable local address.
//
// Refused connections, timeouts, resets and others are transient, as the remote may recover.
func (e *Error) IsTerminal() bool {
	return isTerminalCause(e.Err)
}

var terminalErrnos = []unix.Errno{
	unix.EADDRINUSE,
	unix.EADDRNOTAVAIL,
	unix.EAFNOSUPPORT,
	unix.EPROTONOSUPPORT,
	unix.EINVAL,
	unix.EOPNOTSUPP,
}

func isTerminalCause(err error) bool {
	if errors.Is(err, ErrNoSystemSocket) || util.IsAddressError(err) {
		return true
	}
	for _, errno := range terminalErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func newError(op string, addr string, err error) error {
	return &Error{Op: op, Addr: addr, Err: err}
}
