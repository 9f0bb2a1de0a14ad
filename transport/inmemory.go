package transport

import (
	"github.com/relex/slog-syslog/base"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

// InMemory is a factory and transport at the same time, sending copies of records to a channel
//
// Writes never block and fail with a transient error if the channel is full, or a terminal error if it's closed.
type InMemory struct {
	C chan<- string
}

// NewInMemory creates an InMemory transport with a new channel of the given capacity
func NewInMemory(capacity int) (*InMemory, <-chan string) {
	c := make(chan string, capacity)
	return &InMemory{C: c}, c
}

// Create returns the InMemory itself
func (t *InMemory) Create() (base.Transport, error) {
	return t, nil
}

func (t *InMemory) Write(severity syslogprotocol.Severity, msg string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = base.MarkTerminal(newError("write", "memory", errChannelClosed))
		}
	}()
	select {
	case t.C <- util.DeepCopyString(msg):
		return nil
	default:
		return newError("write", "memory", errChannelFull)
	}
}

// Discard is a factory and transport which drops all records
type Discard struct{}

// Create returns Discard
func (Discard) Create() (base.Transport, error) {
	return Discard{}, nil
}

func (Discard) Write(severity syslogprotocol.Severity, msg string) error {
	return nil
}
