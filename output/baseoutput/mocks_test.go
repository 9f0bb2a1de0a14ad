package baseoutput

import (
	"github.com/relex/slog-syslog/base"
	"github.com/relex/slog-syslog/syslogprotocol"
)

type mockError struct {
	message  string
	terminal bool
}

func (e mockError) Error() string {
	return e.message
}

func (e mockError) IsTerminal() bool {
	return e.terminal
}

var (
	errMockTransient = mockError{"transient failure", false}
	errMockTerminal  = mockError{"terminal failure", true}
)

type mockRecord struct {
	Severity syslogprotocol.Severity
	Message  string
}

// mockFactory creates mockTransport(s) sharing the same write results and destination
type mockFactory struct {
	CreateErrors []error // errors to return from Create in turn, nil for success; succeeds afterwards
	WriteErrors  []error // errors to return from Write in turn, across all transports; succeeds afterwards

	NumCreated int
	NumClosed  int
	Written    []mockRecord
}

func (factory *mockFactory) Create() (base.Transport, error) {
	factory.NumCreated++
	if len(factory.CreateErrors) > 0 {
		err := factory.CreateErrors[0]
		factory.CreateErrors = factory.CreateErrors[1:]
		if err != nil {
			return nil, err
		}
	}
	return &mockTransport{factory: factory, id: factory.NumCreated}, nil
}

type mockTransport struct {
	factory *mockFactory
	id      int
	closed  bool
}

func (transport *mockTransport) Write(severity syslogprotocol.Severity, msg string) error {
	factory := transport.factory
	if transport.closed {
		panic("write on closed transport")
	}
	if len(factory.WriteErrors) > 0 {
		err := factory.WriteErrors[0]
		factory.WriteErrors = factory.WriteErrors[1:]
		if err != nil {
			return err
		}
	}
	factory.Written = append(factory.Written, mockRecord{severity, msg})
	return nil
}

func (transport *mockTransport) Close() error {
	transport.closed = true
	transport.factory.NumClosed++
	return nil
}

// plainTransport doesn't implement io.Closer
type plainTransport struct {
	err error
}

func (transport plainTransport) Write(severity syslogprotocol.Severity, msg string) error {
	return transport.err
}

type plainFactory struct {
	NumCreated int
}

func (factory *plainFactory) Create() (base.Transport, error) {
	factory.NumCreated++
	return plainTransport{errMockTransient}, nil
}
