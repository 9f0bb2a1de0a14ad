package transport

import (
	"net"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/slog-syslog/base"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

// UDP creates transports sending one datagram per record
type UDP struct {
	Address      string        // remote host:port
	LocalAddress string        // optional local host:port to send from
	Timeout      time.Duration // write timeout, default to defs.TransportWriteTimeout
}

// Create resolves addresses and opens a connected UDP socket
func (f UDP) Create() (base.Transport, error) {
	var localAddr *net.UDPAddr
	if f.LocalAddress != "" {
		addr, err := net.ResolveUDPAddr("udp", f.LocalAddress)
		if err != nil {
			return nil, newError("resolve", f.LocalAddress, err)
		}
		localAddr = addr
	}
	remoteAddr, err := net.ResolveUDPAddr("udp", f.Address)
	if err != nil {
		return nil, newError("resolve", f.Address, err)
	}
	conn, err := net.DialUDP("udp", localAddr, remoteAddr)
	if err != nil {
		return nil, newError("dial", f.Address, err)
	}
	return newDatagramTransport(conn, f.Address, writeTimeoutOrDefault(f.Timeout)), nil
}

func (f UDP) String() string {
	return "udp://" + f.Address
}

// Unix creates transports sending one datagram per record to a local unix domain socket
type Unix struct {
	Path    string
	Timeout time.Duration // write timeout, default to defs.TransportWriteTimeout
}

// NewSystemUnix finds the socket of local syslog daemon from defs.SystemSocketPaths
func NewSystemUnix() (Unix, error) {
	path, ok := util.FindSocketFile(defs.SystemSocketPaths)
	if !ok {
		return Unix{}, newError("resolve", "system", ErrNoSystemSocket)
	}
	return Unix{Path: path}, nil
}

// Create opens a unixgram socket connected to the path
func (f Unix) Create() (base.Transport, error) {
	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: f.Path, Net: "unixgram"})
	if err != nil {
		return nil, newError("dial", f.Path, err)
	}
	return newDatagramTransport(conn, f.Path, writeTimeoutOrDefault(f.Timeout)), nil
}

func (f Unix) String() string {
	return "unix://" + f.Path
}

// TCP creates transports sending framed records over a TCP connection
type TCP struct {
	Address string
	Timeout time.Duration // connect and write timeout, default to defs.TransportConnectTimeout and defs.TransportWriteTimeout
	Framing Framing
}

// Create connects to the address
func (f TCP) Create() (base.Transport, error) {
	connectTimeout := f.Timeout
	if connectTimeout <= 0 {
		connectTimeout = defs.TransportConnectTimeout
	}
	conn, err := net.DialTimeout("tcp", f.Address, connectTimeout)
	if err != nil {
		return nil, newError("dial", f.Address, err)
	}
	return &streamTransport{
		logger:  logger.WithFields(logger.Fields{defs.LabelComponent: "TCPTransport", defs.LabelLocal: conn.LocalAddr().String(), defs.LabelRemote: f.Address}),
		writer:  util.WrapNetConn(conn, writeTimeoutOrDefault(f.Timeout)),
		address: f.Address,
		framing: f.Framing,
		frame:   make([]byte, 0, defs.RFC3164RecordSize+16),
	}, nil
}

func (f TCP) String() string {
	return "tcp://" + f.Address
}

// datagramTransport writes each record as a datagram to UDP or unixgram socket
type datagramTransport struct {
	writer  *util.NetConnWrapper
	address string
}

func newDatagramTransport(conn net.Conn, address string, timeout time.Duration) *datagramTransport {
	return &datagramTransport{
		writer:  util.WrapNetConn(conn, timeout),
		address: address,
	}
}

func (t *datagramTransport) Write(severity syslogprotocol.Severity, msg string) error {
	if _, err := t.writer.Write(util.BytesFromString(msg)); err != nil {
		return newError("write", t.address, err)
	}
	return nil
}

func (t *datagramTransport) Close() error {
	return t.writer.Close()
}

// streamTransport writes framed records to TCP connection
type streamTransport struct {
	logger  logger.Logger
	writer  *util.NetConnWrapper
	address string
	framing Framing
	frame   []byte // reused for each record
}

func (t *streamTransport) Write(severity syslogprotocol.Severity, msg string) error {
	t.frame = t.framing.AppendFrame(t.frame[:0], msg)
	if n, err := t.writer.Write(t.frame); err != nil {
		if util.IsNetworkTimeout(err) {
			// the frame may be partially written, which leaves the stream unusable
			t.logger.Debugf("write timed out at %d/%d bytes, deadline %s", n, len(t.frame), t.writer.WriteDeadline())
		}
		return newError("write", t.address, err)
	}
	return nil
}

func (t *streamTransport) Close() error {
	t.logger.Debug("close connection")
	return t.writer.Close()
}

func writeTimeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defs.TransportWriteTimeout
	}
	return timeout
}
