// Package transporttest provides local syslog receivers to test transports and loggers
package transporttest

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/relex/gotils/channels"
	"github.com/relex/gotils/logger"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/transport"
	"github.com/relex/slog-syslog/util"
)

// Receiver listens on a local socket and collects received records in a channel
type Receiver struct {
	logger      logger.Logger
	address     string
	records     chan string
	socket      io.Closer
	stopRequest *channels.SignalAwaitable
	taskCounter *sync.WaitGroup    // counter to track connection tasks and the listener task itself
	stopped     channels.Awaitable // signaled when both listener and all connections have come to stop
}

// ListenUDP starts a receiver of UDP datagrams on a random local port
func ListenUDP(parentLogger logger.Logger) (*Receiver, error) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	recv := newReceiver(parentLogger, "UDPReceiver", conn.LocalAddr().String(), conn)
	go recv.runPacketReader(conn)
	return recv, nil
}

// ListenUnixgram starts a receiver of unix datagrams at the given path
func ListenUnixgram(parentLogger logger.Logger, path string) (*Receiver, error) {
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, err
	}
	recv := newReceiver(parentLogger, "UnixgramReceiver", path, conn)
	go recv.runPacketReader(conn)
	return recv, nil
}

// ListenTCP starts a receiver of framed records on a random local TCP port
func ListenTCP(parentLogger logger.Logger, framing transport.Framing) (*Receiver, error) {
	socket, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	recv := newReceiver(parentLogger, "TCPReceiver", socket.Addr().String(), socket)
	go recv.runAcceptLoop(socket, framing)
	return recv, nil
}

func newReceiver(parentLogger logger.Logger, component string, address string, socket io.Closer) *Receiver {
	// init taskCounter with 1 for the listener itself
	taskCounter := &sync.WaitGroup{}
	taskCounter.Add(1)

	recv := &Receiver{
		logger: parentLogger.WithFields(logger.Fields{
			defs.LabelComponent: component,
			defs.LabelLocal:     address,
		}),
		address:     address,
		records:     make(chan string, 1000),
		socket:      socket,
		stopRequest: channels.NewSignalAwaitable(),
		taskCounter: taskCounter,
		stopped:     channels.NewWaitGroupAwaitable(taskCounter),
	}
	recv.logger.Info("start listening")
	return recv
}

// Address returns the bound address, or path of unix socket
func (recv *Receiver) Address() string {
	return recv.address
}

// Records returns the channel of received records, not including framing
func (recv *Receiver) Records() <-chan string {
	return recv.records
}

// Next waits for the next record up to defs.TestReadTimeout
func (recv *Receiver) Next() (string, bool) {
	select {
	case rec, ok := <-recv.records:
		return rec, ok
	case <-recv.stopped.Channel():
		select {
		case rec, ok := <-recv.records:
			return rec, ok
		default:
			return "", false
		}
	case <-time.After(defs.TestReadTimeout):
		return "", false
	}
}

// Close stops the receiver and all connections, and returns true if everything stops within defs.TestReadTimeout
//
// The records channel is closed only if everything has stopped
func (recv *Receiver) Close() bool {
	if recv.stopRequest.Peek() {
		return recv.stopped.Wait(0)
	}
	recv.stopRequest.Signal()
	if !recv.stopped.Wait(defs.TestReadTimeout) {
		return false
	}
	close(recv.records)
	return true
}

// CloseAndCollect stops the receiver and returns all the records not yet taken
func (recv *Receiver) CloseAndCollect() ([]string, bool) {
	if !recv.Close() {
		return nil, false
	}
	return util.CollectFromChannel(recv.records), true
}

func (recv *Receiver) runPacketReader(conn net.PacketConn) {
	defer recv.taskCounter.Done()
	go recv.closeOnStop(conn)

	buf := make([]byte, defs.RecordMaxSize)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if !recv.stopRequest.Peek() || !util.IsNetworkClosed(err) {
				recv.logger.Error("read() error: ", err)
			}
			break
		}
		recv.records <- string(buf[:n])
	}
	recv.logger.Info("end read loop")
}

func (recv *Receiver) runAcceptLoop(socket net.Listener, framing transport.Framing) {
	go recv.closeOnStop(socket)

	for {
		conn, err := socket.Accept()
		if err != nil {
			if !recv.stopRequest.Peek() || !util.IsNetworkClosed(err) {
				recv.logger.Error("accept() error: ", err)
			}
			break
		}
		connLogger := recv.logger.WithFields(logger.Fields{
			defs.LabelPart:   "connection",
			defs.LabelRemote: conn.RemoteAddr().String(),
		})
		connLogger.Info("accepted connection")
		recv.taskCounter.Add(1)
		go recv.runConnection(connLogger, conn, framing)
	}
	recv.logger.Info("end accept loop")

	// mark the listener itself as done, note there could still be established connections
	recv.taskCounter.Done()
}

func (recv *Receiver) runConnection(connLogger logger.Logger, conn net.Conn, framing transport.Framing) {
	defer recv.taskCounter.Done()

	connAborter := channels.NewSignalAwaitable()
	go func() {
		channels.AnyAwaitables(recv.stopRequest, connAborter).WaitForever()
		conn.Close()
	}()

	reader := bufio.NewReader(conn)
	for {
		rec, err := readFrame(reader, framing)
		if err != nil {
			if !util.IsNetworkClosed(err) {
				connLogger.Warn("read() error: ", err)
			}
			break
		}
		recv.records <- rec
	}
	connAborter.Signal()
	connLogger.Info("ended")
}

func (recv *Receiver) closeOnStop(socket io.Closer) {
	recv.stopRequest.WaitForever()
	recv.logger.Info("close on stop request")
	socket.Close()
}

func readFrame(reader *bufio.Reader, framing transport.Framing) (string, error) {
	switch framing {
	case transport.FramingOctetCounting:
		lenText, err := reader.ReadString(' ')
		if err != nil {
			return "", err
		}
		length, err := strconv.Atoi(strings.TrimSuffix(lenText, " "))
		if err != nil || length < 0 || length > defs.RecordMaxSize {
			return "", fmt.Errorf("invalid frame length '%s'", lenText)
		}
		frame := make([]byte, length)
		if _, err := io.ReadFull(reader, frame); err != nil {
			return "", err
		}
		return string(frame), nil
	default:
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(line, "\n"), nil
	}
}
