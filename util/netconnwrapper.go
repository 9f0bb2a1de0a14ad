package util

import (
	"net"
	"time"
)

// NetConnWrapper wraps a connection for writing, with the write deadline updated infrequently in trade of accuracy
//
// The real timeout could be anything from the specified value to double of it. Zero timeout means no deadline.
type NetConnWrapper struct {
	conn            net.Conn
	writeTimeoutMin time.Duration
	writeTimeoutMax time.Duration
	writeDeadline   time.Time
}

// WrapNetConn creates a NetConnWrapper for given network connection
func WrapNetConn(conn net.Conn, writeTimeout time.Duration) *NetConnWrapper {
	return &NetConnWrapper{
		conn:            conn,
		writeTimeoutMin: writeTimeout,
		writeTimeoutMax: writeTimeout * 2,
		writeDeadline:   time.Time{},
	}
}

// WriteDeadline returns the current write deadline
func (cw *NetConnWrapper) WriteDeadline() time.Time {
	return cw.writeDeadline
}

func (cw *NetConnWrapper) Write(p []byte) (int, error) {
	if cw.writeTimeoutMin > 0 {
		now := time.Now()
		if cw.writeDeadline.Sub(now) < cw.writeTimeoutMin {
			nextDeadline := now.Add(cw.writeTimeoutMax)
			if err := cw.conn.SetWriteDeadline(nextDeadline); err != nil {
				return 0, err
			}
			cw.writeDeadline = nextDeadline
		}
	}
	return cw.conn.Write(p)
}

// Close closes the underlying connection
func (cw *NetConnWrapper) Close() error {
	return cw.conn.Close()
}
