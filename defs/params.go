package defs

import (
	"time"
)

var (
	// TransportConnectTimeout is for establishing a TCP connection to a syslog server when no timeout is configured
	TransportConnectTimeout = 10 * time.Second

	// TransportWriteTimeout is how long to wait at least for sending one record when no timeout is configured
	//
	// The real deadline is refreshed infrequently by NetConnWrapper and could be up to double the value
	TransportWriteTimeout = 10 * time.Second

	// SystemSocketPaths are the candidates of the local syslog daemon socket, in order of preference
	SystemSocketPaths = []string{"/dev/log", "/var/run/syslog", "/var/run/log"}
)

// For testing and experiments
const (
	TestReadTimeout = 5 * time.Second
)

// EnableTestMode turns on test mode with very short timeouts
func EnableTestMode() {
	TransportConnectTimeout = 1 * time.Second
	TransportWriteTimeout = 1 * time.Second
}
