package defs

// Common labels for logging
const (
	LabelComponent = "component"
	LabelName      = "name"
	LabelPart      = "part"

	LabelLocal  = "local"
	LabelRemote = "remote"

	LabelTransport = "transport"
)

// Record sizes
const (
	// RFC3164RecordSize is the maximum size of a whole RFC 3164 record including header (RFC 3164 4.1)
	RFC3164RecordSize = 1024

	// RFC5424DefaultRecordSize is the record size all RFC 5424 receivers must accept (RFC 5424 6.1)
	RFC5424DefaultRecordSize = 2048

	// RecordMaxSize limits configurable record sizes, the largest payload of a UDP datagram over IPv4
	RecordMaxSize = 65507
)

// DefaultRetryCount is how many times a record write is retried after the initial attempt
const DefaultRetryCount = 2
