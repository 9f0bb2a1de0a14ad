package client

import (
	"fmt"
	"strings"
)

// Format is the header layout of records
type Format uint8

// Supported formats
const (
	FormatRFC3164 Format = iota // BSD syslog, the default
	FormatRFC5424               // header fields of RFC 5424 without structured data
)

var formatNames = [...]string{"rfc3164", "rfc5424"}

// ParseFormat parses format name in lowercase, e.g. "rfc5424"
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return FormatRFC3164, fmt.Errorf("unknown format '%s'", name)
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// UnmarshalText parses format name for YAML and other text-based configuration
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
