package transport

import (
	"fmt"
	"strconv"
)

// Framing decides how records are delimited in a stream transport
type Framing uint8

// Framing methods
const (
	FramingNewline       Framing = iota // record followed by LF (non-transparent framing)
	FramingOctetCounting                // "LEN record" as RFC 6587 3.4.1
)

var framingNames = [...]string{"newline", "octet-counting"}

// ParseFraming parses framing name, e.g. "octet-counting"
func ParseFraming(name string) (Framing, error) {
	for i, n := range framingNames {
		if n == name {
			return Framing(i), nil
		}
	}
	return FramingNewline, fmt.Errorf("unknown framing '%s'", name)
}

func (f Framing) String() string {
	if int(f) < len(framingNames) {
		return framingNames[f]
	}
	return fmt.Sprintf("framing(%d)", uint8(f))
}

// UnmarshalText parses framing name for YAML
func (f *Framing) UnmarshalText(text []byte) error {
	parsed, err := ParseFraming(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// AppendFrame appends a framed record to dst and returns the extended slice
func (f Framing) AppendFrame(dst []byte, msg string) []byte {
	switch f {
	case FramingOctetCounting:
		dst = strconv.AppendInt(dst, int64(len(msg)), 10)
		dst = append(dst, ' ')
		return append(dst, msg...)
	default:
		dst = append(dst, msg...)
		return append(dst, '\n')
	}
}
