package syslogprotocol

import (
	"errors"
	"fmt"
)

// Field bounds in bytes
const (
	HostnameMaxLen = 64
	TagMaxLen      = 32
)

// Validation errors of header fields
var (
	ErrEmptyField       = errors.New("empty value")
	ErrFieldTooLong     = errors.New("value too long")
	ErrInvalidCharacter = errors.New("invalid character")
)

// nilValue is written in place of an absent header field
const nilValue = "-"

// Hostname is a validated host name for record headers: 1-64 bytes of ASCII letters, digits, '-' or '.'
//
// The zero value is not valid and renders as "-"
type Hostname struct {
	value string
}

// NilHostname indicates no hostname, sent as "-"
var NilHostname = Hostname{nilValue}

// NewHostname validates the given name and creates a Hostname. No normalization is done.
func NewHostname(name string) (Hostname, error) {
	if err := validateField(name, HostnameMaxLen, isHostnameChar); err != nil {
		return Hostname{}, fmt.Errorf("hostname '%s': %w", name, err)
	}
	return Hostname{name}, nil
}

// MustNewHostname creates a Hostname or panics
func MustNewHostname(name string) Hostname {
	h, err := NewHostname(name)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the hostname as constructed
func (h Hostname) String() string {
	if h.value == "" {
		return nilValue
	}
	return h.value
}

// UnmarshalText validates hostname from configuration files
func (h *Hostname) UnmarshalText(text []byte) error {
	val, err := NewHostname(string(text))
	if err != nil {
		return err
	}
	*h = val
	return nil
}

// Tag is a validated process name, 1-32 bytes of ASCII letters or digits. It's also used as RFC 5424 MSGID.
//
// The zero value is not valid and renders as "-"
type Tag struct {
	value string
}

// NilTag indicates an absent tag or MSGID, sent as "-"
var NilTag = Tag{nilValue}

// NewTag validates the given name and creates a Tag. No normalization is done.
func NewTag(name string) (Tag, error) {
	if err := validateField(name, TagMaxLen, isTagChar); err != nil {
		return Tag{}, fmt.Errorf("tag '%s': %w", name, err)
	}
	return Tag{name}, nil
}

// MustNewTag creates a Tag or panics
func MustNewTag(name string) Tag {
	t, err := NewTag(name)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the tag as constructed
func (t Tag) String() string {
	if t.value == "" {
		return nilValue
	}
	return t.value
}

// UnmarshalText validates tag from configuration files
func (t *Tag) UnmarshalText(text []byte) error {
	val, err := NewTag(string(text))
	if err != nil {
		return err
	}
	*t = val
	return nil
}

func validateField(value string, maxLen int, isValidChar func(c byte) bool) error {
	if len(value) == 0 {
		return ErrEmptyField
	}
	if len(value) > maxLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrFieldTooLong, len(value), maxLen)
	}
	for i := 0; i < len(value); i++ {
		if !isValidChar(value[i]) {
			return fmt.Errorf("%w %q at %d", ErrInvalidCharacter, value[i], i)
		}
	}
	return nil
}

func isTagChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isHostnameChar(c byte) bool {
	return isTagChar(c) || c == '-' || c == '.'
}
