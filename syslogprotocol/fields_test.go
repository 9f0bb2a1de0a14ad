package syslogprotocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// patternString makes "abcdefghiabc..." of the given length, starting from the given letter
func patternString(first byte, length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte(first + byte(i%9))
	}
	return sb.String()
}

func TestTagConstruction(t *testing.T) {
	_, err := NewTag("")
	assert.ErrorIs(t, err, ErrEmptyField)

	for length := 1; length <= TagMaxLen; length++ {
		text := patternString('a', length)
		tag, err := NewTag(text)
		if assert.NoError(t, err, text) {
			assert.Equal(t, text, tag.String())
		}
	}

	_, err = NewTag(patternString('a', TagMaxLen) + "z")
	assert.ErrorIs(t, err, ErrFieldTooLong)

	for _, invalid := range []string{"my-app", "my.app", "app 1", "app:", "приложение", "app\n"} {
		_, err := NewTag(invalid)
		assert.ErrorIs(t, err, ErrInvalidCharacter, invalid)
	}

	// no normalization
	tag := MustNewTag("MyApp01")
	assert.Equal(t, "MyApp01", tag.String())
}

func TestHostnameConstruction(t *testing.T) {
	_, err := NewHostname("")
	assert.ErrorIs(t, err, ErrEmptyField)

	for length := 1; length <= HostnameMaxLen; length++ {
		text := patternString('a', length)
		host, err := NewHostname(text)
		if assert.NoError(t, err, text) {
			assert.Equal(t, text, host.String())
		}
	}

	for _, valid := range []string{"in.memory", "web-1.example.com", "10.0.0.1", "-", "."} {
		host, err := NewHostname(valid)
		if assert.NoError(t, err, valid) {
			assert.Equal(t, valid, host.String())
		}
	}

	_, err = NewHostname(patternString('a', HostnameMaxLen+1))
	assert.ErrorIs(t, err, ErrFieldTooLong)

	for _, invalid := range []string{"web_1", "host name", "[::1]", "host:514", "hôte"} {
		_, err := NewHostname(invalid)
		assert.ErrorIs(t, err, ErrInvalidCharacter, invalid)
	}

	assert.Panics(t, func() { MustNewHostname("bad host") })
}

func TestNilFields(t *testing.T) {
	assert.Equal(t, "-", NilHostname.String())
	assert.Equal(t, "-", NilTag.String())
	assert.Equal(t, "-", Hostname{}.String())
	assert.Equal(t, "-", Tag{}.String())
}

func TestFieldsFromYaml(t *testing.T) {
	type sample struct {
		Hostname Hostname `yaml:"hostname"`
		Tag      Tag      `yaml:"tag"`
	}

	var s sample
	if assert.NoError(t, yaml.Unmarshal([]byte("hostname: web-1.local\ntag: api\n"), &s)) {
		assert.Equal(t, "web-1.local", s.Hostname.String())
		assert.Equal(t, "api", s.Tag.String())
	}

	assert.ErrorIs(t, yaml.Unmarshal([]byte("tag: my-api\n"), &s), ErrInvalidCharacter)
}
