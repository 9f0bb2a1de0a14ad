package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedBufferPush(t *testing.T) {
	buf := NewBoundedBuffer(10)
	assert.Equal(t, 10, buf.Cap())

	assert.Equal(t, 4, buf.Push("abcd"))
	assert.Equal(t, "abcd", buf.String())
	assert.Equal(t, 6, buf.Remaining())

	assert.Equal(t, 0, buf.Push(""))
	assert.Equal(t, 4, buf.Len())

	// truncated at the capacity
	assert.Equal(t, 6, buf.Push("efghijklmn"))
	assert.Equal(t, "abcdefghij", buf.String())
	assert.Equal(t, 0, buf.Remaining())

	assert.Equal(t, 0, buf.Push("x"))
	assert.False(t, buf.PushByte('x'))
	assert.Equal(t, "abcdefghij", buf.String())
}

func TestBoundedBufferNoReallocation(t *testing.T) {
	buf := NewBoundedBuffer(64)
	before := &buf.Bytes()[:1][0]
	for i := 0; i < 100; i++ {
		buf.Push(strings.Repeat("z", i))
		if buf.Remaining() == 0 {
			buf.Clear()
		}
	}
	buf.Clear()
	buf.PushByte('a')
	assert.Same(t, before, &buf.Bytes()[0])
	assert.Equal(t, 64, buf.Cap())
}

func TestBoundedBufferPushBytes(t *testing.T) {
	buf := NewBoundedBuffer(3)
	assert.True(t, buf.PushByte('<'))
	assert.Equal(t, 2, buf.PushBytes([]byte("123")))
	assert.Equal(t, "<12", buf.String())
}

func TestBoundedBufferTruncate(t *testing.T) {
	buf := NewBoundedBuffer(16)
	buf.Push("header body")
	buf.Truncate(7)
	assert.Equal(t, "header ", buf.String())

	buf.Truncate(7)
	assert.Equal(t, 7, buf.Len())

	assert.Panics(t, func() { buf.Truncate(8) })
	assert.Panics(t, func() { buf.Truncate(-1) })

	buf.Clear()
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, "", buf.String())
}

func TestBoundedBufferInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewBoundedBuffer(0) })
}
