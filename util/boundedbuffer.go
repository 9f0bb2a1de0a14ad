package util

import (
	"fmt"
)

// BoundedBuffer is a fixed-capacity text buffer with truncating appends
//
// The backing array is allocated once by NewBoundedBuffer and never grows. Appends that don't fit are cut at the
// capacity and report how many bytes were actually taken, so callers can decide what to do with the rest.
//
// NOT thread-safe
type BoundedBuffer struct {
	data []byte
}

// NewBoundedBuffer creates a BoundedBuffer able to hold up to capacity bytes
func NewBoundedBuffer(capacity int) *BoundedBuffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("invalid BoundedBuffer capacity %d", capacity))
	}
	return &BoundedBuffer{
		data: make([]byte, 0, capacity),
	}
}

// Push appends as much of text as fits and returns the number of bytes consumed
//
// The consumed bytes are always a prefix of text: min(len(text), Cap()-Len())
func (buf *BoundedBuffer) Push(text string) int {
	n := len(text)
	if free := cap(buf.data) - len(buf.data); n > free {
		n = free
	}
	buf.data = append(buf.data, text[:n]...)
	return n
}

// PushBytes is the []byte version of Push
func (buf *BoundedBuffer) PushBytes(text []byte) int {
	n := len(text)
	if free := cap(buf.data) - len(buf.data); n > free {
		n = free
	}
	buf.data = append(buf.data, text[:n]...)
	return n
}

// PushByte appends a single byte if there is room for it
func (buf *BoundedBuffer) PushByte(c byte) bool {
	if len(buf.data) == cap(buf.data) {
		return false
	}
	buf.data = append(buf.data, c)
	return true
}

// Len returns the length of current contents
func (buf *BoundedBuffer) Len() int {
	return len(buf.data)
}

// Cap returns the fixed capacity
func (buf *BoundedBuffer) Cap() int {
	return cap(buf.data)
}

// Remaining returns how many more bytes can be pushed
func (buf *BoundedBuffer) Remaining() int {
	return cap(buf.data) - len(buf.data)
}

// Truncate discards everything after the first n bytes
//
// It panics if n is negative or beyond the current length, as only previously-written boundaries are valid.
func (buf *BoundedBuffer) Truncate(n int) {
	if n < 0 || n > len(buf.data) {
		panic(fmt.Sprintf("BoundedBuffer: truncation to %d out of range [0, %d]", n, len(buf.data)))
	}
	buf.data = buf.data[:n]
}

// Clear resets the length to zero
func (buf *BoundedBuffer) Clear() {
	buf.data = buf.data[:0]
}

// Bytes returns the current contents, valid until the next modification
func (buf *BoundedBuffer) Bytes() []byte {
	return buf.data
}

// String returns the current contents without copying
//
// The result shares memory with the buffer and changes with it. Copy it if it's to be kept.
func (buf *BoundedBuffer) String() MutableString {
	return StringFromBytes(buf.data)
}
