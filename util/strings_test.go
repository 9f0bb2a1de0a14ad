package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrings(t *testing.T) {
	orig := []byte("hello")
	shared := StringFromBytes(orig)
	orig[0] = 'H'
	assert.Equal(t, "Hello", shared)

	copied := DeepCopyString(shared)
	orig[1] = 'E'
	assert.Equal(t, "HEllo", shared)
	assert.Equal(t, "Hello", copied)

	assert.Equal(t, "", StringFromBytes(orig[:0]))

	assert.Equal(t, []byte("hello"), BytesFromString("hello"))
	assert.Len(t, BytesFromString(""), 0)
}
